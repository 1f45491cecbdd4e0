package handler

import (
	"net/http"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ToolNoteService interface {
	ListNotes(filter entity.ToolNoteFilter) ([]*entity.ToolNote, apierror.ErrorResponse)
	GetNoteByID(id int) (*entity.ToolNote, apierror.ErrorResponse)
	CreateNote(req *contract.CreateToolNoteRequest) (*entity.ToolNote, apierror.ErrorResponse)
	UpdateNote(id int, req *contract.UpdateToolNoteRequest) (*entity.ToolNote, apierror.ErrorResponse)
	DeleteNote(id int) (*entity.ToolNote, apierror.ErrorResponse)
}

type DefaultToolNoteRoute struct {
	NoteService ToolNoteService
}

func NewToolNoteDefault(noteService ToolNoteService) *DefaultToolNoteRoute {
	return &DefaultToolNoteRoute{NoteService: noteService}
}

func (t *DefaultToolNoteRoute) GetNotes(c echo.Context) error {
	if c.QueryParam("id") != "" {
		id, apierr := parseID(c)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}

		note, apierr := t.NoteService.GetNoteByID(id)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		return c.JSON(http.StatusOK, note)
	}

	filter := entity.ToolNoteFilter{
		Search: c.QueryParam("search"),
		Limit:  parseLimit(c),
		Offset: parseOffset(c),
	}

	notes, apierr := t.NoteService.ListNotes(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (t *DefaultToolNoteRoute) CreateNote(c echo.Context) error {
	var req contract.CreateToolNoteRequest
	if apierr := bindBody(c, &req, contract.CreateToolNoteFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	note, apierr := t.NoteService.CreateNote(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (t *DefaultToolNoteRoute) UpdateNote(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if _, apierr := t.NoteService.GetNoteByID(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateToolNoteRequest
	if apierr := bindBody(c, &req, contract.UpdateToolNoteFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	note, apierr := t.NoteService.UpdateNote(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (t *DefaultToolNoteRoute) DeleteNote(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	note, apierr := t.NoteService.DeleteNote(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Note deleted successfully",
		"note":    note,
	})
}
