package handler

import (
	"net/http"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type DashboardNoteService interface {
	ListNotes(filter entity.DashboardNoteFilter) ([]*entity.DashboardNote, apierror.ErrorResponse)
	GetNoteByID(id int) (*entity.DashboardNote, apierror.ErrorResponse)
	CreateNote(req *contract.CreateDashboardNoteRequest) (*entity.DashboardNote, apierror.ErrorResponse)
	UpdateNote(id int, req *contract.UpdateDashboardNoteRequest) (*entity.DashboardNote, apierror.ErrorResponse)
	DeleteNote(id int) (*entity.DashboardNote, apierror.ErrorResponse)
}

type DefaultDashboardNoteRoute struct {
	NoteService DashboardNoteService
}

func NewDashboardNoteDefault(noteService DashboardNoteService) *DefaultDashboardNoteRoute {
	return &DefaultDashboardNoteRoute{NoteService: noteService}
}

func (d *DefaultDashboardNoteRoute) GetNotes(c echo.Context) error {
	if c.QueryParam("id") != "" {
		id, apierr := parseID(c)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}

		note, apierr := d.NoteService.GetNoteByID(id)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		return c.JSON(http.StatusOK, note)
	}

	filter := entity.DashboardNoteFilter{
		Search: c.QueryParam("search"),
		Limit:  parseLimit(c),
		Offset: parseOffset(c),
	}

	notes, apierr := d.NoteService.ListNotes(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (d *DefaultDashboardNoteRoute) CreateNote(c echo.Context) error {
	var req contract.CreateDashboardNoteRequest
	if apierr := bindBody(c, &req, contract.CreateDashboardNoteFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	note, apierr := d.NoteService.CreateNote(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, note)
}

func (d *DefaultDashboardNoteRoute) UpdateNote(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if _, apierr := d.NoteService.GetNoteByID(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateDashboardNoteRequest
	if apierr := bindBody(c, &req, contract.UpdateDashboardNoteFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	note, apierr := d.NoteService.UpdateNote(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (d *DefaultDashboardNoteRoute) DeleteNote(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	note, apierr := d.NoteService.DeleteNote(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Note deleted successfully",
		"note":    note,
	})
}
