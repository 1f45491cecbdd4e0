package handler

import (
	"net/http"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ToolFileService interface {
	ListFiles(filter entity.ToolFileFilter) ([]*entity.ToolFile, apierror.ErrorResponse)
	GetFileByID(id int) (*entity.ToolFile, apierror.ErrorResponse)
	CreateFile(req *contract.CreateToolFileRequest) (*entity.ToolFile, apierror.ErrorResponse)
	UpdateFile(id int, req *contract.UpdateToolFileRequest) (*entity.ToolFile, apierror.ErrorResponse)
	DeleteFile(id int) (*entity.ToolFile, apierror.ErrorResponse)
}

type DefaultToolFileRoute struct {
	FileService ToolFileService
}

func NewToolFileDefault(fileService ToolFileService) *DefaultToolFileRoute {
	return &DefaultToolFileRoute{FileService: fileService}
}

func (t *DefaultToolFileRoute) GetFiles(c echo.Context) error {
	if c.QueryParam("id") != "" {
		id, apierr := parseID(c)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}

		file, apierr := t.FileService.GetFileByID(id)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		return c.JSON(http.StatusOK, file)
	}

	filter := entity.ToolFileFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Limit:    parseLimit(c),
		Offset:   parseOffset(c),
	}

	files, apierr := t.FileService.ListFiles(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, files)
}

func (t *DefaultToolFileRoute) CreateFile(c echo.Context) error {
	var req contract.CreateToolFileRequest
	if apierr := bindBody(c, &req, contract.CreateToolFileFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	file, apierr := t.FileService.CreateFile(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, file)
}

func (t *DefaultToolFileRoute) UpdateFile(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if _, apierr := t.FileService.GetFileByID(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateToolFileRequest
	if apierr := bindBody(c, &req, contract.UpdateToolFileFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	file, apierr := t.FileService.UpdateFile(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, file)
}

func (t *DefaultToolFileRoute) DeleteFile(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	file, apierr := t.FileService.DeleteFile(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "File deleted successfully",
		"file":    file,
	})
}
