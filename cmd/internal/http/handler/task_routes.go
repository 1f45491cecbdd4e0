package handler

import (
	"net/http"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type TaskService interface {
	ListTasks(filter entity.TaskFilter) ([]*entity.Task, apierror.ErrorResponse)
	GetTaskByID(id int) (*entity.Task, apierror.ErrorResponse)
	CreateTask(req *contract.CreateTaskRequest) (*entity.Task, apierror.ErrorResponse)
	UpdateTask(id int, req *contract.UpdateTaskRequest) (*entity.Task, apierror.ErrorResponse)
	DeleteTask(id int) (*entity.Task, apierror.ErrorResponse)
}

type DefaultTaskRoute struct {
	TaskService TaskService
}

func NewTaskDefault(taskService TaskService) *DefaultTaskRoute {
	return &DefaultTaskRoute{TaskService: taskService}
}

// GetTasks serves both the single-record lookup (?id=N) and the filtered,
// paginated listing.
func (t *DefaultTaskRoute) GetTasks(c echo.Context) error {
	if c.QueryParam("id") != "" {
		id, apierr := parseID(c)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}

		task, apierr := t.TaskService.GetTaskByID(id)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		return c.JSON(http.StatusOK, task)
	}

	filter := entity.TaskFilter{
		Search:   c.QueryParam("search"),
		Priority: c.QueryParam("priority"),
		Limit:    parseLimit(c),
		Offset:   parseOffset(c),
	}
	if c.QueryParams().Has("completed") {
		completed := c.QueryParam("completed") == "true"
		filter.Completed = &completed
	}

	tasks, apierr := t.TaskService.ListTasks(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (t *DefaultTaskRoute) CreateTask(c echo.Context) error {
	var req contract.CreateTaskRequest
	if apierr := bindBody(c, &req, contract.CreateTaskFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	task, apierr := t.TaskService.CreateTask(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, task)
}

func (t *DefaultTaskRoute) UpdateTask(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	// A missing record 404s before the body is even read.
	if _, apierr := t.TaskService.GetTaskByID(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateTaskRequest
	if apierr := bindBody(c, &req, contract.UpdateTaskFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	task, apierr := t.TaskService.UpdateTask(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, task)
}

func (t *DefaultTaskRoute) DeleteTask(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	task, apierr := t.TaskService.DeleteTask(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Task deleted successfully",
		"task":    task,
	})
}
