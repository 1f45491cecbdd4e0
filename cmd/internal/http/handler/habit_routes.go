package handler

import (
	"net/http"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type HabitService interface {
	ListHabits(filter entity.HabitFilter) ([]*entity.Habit, apierror.ErrorResponse)
	GetHabitByID(id int) (*entity.Habit, apierror.ErrorResponse)
	CreateHabit(req *contract.CreateHabitRequest) (*entity.Habit, apierror.ErrorResponse)
	UpdateHabit(id int, req *contract.UpdateHabitRequest) (*entity.Habit, apierror.ErrorResponse)
	ToggleHabit(id int) (*entity.Habit, apierror.ErrorResponse)
	DeleteHabit(id int) (*entity.Habit, apierror.ErrorResponse)
}

type DefaultHabitRoute struct {
	HabitService HabitService
}

func NewHabitDefault(habitService HabitService) *DefaultHabitRoute {
	return &DefaultHabitRoute{HabitService: habitService}
}

func (h *DefaultHabitRoute) GetHabits(c echo.Context) error {
	if c.QueryParam("id") != "" {
		id, apierr := parseID(c)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}

		habit, apierr := h.HabitService.GetHabitByID(id)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		return c.JSON(http.StatusOK, habit)
	}

	filter := entity.HabitFilter{
		Search: c.QueryParam("search"),
		Limit:  parseLimit(c),
		Offset: parseOffset(c),
	}

	habits, apierr := h.HabitService.ListHabits(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, habits)
}

func (h *DefaultHabitRoute) CreateHabit(c echo.Context) error {
	var req contract.CreateHabitRequest
	if apierr := bindBody(c, &req, contract.CreateHabitFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	habit, apierr := h.HabitService.CreateHabit(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, habit)
}

func (h *DefaultHabitRoute) UpdateHabit(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if _, apierr := h.HabitService.GetHabitByID(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateHabitRequest
	if apierr := bindBody(c, &req, contract.UpdateHabitFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	habit, apierr := h.HabitService.UpdateHabit(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, habit)
}

// ToggleHabit flips today's check for the habit and adjusts the streak.
func (h *DefaultHabitRoute) ToggleHabit(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	habit, apierr := h.HabitService.ToggleHabit(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, habit)
}

func (h *DefaultHabitRoute) DeleteHabit(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	habit, apierr := h.HabitService.DeleteHabit(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Habit deleted successfully",
		"habit":   habit,
	})
}
