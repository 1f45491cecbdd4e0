package service

import (
	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type HabitRepository interface {
	FindAll(filter entity.HabitFilter) ([]*entity.Habit, error)
	FindByID(id int) (*entity.Habit, error)
	Save(habit *entity.Habit) error
	Delete(habit *entity.Habit) error
}

type DefaultHabitService struct {
	HabitRepo HabitRepository
	Validate  *validator.Validate
}

func NewHabitService(habitRepo HabitRepository, validate *validator.Validate) *DefaultHabitService {
	return &DefaultHabitService{HabitRepo: habitRepo, Validate: validate}
}

func (s *DefaultHabitService) ListHabits(filter entity.HabitFilter) ([]*entity.Habit, apierror.ErrorResponse) {
	habits, err := s.HabitRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch habits: %v", err)
		return nil, apierror.InternalServerError
	}
	return habits, nil
}

func (s *DefaultHabitService) GetHabitByID(id int) (*entity.Habit, apierror.ErrorResponse) {
	habit, err := s.HabitRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch habit: %v", err)
		return nil, apierror.InternalServerError
	}

	if habit == nil {
		return nil, apierror.HabitNotFoundError
	}
	return habit, nil
}

func (s *DefaultHabitService) CreateHabit(req *contract.CreateHabitRequest) (*entity.Habit, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateHabitFaults)
	}

	habit := &entity.Habit{
		Name:      *req.Name,
		CreatedAt: utils.NowISO(),
	}
	if req.Streak != nil {
		habit.Streak = *req.Streak
	}
	if req.CheckedToday != nil {
		habit.CheckedToday = *req.CheckedToday
	}

	if err := s.HabitRepo.Save(habit); err != nil {
		log.Errorf("failed to create habit: %v", err)
		return nil, apierror.InternalServerError
	}
	return habit, nil
}

func (s *DefaultHabitService) UpdateHabit(id int, req *contract.UpdateHabitRequest) (*entity.Habit, apierror.ErrorResponse) {
	habit, err := s.HabitRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch habit: %v", err)
		return nil, apierror.InternalServerError
	}

	if habit == nil {
		return nil, apierror.HabitNotFoundError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.UpdateHabitFaults)
	}

	if req.Empty() {
		return nil, apierror.HabitNoUpdateFieldsError
	}

	if req.Name != nil {
		habit.Name = *req.Name
	}
	if req.Streak != nil {
		habit.Streak = *req.Streak
	}
	if req.CheckedToday != nil {
		habit.CheckedToday = *req.CheckedToday
	}

	if err := s.HabitRepo.Save(habit); err != nil {
		log.Errorf("failed to update habit: %v", err)
		return nil, apierror.InternalServerError
	}
	return habit, nil
}

// ToggleHabit flips checkedToday: checking bumps the streak, unchecking
// takes it back down, never below zero.
func (s *DefaultHabitService) ToggleHabit(id int) (*entity.Habit, apierror.ErrorResponse) {
	habit, err := s.HabitRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch habit: %v", err)
		return nil, apierror.InternalServerError
	}

	if habit == nil {
		return nil, apierror.HabitNotFoundError
	}

	habit.CheckedToday = !habit.CheckedToday
	if habit.CheckedToday {
		habit.Streak++
	} else if habit.Streak > 0 {
		habit.Streak--
	}

	if err := s.HabitRepo.Save(habit); err != nil {
		log.Errorf("failed to toggle habit: %v", err)
		return nil, apierror.InternalServerError
	}
	return habit, nil
}

func (s *DefaultHabitService) DeleteHabit(id int) (*entity.Habit, apierror.ErrorResponse) {
	habit, err := s.HabitRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch habit: %v", err)
		return nil, apierror.InternalServerError
	}

	if habit == nil {
		return nil, apierror.HabitNotFoundError
	}

	if err := s.HabitRepo.Delete(habit); err != nil {
		log.Errorf("failed to delete habit: %v", err)
		return nil, apierror.InternalServerError
	}
	return habit, nil
}
