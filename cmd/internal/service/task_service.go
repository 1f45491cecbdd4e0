package service

import (
	"slices"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type TaskRepository interface {
	FindAll(filter entity.TaskFilter) ([]*entity.Task, error)
	FindByID(id int) (*entity.Task, error)
	Save(task *entity.Task) error
	Delete(task *entity.Task) error
}

type DefaultTaskService struct {
	TaskRepo TaskRepository
	Validate *validator.Validate
}

func NewTaskService(taskRepo TaskRepository, validate *validator.Validate) *DefaultTaskService {
	return &DefaultTaskService{TaskRepo: taskRepo, Validate: validate}
}

func (s *DefaultTaskService) ListTasks(filter entity.TaskFilter) ([]*entity.Task, apierror.ErrorResponse) {
	if filter.Priority != "" && !slices.Contains(entity.TaskPriorities, filter.Priority) {
		return nil, apierror.InvalidPriorityError
	}

	tasks, err := s.TaskRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch tasks: %v", err)
		return nil, apierror.InternalServerError
	}
	return tasks, nil
}

func (s *DefaultTaskService) GetTaskByID(id int) (*entity.Task, apierror.ErrorResponse) {
	task, err := s.TaskRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch task: %v", err)
		return nil, apierror.InternalServerError
	}

	if task == nil {
		return nil, apierror.TaskNotFoundError
	}
	return task, nil
}

func (s *DefaultTaskService) CreateTask(req *contract.CreateTaskRequest) (*entity.Task, apierror.ErrorResponse) {
	utils.Sanitize(req)
	// An empty priority means "use the default", same as omitting it.
	if req.Priority != nil && *req.Priority == "" {
		req.Priority = nil
	}
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateTaskFaults)
	}

	task := &entity.Task{
		Text:      *req.Text,
		Priority:  entity.DefaultTaskPriority,
		CreatedAt: utils.NowISO(),
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	if err := s.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to create task: %v", err)
		return nil, apierror.InternalServerError
	}
	return task, nil
}

func (s *DefaultTaskService) UpdateTask(id int, req *contract.UpdateTaskRequest) (*entity.Task, apierror.ErrorResponse) {
	task, err := s.TaskRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch task: %v", err)
		return nil, apierror.InternalServerError
	}

	if task == nil {
		return nil, apierror.TaskNotFoundError
	}

	if req.Empty() {
		return nil, apierror.TaskNoUpdateFieldsError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.UpdateTaskFaults)
	}

	if req.Text != nil {
		task.Text = *req.Text
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}

	if err := s.TaskRepo.Save(task); err != nil {
		log.Errorf("failed to update task: %v", err)
		return nil, apierror.InternalServerError
	}
	return task, nil
}

func (s *DefaultTaskService) DeleteTask(id int) (*entity.Task, apierror.ErrorResponse) {
	task, err := s.TaskRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch task: %v", err)
		return nil, apierror.InternalServerError
	}

	if task == nil {
		return nil, apierror.TaskNotFoundError
	}

	if err := s.TaskRepo.Delete(task); err != nil {
		log.Errorf("failed to delete task: %v", err)
		return nil, apierror.InternalServerError
	}
	return task, nil
}
