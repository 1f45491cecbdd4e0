package repository

import (
	"errors"

	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultTaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *DefaultTaskRepository {
	return &DefaultTaskRepository{db: db}
}

func (d *DefaultTaskRepository) FindAll(filter entity.TaskFilter) ([]*entity.Task, error) {
	tasks := make([]*entity.Task, 0)

	tx := d.db.Model(&entity.Task{})
	if filter.Search != "" {
		tx = tx.Where("text LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Completed != nil {
		tx = tx.Where("completed = ?", *filter.Completed)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}

	err := tx.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (d *DefaultTaskRepository) FindByID(id int) (*entity.Task, error) {
	var task entity.Task
	err := d.db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (d *DefaultTaskRepository) Save(task *entity.Task) error {
	return d.db.Save(task).Error
}

func (d *DefaultTaskRepository) Delete(task *entity.Task) error {
	return d.db.Delete(task).Error
}
