package repository

import (
	"errors"

	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultHabitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) *DefaultHabitRepository {
	return &DefaultHabitRepository{db: db}
}

func (d *DefaultHabitRepository) FindAll(filter entity.HabitFilter) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)

	tx := d.db.Model(&entity.Habit{})
	if filter.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	err := tx.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&habits).Error
	if err != nil {
		return nil, err
	}
	return habits, nil
}

func (d *DefaultHabitRepository) FindByID(id int) (*entity.Habit, error) {
	var habit entity.Habit
	err := d.db.First(&habit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (d *DefaultHabitRepository) Save(habit *entity.Habit) error {
	return d.db.Save(habit).Error
}

func (d *DefaultHabitRepository) Delete(habit *entity.Habit) error {
	return d.db.Delete(habit).Error
}
