package repository

import (
	"errors"

	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultDashboardNoteRepository struct {
	db *gorm.DB
}

func NewDashboardNoteRepository(db *gorm.DB) *DefaultDashboardNoteRepository {
	return &DefaultDashboardNoteRepository{db: db}
}

func (d *DefaultDashboardNoteRepository) FindAll(filter entity.DashboardNoteFilter) ([]*entity.DashboardNote, error) {
	notes := make([]*entity.DashboardNote, 0)

	tx := d.db.Model(&entity.DashboardNote{})
	if filter.Search != "" {
		tx = tx.Where("content LIKE ?", "%"+filter.Search+"%")
	}

	err := tx.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultDashboardNoteRepository) FindByID(id int) (*entity.DashboardNote, error) {
	var note entity.DashboardNote
	err := d.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultDashboardNoteRepository) Save(note *entity.DashboardNote) error {
	return d.db.Save(note).Error
}

func (d *DefaultDashboardNoteRepository) Delete(note *entity.DashboardNote) error {
	return d.db.Delete(note).Error
}
