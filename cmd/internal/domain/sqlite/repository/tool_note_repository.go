package repository

import (
	"errors"

	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultToolNoteRepository struct {
	db *gorm.DB
}

func NewToolNoteRepository(db *gorm.DB) *DefaultToolNoteRepository {
	return &DefaultToolNoteRepository{db: db}
}

func (d *DefaultToolNoteRepository) FindAll(filter entity.ToolNoteFilter) ([]*entity.ToolNote, error) {
	notes := make([]*entity.ToolNote, 0)

	tx := d.db.Model(&entity.ToolNote{})
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		tx = tx.Where("(title LIKE ? OR content LIKE ?)", term, term)
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

func (d *DefaultToolNoteRepository) FindByID(id int) (*entity.ToolNote, error) {
	var note entity.ToolNote
	err := d.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultToolNoteRepository) Save(note *entity.ToolNote) error {
	return d.db.Save(note).Error
}

func (d *DefaultToolNoteRepository) Delete(note *entity.ToolNote) error {
	return d.db.Delete(note).Error
}
