package repository

import (
	"errors"

	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultToolFileRepository struct {
	db *gorm.DB
}

func NewToolFileRepository(db *gorm.DB) *DefaultToolFileRepository {
	return &DefaultToolFileRepository{db: db}
}

func (d *DefaultToolFileRepository) FindAll(filter entity.ToolFileFilter) ([]*entity.ToolFile, error) {
	files := make([]*entity.ToolFile, 0)

	tx := d.db.Model(&entity.ToolFile{})
	if filter.Search != "" {
		tx = tx.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	err := tx.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (d *DefaultToolFileRepository) FindByID(id int) (*entity.ToolFile, error) {
	var file entity.ToolFile
	err := d.db.First(&file, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (d *DefaultToolFileRepository) Save(file *entity.ToolFile) error {
	return d.db.Save(file).Error
}

func (d *DefaultToolFileRepository) Delete(file *entity.ToolFile) error {
	return d.db.Delete(file).Error
}
