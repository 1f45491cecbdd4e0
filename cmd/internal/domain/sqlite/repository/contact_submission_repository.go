package repository

import (
	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultContactSubmissionRepository struct {
	db *gorm.DB
}

func NewContactSubmissionRepository(db *gorm.DB) *DefaultContactSubmissionRepository {
	return &DefaultContactSubmissionRepository{db: db}
}

func (d *DefaultContactSubmissionRepository) FindAll(filter entity.ContactSubmissionFilter) ([]*entity.ContactSubmission, error) {
	submissions := make([]*entity.ContactSubmission, 0)

	tx := d.db.Model(&entity.ContactSubmission{})
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		tx = tx.Where("(name LIKE ? OR email LIKE ? OR subject LIKE ?)", term, term, term)
	}

	err := tx.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (d *DefaultContactSubmissionRepository) Save(submission *entity.ContactSubmission) error {
	return d.db.Save(submission).Error
}
