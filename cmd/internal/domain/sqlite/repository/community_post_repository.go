package repository

import (
	"errors"

	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCommunityPostRepository struct {
	db *gorm.DB
}

func NewCommunityPostRepository(db *gorm.DB) *DefaultCommunityPostRepository {
	return &DefaultCommunityPostRepository{db: db}
}

func (d *DefaultCommunityPostRepository) FindAll(filter entity.CommunityPostFilter) ([]*entity.CommunityPost, error) {
	posts := make([]*entity.CommunityPost, 0)

	tx := d.db.Model(&entity.CommunityPost{})
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		tx = tx.Where("(title LIKE ? OR content LIKE ?)", term, term)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	err := tx.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (d *DefaultCommunityPostRepository) FindByID(id int) (*entity.CommunityPost, error) {
	var post entity.CommunityPost
	err := d.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (d *DefaultCommunityPostRepository) Save(post *entity.CommunityPost) error {
	return d.db.Save(post).Error
}
