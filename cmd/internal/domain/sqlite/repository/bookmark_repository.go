package repository

import (
	"errors"

	"personalhub/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultBookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *DefaultBookmarkRepository {
	return &DefaultBookmarkRepository{db: db}
}

func (d *DefaultBookmarkRepository) FindAll(filter entity.BookmarkFilter) ([]*entity.Bookmark, error) {
	bookmarks := make([]*entity.Bookmark, 0)

	tx := d.db.Model(&entity.Bookmark{})
	if filter.Search != "" {
		tx = tx.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}

	err := tx.Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (d *DefaultBookmarkRepository) FindByID(id int) (*entity.Bookmark, error) {
	var bookmark entity.Bookmark
	err := d.db.First(&bookmark, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (d *DefaultBookmarkRepository) Save(bookmark *entity.Bookmark) error {
	return d.db.Save(bookmark).Error
}

func (d *DefaultBookmarkRepository) Delete(bookmark *entity.Bookmark) error {
	return d.db.Delete(bookmark).Error
}
