package service

import (
	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type BookmarkRepository interface {
	FindAll(filter entity.BookmarkFilter) ([]*entity.Bookmark, error)
	FindByID(id int) (*entity.Bookmark, error)
	Save(bookmark *entity.Bookmark) error
	Delete(bookmark *entity.Bookmark) error
}

type DefaultBookmarkService struct {
	BookmarkRepo BookmarkRepository
	Validate     *validator.Validate
}

func NewBookmarkService(bookmarkRepo BookmarkRepository, validate *validator.Validate) *DefaultBookmarkService {
	return &DefaultBookmarkService{BookmarkRepo: bookmarkRepo, Validate: validate}
}

func (s *DefaultBookmarkService) ListBookmarks(filter entity.BookmarkFilter) ([]*entity.Bookmark, apierror.ErrorResponse) {
	bookmarks, err := s.BookmarkRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch bookmarks: %v", err)
		return nil, apierror.InternalServerError
	}
	return bookmarks, nil
}

func (s *DefaultBookmarkService) GetBookmarkByID(id int) (*entity.Bookmark, apierror.ErrorResponse) {
	bookmark, err := s.BookmarkRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch bookmark: %v", err)
		return nil, apierror.InternalServerError
	}

	if bookmark == nil {
		return nil, apierror.BookmarkNotFoundError
	}
	return bookmark, nil
}

func (s *DefaultBookmarkService) CreateBookmark(req *contract.CreateBookmarkRequest) (*entity.Bookmark, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateBookmarkFaults)
	}

	bookmark := &entity.Bookmark{
		Title:     *req.Title,
		URL:       *req.URL,
		Category:  *req.Category,
		CreatedAt: utils.NowISO(),
	}

	if err := s.BookmarkRepo.Save(bookmark); err != nil {
		log.Errorf("failed to create bookmark: %v", err)
		return nil, apierror.InternalServerError
	}
	return bookmark, nil
}

func (s *DefaultBookmarkService) UpdateBookmark(id int, req *contract.UpdateBookmarkRequest) (*entity.Bookmark, apierror.ErrorResponse) {
	bookmark, err := s.BookmarkRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch bookmark: %v", err)
		return nil, apierror.InternalServerError
	}

	if bookmark == nil {
		return nil, apierror.BookmarkNotFoundError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.UpdateBookmarkFaults)
	}

	if req.Empty() {
		return nil, apierror.BookmarkNoUpdatesError
	}

	if req.Title != nil {
		bookmark.Title = *req.Title
	}
	if req.URL != nil {
		bookmark.URL = *req.URL
	}
	if req.Category != nil {
		bookmark.Category = *req.Category
	}

	if err := s.BookmarkRepo.Save(bookmark); err != nil {
		log.Errorf("failed to update bookmark: %v", err)
		return nil, apierror.InternalServerError
	}
	return bookmark, nil
}

func (s *DefaultBookmarkService) DeleteBookmark(id int) (*entity.Bookmark, apierror.ErrorResponse) {
	bookmark, err := s.BookmarkRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch bookmark: %v", err)
		return nil, apierror.InternalServerError
	}

	if bookmark == nil {
		return nil, apierror.BookmarkNotFoundError
	}

	if err := s.BookmarkRepo.Delete(bookmark); err != nil {
		log.Errorf("failed to delete bookmark: %v", err)
		return nil, apierror.InternalServerError
	}
	return bookmark, nil
}
