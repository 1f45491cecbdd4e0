package handler

import (
	"net/http"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type BookmarkService interface {
	ListBookmarks(filter entity.BookmarkFilter) ([]*entity.Bookmark, apierror.ErrorResponse)
	GetBookmarkByID(id int) (*entity.Bookmark, apierror.ErrorResponse)
	CreateBookmark(req *contract.CreateBookmarkRequest) (*entity.Bookmark, apierror.ErrorResponse)
	UpdateBookmark(id int, req *contract.UpdateBookmarkRequest) (*entity.Bookmark, apierror.ErrorResponse)
	DeleteBookmark(id int) (*entity.Bookmark, apierror.ErrorResponse)
}

type DefaultBookmarkRoute struct {
	BookmarkService BookmarkService
}

func NewBookmarkDefault(bookmarkService BookmarkService) *DefaultBookmarkRoute {
	return &DefaultBookmarkRoute{BookmarkService: bookmarkService}
}

func (b *DefaultBookmarkRoute) GetBookmarks(c echo.Context) error {
	if c.QueryParam("id") != "" {
		id, apierr := parseID(c)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}

		bookmark, apierr := b.BookmarkService.GetBookmarkByID(id)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		return c.JSON(http.StatusOK, bookmark)
	}

	filter := entity.BookmarkFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Limit:    parseLimit(c),
		Offset:   parseOffset(c),
	}

	bookmarks, apierr := b.BookmarkService.ListBookmarks(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, bookmarks)
}

func (b *DefaultBookmarkRoute) CreateBookmark(c echo.Context) error {
	var req contract.CreateBookmarkRequest
	if apierr := bindBody(c, &req, contract.CreateBookmarkFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	bookmark, apierr := b.BookmarkService.CreateBookmark(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, bookmark)
}

func (b *DefaultBookmarkRoute) UpdateBookmark(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	if _, apierr := b.BookmarkService.GetBookmarkByID(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req contract.UpdateBookmarkRequest
	if apierr := bindBody(c, &req, contract.UpdateBookmarkFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	bookmark, apierr := b.BookmarkService.UpdateBookmark(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, bookmark)
}

func (b *DefaultBookmarkRoute) DeleteBookmark(c echo.Context) error {
	id, apierr := parseID(c)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	bookmark, apierr := b.BookmarkService.DeleteBookmark(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Bookmark deleted successfully",
		"bookmark": bookmark,
	})
}
