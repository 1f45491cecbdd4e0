package contract

import "personalhub/cmd/internal/utils/apierror"

type CreateBookmarkRequest struct {
	Title    *string `json:"title" validate:"required"`
	URL      *string `json:"url" validate:"required"`
	Category *string `json:"category" validate:"required"`
}

type UpdateBookmarkRequest struct {
	Title    *string `json:"title" validate:"omitnil,required"`
	URL      *string `json:"url" validate:"omitnil,required"`
	Category *string `json:"category" validate:"omitnil,required"`
}

func (u *UpdateBookmarkRequest) Empty() bool {
	return u.Title == nil && u.URL == nil && u.Category == nil
}

// Bookmarks use INVALID_* codes on create as well; the page predates the
// MISSING_*/INVALID_* naming split used by the other resources.
var CreateBookmarkFaults = apierror.FaultTable{
	"title":    {Code: "INVALID_TITLE", Message: "Title is required and must be a non-empty string"},
	"url":      {Code: "INVALID_URL", Message: "URL is required and must be a non-empty string"},
	"category": {Code: "INVALID_CATEGORY", Message: "Category is required and must be a non-empty string"},
}

var UpdateBookmarkFaults = apierror.FaultTable{
	"title":    {Code: "INVALID_TITLE", Message: "Title must be a non-empty string"},
	"url":      {Code: "INVALID_URL", Message: "URL must be a non-empty string"},
	"category": {Code: "INVALID_CATEGORY", Message: "Category must be a non-empty string"},
}
