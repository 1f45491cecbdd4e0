package contract

import "personalhub/cmd/internal/utils/apierror"

// Community posts are create-and-read only; there is no update or delete
// surface in the UI.
type CreateCommunityPostRequest struct {
	Author   *string `json:"author" validate:"required"`
	Title    *string `json:"title" validate:"required"`
	Content  *string `json:"content" validate:"required"`
	Category *string `json:"category" validate:"required"`
}

var CreateCommunityPostFaults = apierror.FaultTable{
	"author":   {Code: "MISSING_AUTHOR", Message: "Author is required and must be a non-empty string"},
	"title":    {Code: "MISSING_TITLE", Message: "Title is required and must be a non-empty string"},
	"content":  {Code: "MISSING_CONTENT", Message: "Content is required and must be a non-empty string"},
	"category": {Code: "MISSING_CATEGORY", Message: "Category is required and must be a non-empty string"},
}
