package contract

import "personalhub/cmd/internal/utils/apierror"

type CreateToolNoteRequest struct {
	Title     *string `json:"title" validate:"required"`
	Content   *string `json:"content" validate:"required"`
	Timestamp *string `json:"timestamp"`
}

type UpdateToolNoteRequest struct {
	Title     *string `json:"title" validate:"omitnil,required"`
	Content   *string `json:"content" validate:"omitnil,required"`
	Timestamp *string `json:"timestamp"`
}

func (u *UpdateToolNoteRequest) Empty() bool {
	return u.Title == nil && u.Content == nil && u.Timestamp == nil
}

var CreateToolNoteFaults = apierror.FaultTable{
	"title":     {Code: "MISSING_TITLE", Message: "Title is required and cannot be empty"},
	"content":   {Code: "MISSING_CONTENT", Message: "Content is required and cannot be empty"},
	"timestamp": {Code: "INVALID_TIMESTAMP", Message: "Timestamp must be a string"},
}

var UpdateToolNoteFaults = apierror.FaultTable{
	"title":     {Code: "INVALID_TITLE", Message: "Title cannot be empty"},
	"content":   {Code: "INVALID_CONTENT", Message: "Content cannot be empty"},
	"timestamp": {Code: "INVALID_TIMESTAMP", Message: "Timestamp must be a string"},
}
