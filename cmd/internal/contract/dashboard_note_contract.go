package contract

import "personalhub/cmd/internal/utils/apierror"

type CreateDashboardNoteRequest struct {
	Content   *string `json:"content" validate:"required"`
	Timestamp *string `json:"timestamp"`
}

type UpdateDashboardNoteRequest struct {
	Content   *string `json:"content" validate:"omitnil,required"`
	Timestamp *string `json:"timestamp"`
}

func (u *UpdateDashboardNoteRequest) Empty() bool {
	return u.Content == nil && u.Timestamp == nil
}

var CreateDashboardNoteFaults = apierror.FaultTable{
	"content":   {Code: "MISSING_CONTENT", Message: "Content is required and cannot be empty"},
	"timestamp": {Code: "INVALID_TIMESTAMP", Message: "Timestamp must be a string"},
}

var UpdateDashboardNoteFaults = apierror.FaultTable{
	"content":   {Code: "INVALID_CONTENT", Message: "Content cannot be empty"},
	"timestamp": {Code: "INVALID_TIMESTAMP", Message: "Timestamp must be a string"},
}
