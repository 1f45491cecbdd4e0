package contract

import "personalhub/cmd/internal/utils/apierror"

type CreateToolFileRequest struct {
	Name      *string `json:"name" validate:"required"`
	Category  *string `json:"category" validate:"required"`
	Size      *string `json:"size" validate:"required"`
	Timestamp *string `json:"timestamp"`
}

type UpdateToolFileRequest struct {
	Name      *string `json:"name" validate:"omitnil,required"`
	Category  *string `json:"category" validate:"omitnil,required"`
	Size      *string `json:"size" validate:"omitnil,required"`
	Timestamp *string `json:"timestamp"`
}

func (u *UpdateToolFileRequest) Empty() bool {
	return u.Name == nil && u.Category == nil && u.Size == nil && u.Timestamp == nil
}

var CreateToolFileFaults = apierror.FaultTable{
	"name":      {Code: "MISSING_NAME", Message: "Name is required and must be a non-empty string"},
	"category":  {Code: "MISSING_CATEGORY", Message: "Category is required and must be a non-empty string"},
	"size":      {Code: "MISSING_SIZE", Message: "Size is required and must be a non-empty string"},
	"timestamp": {Code: "INVALID_TIMESTAMP", Message: "Timestamp must be a string"},
}

var UpdateToolFileFaults = apierror.FaultTable{
	"name":      {Code: "INVALID_NAME", Message: "Name must be a non-empty string"},
	"category":  {Code: "INVALID_CATEGORY", Message: "Category must be a non-empty string"},
	"size":      {Code: "INVALID_SIZE", Message: "Size must be a non-empty string"},
	"timestamp": {Code: "INVALID_TIMESTAMP", Message: "Timestamp must be a string"},
}
