package contract

import "personalhub/cmd/internal/utils/apierror"

type CreateTaskRequest struct {
	Text      *string `json:"text" validate:"required"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority" validate:"omitnil,oneof=high medium low"`
}

type UpdateTaskRequest struct {
	Text      *string `json:"text" validate:"omitnil,required"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority" validate:"omitnil,oneof=high medium low"`
}

func (u *UpdateTaskRequest) Empty() bool {
	return u.Text == nil && u.Completed == nil && u.Priority == nil
}

var CreateTaskFaults = apierror.FaultTable{
	"text":      {Code: "MISSING_TEXT", Message: "Text is required and cannot be empty"},
	"completed": {Code: "INVALID_COMPLETED", Message: "Completed must be a boolean"},
	"priority":  {Code: "INVALID_PRIORITY", Message: "Invalid priority. Must be one of: high, medium, low"},
}

var UpdateTaskFaults = apierror.FaultTable{
	"text":      {Code: "INVALID_TEXT", Message: "Text cannot be empty"},
	"completed": {Code: "INVALID_COMPLETED", Message: "Completed must be a boolean"},
	"priority":  {Code: "INVALID_PRIORITY", Message: "Invalid priority. Must be one of: high, medium, low"},
}
