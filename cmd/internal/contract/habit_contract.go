package contract

import "personalhub/cmd/internal/utils/apierror"

type CreateHabitRequest struct {
	Name         *string `json:"name" validate:"required"`
	Streak       *int    `json:"streak"`
	CheckedToday *bool   `json:"checkedToday"`
}

type UpdateHabitRequest struct {
	Name         *string `json:"name" validate:"omitnil,required"`
	Streak       *int    `json:"streak"`
	CheckedToday *bool   `json:"checkedToday"`
}

func (u *UpdateHabitRequest) Empty() bool {
	return u.Name == nil && u.Streak == nil && u.CheckedToday == nil
}

var CreateHabitFaults = apierror.FaultTable{
	"name":         {Code: "MISSING_NAME", Message: "Name is required and must be a non-empty string"},
	"streak":       {Code: "INVALID_STREAK", Message: "Streak must be a number"},
	"checkedToday": {Code: "INVALID_CHECKED_TODAY", Message: "CheckedToday must be a boolean"},
}

var UpdateHabitFaults = apierror.FaultTable{
	"name":         {Code: "INVALID_NAME", Message: "Name must be a non-empty string"},
	"streak":       {Code: "INVALID_STREAK", Message: "Streak must be a number"},
	"checkedToday": {Code: "INVALID_CHECKED_TODAY", Message: "CheckedToday must be a boolean"},
}
