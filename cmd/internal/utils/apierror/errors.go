package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"error"`
	ErrCode string `json:"code,omitempty"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// FieldFault is the wire error for one request field. Tables are keyed by
// the field's json name; a "name:tag" key overrides the base entry for a
// specific validation tag (e.g. "email:email" for format failures).
type FieldFault struct {
	Code    string
	Message string
}

type FaultTable map[string]FieldFault

var (
	InternalServerError = NewSimple(500, "Internal server error")

	InvalidIDError       = New(400, "INVALID_ID", "Valid ID is required")
	InvalidPriorityError = New(400, "INVALID_PRIORITY", "Invalid priority. Must be one of: high, medium, low")

	TaskNotFoundError          = New(404, "TASK_NOT_FOUND", "Task not found")
	DashboardNoteNotFoundError = New(404, "NOTE_NOT_FOUND", "Note not found")
	HabitNotFoundError         = New(404, "HABIT_NOT_FOUND", "Habit not found")
	BookmarkNotFoundError      = New(404, "NOT_FOUND", "Bookmark not found")
	ToolNoteNotFoundError      = New(404, "NOT_FOUND", "Note not found")
	ToolFileNotFoundError      = New(404, "FILE_NOT_FOUND", "File not found")
	CommunityPostNotFoundError = New(404, "POST_NOT_FOUND", "Post not found")

	/*
	 * Zero-field updates keep per-resource wording: tasks use their own
	 * message, bookmarks their own code. The shipped UI depends on both.
	 */
	TaskNoUpdateFieldsError     = New(400, "NO_UPDATE_FIELDS", "At least one field must be provided for update")
	HabitNoUpdateFieldsError    = New(400, "NO_UPDATE_FIELDS", "No valid fields to update")
	ToolFileNoUpdateFieldsError = New(400, "NO_UPDATE_FIELDS", "No valid fields to update")
	BookmarkNoUpdatesError      = New(400, "NO_UPDATES", "No valid fields to update")
)

// FromValidationError maps the first validation failure to its wire fault.
// Field names reported by the validator are json names (see the tag name
// function registered in main).
func FromValidationError(err error, faults FaultTable) ErrorResponse {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok || len(ve) == 0 {
		return InternalServerError
	}

	fe := ve[0]
	if fault, ok := faults[fe.Field()+":"+fe.Tag()]; ok {
		return New(http.StatusBadRequest, fault.Code, fault.Message)
	}
	if fault, ok := faults[fe.Field()]; ok {
		return New(http.StatusBadRequest, fault.Code, fault.Message)
	}
	return NewSimple(http.StatusBadRequest, "Invalid value for field '%s'", fe.Field())
}

func New(status int, code, msg string) *APIError {
	return &APIError{Status: status, ErrCode: code, Message: msg}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}
