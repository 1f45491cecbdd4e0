package contract

import "personalhub/cmd/internal/utils/apierror"

type CreateContactSubmissionRequest struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required,email"`
	Subject *string `json:"subject" validate:"required"`
	Message *string `json:"message" validate:"required"`
}

var CreateContactSubmissionFaults = apierror.FaultTable{
	"name":        {Code: "MISSING_NAME", Message: "Name is required and must be a non-empty string"},
	"email":       {Code: "MISSING_EMAIL", Message: "Email is required and must be a non-empty string"},
	"email:email": {Code: "INVALID_EMAIL", Message: "Invalid email format"},
	"subject":     {Code: "MISSING_SUBJECT", Message: "Subject is required and must be a non-empty string"},
	"message":     {Code: "MISSING_MESSAGE", Message: "Message is required and must be a non-empty string"},
}
