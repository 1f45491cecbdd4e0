package handler

import (
	"net/http"
	"strings"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ContactSubmissionService interface {
	ListSubmissions(filter entity.ContactSubmissionFilter) ([]*entity.ContactSubmission, apierror.ErrorResponse)
	CreateSubmission(req *contract.CreateContactSubmissionRequest) (*entity.ContactSubmission, apierror.ErrorResponse)
}

type DefaultContactSubmissionRoute struct {
	SubmissionService ContactSubmissionService
}

func NewContactSubmissionDefault(submissionService ContactSubmissionService) *DefaultContactSubmissionRoute {
	return &DefaultContactSubmissionRoute{SubmissionService: submissionService}
}

func (s *DefaultContactSubmissionRoute) GetSubmissions(c echo.Context) error {
	filter := entity.ContactSubmissionFilter{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Limit:  parseLimit(c),
		Offset: parseOffset(c),
	}

	submissions, apierr := s.SubmissionService.ListSubmissions(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, submissions)
}

func (s *DefaultContactSubmissionRoute) CreateSubmission(c echo.Context) error {
	var req contract.CreateContactSubmissionRequest
	if apierr := bindBody(c, &req, contract.CreateContactSubmissionFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	submission, apierr := s.SubmissionService.CreateSubmission(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, submission)
}
