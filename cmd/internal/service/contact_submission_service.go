package service

import (
	"strings"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ContactSubmissionRepository interface {
	FindAll(filter entity.ContactSubmissionFilter) ([]*entity.ContactSubmission, error)
	Save(submission *entity.ContactSubmission) error
}

type DefaultContactSubmissionService struct {
	SubmissionRepo ContactSubmissionRepository
	Validate       *validator.Validate
}

func NewContactSubmissionService(submissionRepo ContactSubmissionRepository, validate *validator.Validate) *DefaultContactSubmissionService {
	return &DefaultContactSubmissionService{SubmissionRepo: submissionRepo, Validate: validate}
}

func (s *DefaultContactSubmissionService) ListSubmissions(filter entity.ContactSubmissionFilter) ([]*entity.ContactSubmission, apierror.ErrorResponse) {
	submissions, err := s.SubmissionRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch contact submissions: %v", err)
		return nil, apierror.InternalServerError
	}
	return submissions, nil
}

func (s *DefaultContactSubmissionService) CreateSubmission(req *contract.CreateContactSubmissionRequest) (*entity.ContactSubmission, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateContactSubmissionFaults)
	}

	submission := &entity.ContactSubmission{
		Name:      *req.Name,
		Email:     strings.ToLower(*req.Email),
		Subject:   *req.Subject,
		Message:   *req.Message,
		CreatedAt: utils.NowISO(),
	}

	if err := s.SubmissionRepo.Save(submission); err != nil {
		log.Errorf("failed to create contact submission: %v", err)
		return nil, apierror.InternalServerError
	}
	return submission, nil
}
