package service

import (
	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DashboardNoteRepository interface {
	FindAll(filter entity.DashboardNoteFilter) ([]*entity.DashboardNote, error)
	FindByID(id int) (*entity.DashboardNote, error)
	Save(note *entity.DashboardNote) error
	Delete(note *entity.DashboardNote) error
}

type DefaultDashboardNoteService struct {
	NoteRepo DashboardNoteRepository
	Validate *validator.Validate
}

func NewDashboardNoteService(noteRepo DashboardNoteRepository, validate *validator.Validate) *DefaultDashboardNoteService {
	return &DefaultDashboardNoteService{NoteRepo: noteRepo, Validate: validate}
}

func (s *DefaultDashboardNoteService) ListNotes(filter entity.DashboardNoteFilter) ([]*entity.DashboardNote, apierror.ErrorResponse) {
	notes, err := s.NoteRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch dashboard notes: %v", err)
		return nil, apierror.InternalServerError
	}
	return notes, nil
}

func (s *DefaultDashboardNoteService) GetNoteByID(id int) (*entity.DashboardNote, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch dashboard note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.DashboardNoteNotFoundError
	}
	return note, nil
}

func (s *DefaultDashboardNoteService) CreateNote(req *contract.CreateDashboardNoteRequest) (*entity.DashboardNote, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateDashboardNoteFaults)
	}

	now := utils.NowISO()
	note := &entity.DashboardNote{
		Content:   *req.Content,
		Timestamp: now,
		CreatedAt: now,
	}
	if req.Timestamp != nil && *req.Timestamp != "" {
		note.Timestamp = *req.Timestamp
	}

	if err := s.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to create dashboard note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}

// UpdateNote with no fields is a no-op that returns the stored record
// unchanged; the dashboard widget relies on that.
func (s *DefaultDashboardNoteService) UpdateNote(id int, req *contract.UpdateDashboardNoteRequest) (*entity.DashboardNote, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch dashboard note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.DashboardNoteNotFoundError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.UpdateDashboardNoteFaults)
	}

	if req.Empty() {
		return note, nil
	}

	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Timestamp != nil {
		note.Timestamp = *req.Timestamp
	}

	if err := s.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update dashboard note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}

func (s *DefaultDashboardNoteService) DeleteNote(id int) (*entity.DashboardNote, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch dashboard note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.DashboardNoteNotFoundError
	}

	if err := s.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete dashboard note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}
