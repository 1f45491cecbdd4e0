package service

import (
	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ToolNoteRepository interface {
	FindAll(filter entity.ToolNoteFilter) ([]*entity.ToolNote, error)
	FindByID(id int) (*entity.ToolNote, error)
	Save(note *entity.ToolNote) error
	Delete(note *entity.ToolNote) error
}

type DefaultToolNoteService struct {
	NoteRepo ToolNoteRepository
	Validate *validator.Validate
}

func NewToolNoteService(noteRepo ToolNoteRepository, validate *validator.Validate) *DefaultToolNoteService {
	return &DefaultToolNoteService{NoteRepo: noteRepo, Validate: validate}
}

func (s *DefaultToolNoteService) ListNotes(filter entity.ToolNoteFilter) ([]*entity.ToolNote, apierror.ErrorResponse) {
	notes, err := s.NoteRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch tool notes: %v", err)
		return nil, apierror.InternalServerError
	}
	return notes, nil
}

func (s *DefaultToolNoteService) GetNoteByID(id int) (*entity.ToolNote, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tool note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.ToolNoteNotFoundError
	}
	return note, nil
}

func (s *DefaultToolNoteService) CreateNote(req *contract.CreateToolNoteRequest) (*entity.ToolNote, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateToolNoteFaults)
	}

	now := utils.NowISO()
	note := &entity.ToolNote{
		Title:     *req.Title,
		Content:   *req.Content,
		Timestamp: now,
		CreatedAt: now,
	}
	if req.Timestamp != nil && *req.Timestamp != "" {
		note.Timestamp = *req.Timestamp
	}

	if err := s.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to create tool note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}

// UpdateNote with no fields returns the stored record unchanged, like the
// dashboard notes endpoint.
func (s *DefaultToolNoteService) UpdateNote(id int, req *contract.UpdateToolNoteRequest) (*entity.ToolNote, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tool note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.ToolNoteNotFoundError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.UpdateToolNoteFaults)
	}

	if req.Empty() {
		return note, nil
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Timestamp != nil {
		note.Timestamp = *req.Timestamp
	}

	if err := s.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update tool note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}

func (s *DefaultToolNoteService) DeleteNote(id int) (*entity.ToolNote, apierror.ErrorResponse) {
	note, err := s.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tool note: %v", err)
		return nil, apierror.InternalServerError
	}

	if note == nil {
		return nil, apierror.ToolNoteNotFoundError
	}

	if err := s.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete tool note: %v", err)
		return nil, apierror.InternalServerError
	}
	return note, nil
}
