package service

import (
	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ToolFileRepository interface {
	FindAll(filter entity.ToolFileFilter) ([]*entity.ToolFile, error)
	FindByID(id int) (*entity.ToolFile, error)
	Save(file *entity.ToolFile) error
	Delete(file *entity.ToolFile) error
}

// DefaultToolFileService manages file metadata records; the files page only
// tracks names and sizes, no bytes are ever uploaded.
type DefaultToolFileService struct {
	FileRepo ToolFileRepository
	Validate *validator.Validate
}

func NewToolFileService(fileRepo ToolFileRepository, validate *validator.Validate) *DefaultToolFileService {
	return &DefaultToolFileService{FileRepo: fileRepo, Validate: validate}
}

func (s *DefaultToolFileService) ListFiles(filter entity.ToolFileFilter) ([]*entity.ToolFile, apierror.ErrorResponse) {
	files, err := s.FileRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch tool files: %v", err)
		return nil, apierror.InternalServerError
	}
	return files, nil
}

func (s *DefaultToolFileService) GetFileByID(id int) (*entity.ToolFile, apierror.ErrorResponse) {
	file, err := s.FileRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tool file: %v", err)
		return nil, apierror.InternalServerError
	}

	if file == nil {
		return nil, apierror.ToolFileNotFoundError
	}
	return file, nil
}

func (s *DefaultToolFileService) CreateFile(req *contract.CreateToolFileRequest) (*entity.ToolFile, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateToolFileFaults)
	}

	now := utils.NowISO()
	file := &entity.ToolFile{
		Name:      *req.Name,
		Category:  *req.Category,
		Size:      *req.Size,
		Timestamp: now,
		CreatedAt: now,
	}
	if req.Timestamp != nil && *req.Timestamp != "" {
		file.Timestamp = *req.Timestamp
	}

	if err := s.FileRepo.Save(file); err != nil {
		log.Errorf("failed to create tool file: %v", err)
		return nil, apierror.InternalServerError
	}
	return file, nil
}

func (s *DefaultToolFileService) UpdateFile(id int, req *contract.UpdateToolFileRequest) (*entity.ToolFile, apierror.ErrorResponse) {
	file, err := s.FileRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tool file: %v", err)
		return nil, apierror.InternalServerError
	}

	if file == nil {
		return nil, apierror.ToolFileNotFoundError
	}

	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.UpdateToolFileFaults)
	}

	if req.Empty() {
		return nil, apierror.ToolFileNoUpdateFieldsError
	}

	if req.Name != nil {
		file.Name = *req.Name
	}
	if req.Category != nil {
		file.Category = *req.Category
	}
	if req.Size != nil {
		file.Size = *req.Size
	}
	if req.Timestamp != nil {
		file.Timestamp = *req.Timestamp
	}

	if err := s.FileRepo.Save(file); err != nil {
		log.Errorf("failed to update tool file: %v", err)
		return nil, apierror.InternalServerError
	}
	return file, nil
}

func (s *DefaultToolFileService) DeleteFile(id int) (*entity.ToolFile, apierror.ErrorResponse) {
	file, err := s.FileRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch tool file: %v", err)
		return nil, apierror.InternalServerError
	}

	if file == nil {
		return nil, apierror.ToolFileNotFoundError
	}

	if err := s.FileRepo.Delete(file); err != nil {
		log.Errorf("failed to delete tool file: %v", err)
		return nil, apierror.InternalServerError
	}
	return file, nil
}
