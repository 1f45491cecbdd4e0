package service

import (
	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CommunityPostRepository interface {
	FindAll(filter entity.CommunityPostFilter) ([]*entity.CommunityPost, error)
	FindByID(id int) (*entity.CommunityPost, error)
	Save(post *entity.CommunityPost) error
}

type DefaultCommunityPostService struct {
	PostRepo CommunityPostRepository
	Validate *validator.Validate
}

func NewCommunityPostService(postRepo CommunityPostRepository, validate *validator.Validate) *DefaultCommunityPostService {
	return &DefaultCommunityPostService{PostRepo: postRepo, Validate: validate}
}

func (s *DefaultCommunityPostService) ListPosts(filter entity.CommunityPostFilter) ([]*entity.CommunityPost, apierror.ErrorResponse) {
	posts, err := s.PostRepo.FindAll(filter)
	if err != nil {
		log.Errorf("failed to fetch community posts: %v", err)
		return nil, apierror.InternalServerError
	}
	return posts, nil
}

func (s *DefaultCommunityPostService) GetPostByID(id int) (*entity.CommunityPost, apierror.ErrorResponse) {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch community post: %v", err)
		return nil, apierror.InternalServerError
	}

	if post == nil {
		return nil, apierror.CommunityPostNotFoundError
	}
	return post, nil
}

func (s *DefaultCommunityPostService) CreatePost(req *contract.CreateCommunityPostRequest) (*entity.CommunityPost, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr, contract.CreateCommunityPostFaults)
	}

	post := &entity.CommunityPost{
		Author:    *req.Author,
		Title:     *req.Title,
		Content:   *req.Content,
		Category:  *req.Category,
		CreatedAt: utils.NowISO(),
	}

	if err := s.PostRepo.Save(post); err != nil {
		log.Errorf("failed to create community post: %v", err)
		return nil, apierror.InternalServerError
	}
	return post, nil
}
