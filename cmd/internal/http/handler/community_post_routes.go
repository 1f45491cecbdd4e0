package handler

import (
	"net/http"

	"personalhub/cmd/internal/contract"
	"personalhub/cmd/internal/domain/entity"
	"personalhub/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type CommunityPostService interface {
	ListPosts(filter entity.CommunityPostFilter) ([]*entity.CommunityPost, apierror.ErrorResponse)
	GetPostByID(id int) (*entity.CommunityPost, apierror.ErrorResponse)
	CreatePost(req *contract.CreateCommunityPostRequest) (*entity.CommunityPost, apierror.ErrorResponse)
}

// DefaultCommunityPostRoute exposes the community feed. Posts are
// append-only, there is no update or delete surface.
type DefaultCommunityPostRoute struct {
	PostService CommunityPostService
}

func NewCommunityPostDefault(postService CommunityPostService) *DefaultCommunityPostRoute {
	return &DefaultCommunityPostRoute{PostService: postService}
}

func (p *DefaultCommunityPostRoute) GetPosts(c echo.Context) error {
	if c.QueryParam("id") != "" {
		id, apierr := parseID(c)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}

		post, apierr := p.PostService.GetPostByID(id)
		if apierr != nil {
			return c.JSON(apierr.Code(), apierr)
		}
		return c.JSON(http.StatusOK, post)
	}

	filter := entity.CommunityPostFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Limit:    parseLimit(c),
		Offset:   parseOffset(c),
	}

	posts, apierr := p.PostService.ListPosts(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, posts)
}

func (p *DefaultCommunityPostRoute) CreatePost(c echo.Context) error {
	var req contract.CreateCommunityPostRequest
	if apierr := bindBody(c, &req, contract.CreateCommunityPostFaults); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	post, apierr := p.PostService.CreatePost(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, post)
}
