package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	dbm "globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type CommunityServiceInterface interface {
	CreatePost(ctx context.Context, accountId string, req request_models.CreatePostRequest) (*resp.PostResponse, error)
	ListPosts(ctx context.Context, page, pageSize int) ([]resp.PostResponse, error)
	GetPost(ctx context.Context, postId string) (*resp.PostResponse, error)
	ToggleLike(ctx context.Context, accountId, postId string) (*resp.LikeResponse, error)
	AddComment(ctx context.Context, accountId, postId string, req request_models.CommentRequest) (*resp.CommentResponse, error)
}

type CommunityService struct {
	communityRepo repositories.CommunityRepository
	tripRepo      repositories.TripRepository
}

func NewCommunityService(communityRepo repositories.CommunityRepository, tripRepo repositories.TripRepository) CommunityServiceInterface {
	return &CommunityService{communityRepo: communityRepo, tripRepo: tripRepo}
}

func (s *CommunityService) CreatePost(ctx context.Context, accountId string, req request_models.CreatePostRequest) (*resp.PostResponse, error) {
	author, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, utils.ErrInvalidInput
	}

	post := &dbm.CommunityPost{
		AccountID: author,
		Title:     strings.TrimSpace(req.Title),
		Content:   req.Content,
		Images:    req.Images,
	}

	// a shared trip must belong to the author
	if req.TripID != nil && *req.TripID != "" {
		trip, err := s.tripRepo.FindById(ctx, *req.TripID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if trip == nil {
			return nil, utils.ErrTripNotFound
		}
		if trip.AccountID != author {
			return nil, utils.ErrForbidden
		}
		post.TripID = &trip.ID
	}

	if err := s.communityRepo.CreatePost(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := toPostResponse(*post)
	return &out, nil
}

func (s *CommunityService) ListPosts(ctx context.Context, page, pageSize int) ([]resp.PostResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	posts, err := s.communityRepo.ListPosts(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return lo.Map(posts, func(p dbm.CommunityPost, _ int) resp.PostResponse { return toPostResponse(p) }), nil
}

func (s *CommunityService) GetPost(ctx context.Context, postId string) (*resp.PostResponse, error) {
	post, err := s.findPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	out := toPostResponse(*post)
	return &out, nil
}

func (s *CommunityService) ToggleLike(ctx context.Context, accountId, postId string) (*resp.LikeResponse, error) {
	account, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	post, err := s.findPost(ctx, postId)
	if err != nil {
		return nil, err
	}

	liked, count, err := s.communityRepo.ToggleLike(ctx, post.ID, account)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &resp.LikeResponse{Liked: liked, LikeCount: count}, nil
}

func (s *CommunityService) AddComment(ctx context.Context, accountId, postId string, req request_models.CommentRequest) (*resp.CommentResponse, error) {
	account, err := uuid.Parse(accountId)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, utils.ErrInvalidInput
	}
	post, err := s.findPost(ctx, postId)
	if err != nil {
		return nil, err
	}

	comment := &dbm.PostComment{PostID: post.ID, AccountID: account, Content: content}
	if err := s.communityRepo.AddComment(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := toCommentResponse(*comment)
	return &out, nil
}

func (s *CommunityService) findPost(ctx context.Context, postId string) (*dbm.CommunityPost, error) {
	if _, err := uuid.Parse(postId); err != nil {
		return nil, utils.ErrPostNotFound
	}
	post, err := s.communityRepo.FindPost(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	return post, nil
}

func displayName(a *dbm.Account) string {
	if a == nil {
		return ""
	}
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func toCommentResponse(c dbm.PostComment) resp.CommentResponse {
	return resp.CommentResponse{
		ID:        c.ID.String(),
		UserID:    c.AccountID.String(),
		UserName:  displayName(c.Account),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func toPostResponse(p dbm.CommunityPost) resp.PostResponse {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return resp.PostResponse{
		ID:        p.ID.String(),
		UserID:    p.AccountID.String(),
		UserName:  displayName(p.Account),
		TripID:    uuidPtrString(p.TripID),
		Title:     p.Title,
		Content:   p.Content,
		Images:    images,
		LikeCount: len(p.Likes),
		Comments:  lo.Map(p.Comments, func(c dbm.PostComment, _ int) resp.CommentResponse { return toCommentResponse(c) }),
		CreatedAt: p.CreatedAt,
	}
}
