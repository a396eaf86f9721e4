package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"moview/internal/data/entity"
	"moview/internal/data/repository"
	"moview/internal/dto/request"
	"moview/internal/dto/response"
	"moview/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const anonymousAuthor = "anon"

type CommentService interface {
	CreateComment(ctx context.Context, userID uuid.UUID, author, movieID string, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	GetMovieComments(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	DeleteComment(ctx context.Context, commentID string, userID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
		now:  time.Now,
	}
}

func (s *commentService) CreateComment(ctx context.Context, userID uuid.UUID, author, movieID string, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if !utils.IsIMDbID(movieID) {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	req.Comment = strings.TrimSpace(req.Comment)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if author == "" {
		author = anonymousAuthor
	}

	comment := &entity.Comment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now().UTC(),
		},
		UserID:  userID,
		Author:  author,
		MovieID: movieID,
		Text:    req.Comment,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) GetMovieComments(ctx context.Context, movieID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	if !utils.IsIMDbID(movieID) {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	comments, err := s.repo.Comment.FindByMovieID(ctx, movieID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get movie comments",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get movie comments: %w", err)
	}

	total, err := s.repo.Comment.CountByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to count movie comments", zap.Error(err))
		return nil, fmt.Errorf("count movie comments: %w", err)
	}

	// newest first regardless of how the store orders equal pages
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	commentResponses := make([]response.CommentResponse, len(comments))
	for i, comment := range comments {
		commentResponses[i] = response.CommentToResponse(comment)
	}

	s.log.Debug("Movie comments retrieved",
		zap.String("movie_id", movieID),
		zap.Int("count", len(comments)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(commentResponses, req.Page, req.Limit(), total), nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID string, userID uuid.UUID) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return fmt.Errorf("invalid comment ID format %s: %w", commentID, err)
	}

	comment, err := s.repo.Comment.FindByID(ctx, commentUUID)
	if err != nil {
		return fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return fmt.Errorf("comment %s not found", commentID)
	}

	if comment.UserID != userID {
		return fmt.Errorf("unauthorized to delete this comment")
	}

	if err := s.repo.Comment.Delete(ctx, commentUUID); err != nil {
		s.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.String("comment_id", commentID),
		)
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted",
		zap.String("comment_id", commentID),
		zap.String("user_id", userID.String()),
		zap.String("movie_id", comment.MovieID),
	)

	return nil
}

func (s *commentService) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.repo.Comment.CountByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count user comments: %w", err)
	}
	return n, nil
}
