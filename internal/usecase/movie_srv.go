package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moview/internal/data/entity"
	"moview/internal/data/omdb"
	"moview/internal/data/repository"
	"moview/internal/dto/request"
	"moview/internal/dto/response"
	"moview/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieSearcher runs a title search against the metadata API.
type MovieSearcher interface {
	Search(ctx context.Context, term string) ([]entity.Movie, error)
}

// MovieProvider is the full metadata API used by the services.
type MovieProvider interface {
	MovieSearcher
	GetByID(ctx context.Context, imdbID string) (*entity.MovieDetail, error)
}

type MovieService interface {
	Search(ctx context.Context, query string) ([]response.MovieResponse, error)
	// GetDetail fills InWatchlist only when userID is non-nil.
	GetDetail(ctx context.Context, imdbID string, userID *uuid.UUID) (*response.MovieDetailResponse, error)
}

type movieService struct {
	repo     *repository.Repository
	provider MovieProvider
	log      *zap.Logger
}

func NewMovieService(repo *repository.Repository, provider MovieProvider, log *zap.Logger) MovieService {
	return &movieService{
		repo:     repo,
		provider: provider,
		log:      log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) Search(ctx context.Context, query string) ([]response.MovieResponse, error) {
	req := request.SearchMoviesRequest{Query: strings.TrimSpace(query)}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movies, err := s.provider.Search(ctx, req.Query)
	if errors.Is(err, omdb.ErrNotFound) {
		s.log.Debug("Search returned no results", zap.String("query", req.Query))
		return []response.MovieResponse{}, nil
	}
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("query", req.Query),
		)
		return nil, fmt.Errorf("search movies: %w", err)
	}

	s.log.Info("Movies searched",
		zap.String("query", req.Query),
		zap.Int("count", len(movies)),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetDetail(ctx context.Context, imdbID string, userID *uuid.UUID) (*response.MovieDetailResponse, error) {
	if !utils.IsIMDbID(imdbID) {
		return nil, fmt.Errorf("invalid movie ID format %s", imdbID)
	}

	detail, err := s.provider.GetByID(ctx, imdbID)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, fmt.Errorf("movie %s not found: %w", imdbID, err)
		}
		s.log.Error("Failed to get movie detail",
			zap.Error(err),
			zap.String("movie_id", imdbID),
		)
		return nil, fmt.Errorf("get movie detail: %w", err)
	}

	resp := response.MovieDetailToResponse(detail)

	count, err := s.repo.Comment.CountByMovieID(ctx, imdbID)
	if err != nil {
		s.log.Warn("Failed to count comments for movie",
			zap.Error(err),
			zap.String("movie_id", imdbID),
		)
	}
	resp.CommentCount = count

	if userID != nil {
		inWatchlist, err := s.repo.Watchlist.Exists(ctx, *userID, imdbID)
		if err != nil {
			s.log.Warn("Failed to check watchlist status",
				zap.Error(err),
				zap.String("movie_id", imdbID),
				zap.String("user_id", userID.String()),
			)
		} else {
			resp.InWatchlist = &inWatchlist
		}
	}

	return &resp, nil
}
