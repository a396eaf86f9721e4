package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moview/internal/data/entity"
	"moview/internal/data/omdb"
	"moview/internal/data/repository"
	"moview/internal/dto/response"
	"moview/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistService interface {
	Status(ctx context.Context, userID uuid.UUID, movieID string) (*response.WatchlistStatusResponse, error)
	Toggle(ctx context.Context, userID uuid.UUID, movieID string) (*response.WatchlistStatusResponse, error)
	Add(ctx context.Context, userID uuid.UUID, movieID string) (*response.WatchlistMovieResponse, error)
	Remove(ctx context.Context, userID uuid.UUID, movieID string) error
	List(ctx context.Context, userID uuid.UUID) ([]response.WatchlistMovieResponse, error)
	Count(ctx context.Context, userID uuid.UUID) (int64, error)
}

type watchlistService struct {
	repo     *repository.Repository
	provider MovieProvider
	log      *zap.Logger
}

func NewWatchlistService(repo *repository.Repository, provider MovieProvider, log *zap.Logger) WatchlistService {
	return &watchlistService{
		repo:     repo,
		provider: provider,
		log:      log.With(zap.String("service", "watchlist")),
	}
}

func (s *watchlistService) Status(ctx context.Context, userID uuid.UUID, movieID string) (*response.WatchlistStatusResponse, error) {
	if !utils.IsIMDbID(movieID) {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	exists, err := s.repo.Watchlist.Exists(ctx, userID, movieID)
	if err != nil {
		return nil, fmt.Errorf("check watchlist: %w", err)
	}

	return &response.WatchlistStatusResponse{MovieID: movieID, InWatchlist: exists}, nil
}

// Toggle removes the movie when it is saved and saves it otherwise.
func (s *watchlistService) Toggle(ctx context.Context, userID uuid.UUID, movieID string) (*response.WatchlistStatusResponse, error) {
	status, err := s.Status(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}

	if status.InWatchlist {
		if err := s.Remove(ctx, userID, movieID); err != nil {
			return nil, err
		}
		return &response.WatchlistStatusResponse{MovieID: movieID, InWatchlist: false}, nil
	}

	if _, err := s.Add(ctx, userID, movieID); err != nil {
		return nil, err
	}
	return &response.WatchlistStatusResponse{MovieID: movieID, InWatchlist: true}, nil
}

// Add copies title, year and poster from the metadata API. Adding a saved movie refreshes it.
func (s *watchlistService) Add(ctx context.Context, userID uuid.UUID, movieID string) (*response.WatchlistMovieResponse, error) {
	if !utils.IsIMDbID(movieID) {
		return nil, fmt.Errorf("invalid movie ID format %s", movieID)
	}

	detail, err := s.provider.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, fmt.Errorf("movie %s not found: %w", movieID, err)
		}
		s.log.Error("Failed to load movie for watchlist",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie detail: %w", err)
	}

	item := &entity.WatchlistMovie{
		UserID:    userID,
		MovieID:   movieID,
		Title:     detail.Title,
		PosterURL: detail.Poster,
		Year:      detail.Year,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Watchlist.Upsert(ctx, item); err != nil {
		s.log.Error("Failed to add to watchlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("add to watchlist: %w", err)
	}

	s.log.Info("Added to watchlist",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID),
	)

	resp := response.WatchlistMovieToResponse(item)
	return &resp, nil
}

// Remove is a no-op for movies that are not saved.
func (s *watchlistService) Remove(ctx context.Context, userID uuid.UUID, movieID string) error {
	if !utils.IsIMDbID(movieID) {
		return fmt.Errorf("invalid movie ID format %s", movieID)
	}

	removed, err := s.repo.Watchlist.Delete(ctx, userID, movieID)
	if err != nil {
		s.log.Error("Failed to remove from watchlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("remove from watchlist: %w", err)
	}

	s.log.Info("Removed from watchlist",
		zap.String("user_id", userID.String()),
		zap.String("movie_id", movieID),
		zap.Bool("was_present", removed),
	)

	return nil
}

// List skips entries whose display fields are blank.
func (s *watchlistService) List(ctx context.Context, userID uuid.UUID) ([]response.WatchlistMovieResponse, error) {
	items, err := s.repo.Watchlist.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list watchlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list watchlist: %w", err)
	}

	out := make([]response.WatchlistMovieResponse, 0, len(items))
	for _, item := range items {
		if item.Title == "" || item.PosterURL == "" || item.Year == "" {
			s.log.Warn("Skipping incomplete watchlist entry",
				zap.String("user_id", userID.String()),
				zap.String("movie_id", item.MovieID),
			)
			continue
		}
		out = append(out, response.WatchlistMovieToResponse(item))
	}

	return out, nil
}

func (s *watchlistService) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.repo.Watchlist.CountByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count watchlist: %w", err)
	}
	return n, nil
}
