package repository

import (
	"context"
	"fmt"

	"moview/internal/data/entity"
	"moview/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WatchlistRepository interface {
	Exists(ctx context.Context, userID uuid.UUID, movieID string) (bool, error)
	Upsert(ctx context.Context, item *entity.WatchlistMovie) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, userID uuid.UUID, movieID string) (bool, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistMovie, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type watchlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWatchlistRepository(db database.PgxIface, log *zap.Logger) WatchlistRepository {
	return &watchlistRepository{
		db:  db,
		log: log.With(zap.String("repository", "watchlist")),
	}
}

func (r *watchlistRepository) Exists(ctx context.Context, userID uuid.UUID, movieID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM watchlist WHERE user_id = $1 AND movie_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, movieID).Scan(&exists); err != nil {
		r.log.Error("Failed to check watchlist entry",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return false, fmt.Errorf("check watchlist entry %s for user %s: %w", movieID, userID.String(), err)
	}

	return exists, nil
}

// Upsert stores the entry, refreshing display fields when it already exists.
func (r *watchlistRepository) Upsert(ctx context.Context, item *entity.WatchlistMovie) error {
	query := `
		INSERT INTO watchlist (user_id, movie_id, title, poster_url, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, movie_id)
		DO UPDATE SET title = EXCLUDED.title, poster_url = EXCLUDED.poster_url, year = EXCLUDED.year
	`

	_, err := r.db.Exec(ctx, query,
		item.UserID,
		item.MovieID,
		item.Title,
		item.PosterURL,
		item.Year,
		item.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert watchlist entry",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.String("movie_id", item.MovieID),
		)
		return fmt.Errorf("upsert watchlist entry %s for user %s: %w", item.MovieID, item.UserID.String(), err)
	}

	return nil
}

func (r *watchlistRepository) Delete(ctx context.Context, userID uuid.UUID, movieID string) (bool, error) {
	query := `DELETE FROM watchlist WHERE user_id = $1 AND movie_id = $2`

	result, err := r.db.Exec(ctx, query, userID, movieID)
	if err != nil {
		r.log.Error("Failed to delete watchlist entry",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("movie_id", movieID),
		)
		return false, fmt.Errorf("delete watchlist entry %s for user %s: %w", movieID, userID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *watchlistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WatchlistMovie, error) {
	query := `
		SELECT user_id, movie_id, title, poster_url, year, created_at
		FROM watchlist
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list watchlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list watchlist for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var items []*entity.WatchlistMovie
	for rows.Next() {
		var item entity.WatchlistMovie
		err := rows.Scan(
			&item.UserID,
			&item.MovieID,
			&item.Title,
			&item.PosterURL,
			&item.Year,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan watchlist row", zap.Error(err))
			return nil, fmt.Errorf("scan watchlist row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watchlist rows: %w", err)
	}

	return items, nil
}

func (r *watchlistRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM watchlist WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count watchlist",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count watchlist for user %s: %w", userID.String(), err)
	}

	return count, nil
}
