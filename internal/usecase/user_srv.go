package usecase

import (
	"context"
	"fmt"
	"strings"

	"moview/internal/data/repository"
	"moview/internal/dto/request"
	"moview/internal/dto/response"
	"moview/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

// StatCounter counts records owned by a user.
type StatCounter func(ctx context.Context, userID uuid.UUID) (int64, error)

type userService struct {
	repo           *repository.Repository
	countWatchlist StatCounter
	countComments  StatCounter
	log            *zap.Logger
}

func NewUserService(repo *repository.Repository, countWatchlist, countComments StatCounter, log *zap.Logger) UserService {
	return &userService{
		repo:           repo,
		countWatchlist: countWatchlist,
		countComments:  countComments,
		log:            log.With(zap.String("service", "user")),
	}
}

// GetProfile reports zero for a count that cannot be loaded.
func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	var watchlistCount, commentCount int64

	var g errgroup.Group
	g.Go(func() error {
		n, err := us.countWatchlist(ctx, userID)
		if err != nil {
			us.log.Warn("Failed to count watchlist", zap.Error(err), zap.String("user_id", userID.String()))
			return nil
		}
		watchlistCount = n
		return nil
	})
	g.Go(func() error {
		n, err := us.countComments(ctx, userID)
		if err != nil {
			us.log.Warn("Failed to count comments", zap.Error(err), zap.String("user_id", userID.String()))
			return nil
		}
		commentCount = n
		return nil
	})
	_ = g.Wait()

	return &response.ProfileResponse{
		UserResponse:   response.UserToResponse(user),
		WatchlistCount: watchlistCount,
		CommentCount:   commentCount,
	}, nil
}

func (us *userService) UpdateDisplayName(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if err := us.repo.User.UpdateDisplayName(ctx, userID, req.DisplayName); err != nil {
		us.log.Error("Failed to update display name", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	user.DisplayName = req.DisplayName
	us.log.Info("Display name updated", zap.String("user_id", userID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}
