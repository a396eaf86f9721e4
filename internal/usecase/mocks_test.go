package usecase

import (
	"context"
	"sort"
	"sync"

	"moview/internal/data/entity"
	"moview/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockUserRepository is a testify mock of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) error {
	args := m.Called(ctx, id, displayName)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockSessionRepository is a testify mock of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionRepository) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSessionRepository) CleanExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockOTPRepository is a testify mock of repository.OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, otp *entity.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) FindValidOTP(ctx context.Context, email, otpCode string, otpType entity.OTPType) (*entity.OTP, error) {
	args := m.Called(ctx, email, otpCode, otpType)
	otp, _ := args.Get(0).(*entity.OTP)
	return otp, args.Error(1)
}

func (m *MockOTPRepository) MarkAsUsed(ctx context.Context, otpID uuid.UUID) error {
	args := m.Called(ctx, otpID)
	return args.Error(0)
}

func (m *MockOTPRepository) InvalidateUserOTPs(ctx context.Context, userID uuid.UUID, otpType entity.OTPType) error {
	args := m.Called(ctx, userID, otpType)
	return args.Error(0)
}

// MockMovieProvider is a testify mock of MovieProvider
type MockMovieProvider struct {
	mock.Mock
}

func (m *MockMovieProvider) Search(ctx context.Context, term string) ([]entity.Movie, error) {
	args := m.Called(ctx, term)
	movies, _ := args.Get(0).([]entity.Movie)
	return movies, args.Error(1)
}

func (m *MockMovieProvider) GetByID(ctx context.Context, imdbID string) (*entity.MovieDetail, error) {
	args := m.Called(ctx, imdbID)
	detail, _ := args.Get(0).(*entity.MovieDetail)
	return detail, args.Error(1)
}

// memCommentRepository keeps comments in memory
type memCommentRepository struct {
	mu       sync.Mutex
	comments []*entity.Comment
	countErr error
}

func (r *memCommentRepository) Create(_ context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *comment
	r.comments = append(r.comments, &c)
	return nil
}

func (r *memCommentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// FindByMovieID returns insertion order so the service ordering is exercised.
func (r *memCommentRepository) FindByMovieID(_ context.Context, movieID string, limit, offset int) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.MovieID == movieID {
			cp := *c
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return []*entity.Comment{}, nil
	}
	end := min(offset+limit, len(out))
	return out[offset:end], nil
}

func (r *memCommentRepository) CountByMovieID(_ context.Context, movieID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for _, c := range r.comments {
		if c.MovieID == movieID {
			n++
		}
	}
	return n, nil
}

func (r *memCommentRepository) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for _, c := range r.comments {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memCommentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.comments {
		if c.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

type watchlistKey struct {
	userID  uuid.UUID
	movieID string
}

// memWatchlistRepository keeps watchlist entries in memory
type memWatchlistRepository struct {
	mu       sync.Mutex
	items    map[watchlistKey]*entity.WatchlistMovie
	countErr error
}

func newMemWatchlistRepository() *memWatchlistRepository {
	return &memWatchlistRepository{items: make(map[watchlistKey]*entity.WatchlistMovie)}
}

func (r *memWatchlistRepository) Exists(_ context.Context, userID uuid.UUID, movieID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[watchlistKey{userID, movieID}]
	return ok, nil
}

func (r *memWatchlistRepository) Upsert(_ context.Context, item *entity.WatchlistMovie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *item
	r.items[watchlistKey{item.UserID, item.MovieID}] = &cp
	return nil
}

func (r *memWatchlistRepository) Delete(_ context.Context, userID uuid.UUID, movieID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := watchlistKey{userID, movieID}
	_, ok := r.items[key]
	delete(r.items, key)
	return ok, nil
}

func (r *memWatchlistRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.WatchlistMovie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.WatchlistMovie
	for k, v := range r.items {
		if k.userID == userID {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memWatchlistRepository) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for k := range r.items {
		if k.userID == userID {
			n++
		}
	}
	return n, nil
}

func (r *memWatchlistRepository) snapshot(userID uuid.UUID) map[string]entity.WatchlistMovie {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]entity.WatchlistMovie)
	for k, v := range r.items {
		if k.userID == userID {
			out[k.movieID] = *v
		}
	}
	return out
}

type testRepos struct {
	repo      *repository.Repository
	users     *MockUserRepository
	sessions  *MockSessionRepository
	otps      *MockOTPRepository
	comments  *memCommentRepository
	watchlist *memWatchlistRepository
}

func newTestRepos() *testRepos {
	tr := &testRepos{
		users:     &MockUserRepository{},
		sessions:  &MockSessionRepository{},
		otps:      &MockOTPRepository{},
		comments:  &memCommentRepository{},
		watchlist: newMemWatchlistRepository(),
	}
	tr.repo = &repository.Repository{
		User:      tr.users,
		Session:   tr.sessions,
		OTP:       tr.otps,
		Comment:   tr.comments,
		Watchlist: tr.watchlist,
	}
	return tr
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
