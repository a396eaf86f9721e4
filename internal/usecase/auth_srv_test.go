package usecase

import (
	"context"
	"testing"
	"time"

	"moview/internal/data/entity"
	"moview/internal/dto/request"
	"moview/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		OTP:     utils.OTPConfig{ExpiryMinutes: 10, Length: 6},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	meta := SessionMeta{UserAgent: "test", IPAddress: "127.0.0.1"}

	t.Run("creates user and session", func(t *testing.T) {
		tr := newTestRepos()
		tr.users.On("FindByEmail", mock.Anything, "neo@example.com").Return(nil, nil)
		tr.users.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "neo@example.com" &&
				u.DisplayName == "Neo" &&
				u.PasswordHash != "secret1" &&
				utils.CheckPasswordHash("secret1", u.PasswordHash)
		})).Return(nil)
		tr.sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
			return s.UserAgent != nil && *s.UserAgent == "test" && s.ExpiresAt.After(time.Now().Add(23*time.Hour))
		})).Return(nil)

		svc := NewAuthService(tr.repo, testConfig(), testLogger())

		got, err := svc.Register(ctx, &request.RegisterRequest{
			DisplayName: " Neo ",
			Email:       "Neo@Example.com",
			Password:    "secret1",
		}, meta)

		require.NoError(t, err)
		assert.Equal(t, "neo@example.com", got.Email)
		assert.NotEmpty(t, got.Token)
		tr.users.AssertExpectations(t)
		tr.sessions.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		tr := newTestRepos()
		tr.users.On("FindByEmail", mock.Anything, "neo@example.com").Return(testUser(uuid.New()), nil)

		svc := NewAuthService(tr.repo, testConfig(), testLogger())

		_, err := svc.Register(ctx, &request.RegisterRequest{
			DisplayName: "Neo",
			Email:       "neo@example.com",
			Password:    "secret1",
		}, meta)

		assert.ErrorContains(t, err, "email already registered")
		tr.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		tr := newTestRepos()
		svc := NewAuthService(tr.repo, testConfig(), testLogger())

		_, err := svc.Register(ctx, &request.RegisterRequest{
			DisplayName: "Neo",
			Email:       "neo@example.com",
			Password:    "12345",
		}, meta)

		assert.ErrorContains(t, err, "validation failed")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret1")
	require.NoError(t, err)

	user := testUser(uuid.New())
	user.PasswordHash = hash

	tests := []struct {
		name     string
		email    string
		password string
		found    *entity.User
		wantErr  string
	}{
		{name: "valid", email: "neo@example.com", password: "secret1", found: user},
		{name: "wrong password", email: "neo@example.com", password: "secret2", found: user, wantErr: "invalid credentials"},
		{name: "unknown email", email: "neo@example.com", password: "secret1", wantErr: "invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRepos()
			tr.users.On("FindByEmail", mock.Anything, tt.email).Return(tt.found, nil)
			tr.sessions.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()

			svc := NewAuthService(tr.repo, testConfig(), testLogger())

			got, err := svc.Login(ctx, &request.LoginRequest{Email: tt.email, Password: tt.password}, SessionMeta{})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				tr.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID.String(), got.UserID)
			_, parseErr := uuid.Parse(got.Token)
			assert.NoError(t, parseErr)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	tr := newTestRepos()
	token := uuid.NewString()
	tr.sessions.On("Revoke", mock.Anything, token).Return(nil)

	svc := NewAuthService(tr.repo, testConfig(), testLogger())

	require.NoError(t, svc.Logout(context.Background(), token))
	assert.ErrorContains(t, svc.Logout(context.Background(), "garbage"), "invalid token")
	tr.sessions.AssertExpectations(t)
}

func TestAuthService_SendPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("known email gets a fresh code", func(t *testing.T) {
		tr := newTestRepos()
		user := testUser(uuid.New())
		tr.users.On("FindByEmail", mock.Anything, "neo@example.com").Return(user, nil)
		tr.otps.On("InvalidateUserOTPs", mock.Anything, user.ID, entity.OTPTypePasswordReset).Return(nil)
		tr.otps.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.OTP) bool {
			return o.UserID == user.ID && len(o.OTPCode) == 6 && o.OTPType == entity.OTPTypePasswordReset
		})).Return(nil)

		svc := NewAuthService(tr.repo, testConfig(), testLogger())

		require.NoError(t, svc.SendPasswordReset(ctx, &request.PasswordResetRequest{Email: "neo@example.com"}))
		tr.otps.AssertExpectations(t)
	})

	t.Run("unknown email still succeeds", func(t *testing.T) {
		tr := newTestRepos()
		tr.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		svc := NewAuthService(tr.repo, testConfig(), testLogger())

		require.NoError(t, svc.SendPasswordReset(ctx, &request.PasswordResetRequest{Email: "ghost@example.com"}))
		tr.otps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		UserID:     userID,
		Email:      "neo@example.com",
		OTPCode:    "123456",
		OTPType:    entity.OTPTypePasswordReset,
		ExpiresAt:  time.Now().Add(time.Minute),
	}

	t.Run("valid code", func(t *testing.T) {
		tr := newTestRepos()
		tr.otps.On("FindValidOTP", mock.Anything, "neo@example.com", "123456", entity.OTPTypePasswordReset).Return(otp, nil)
		tr.otps.On("MarkAsUsed", mock.Anything, otp.ID).Return(nil)
		tr.users.On("UpdatePassword", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
			return utils.CheckPasswordHash("newsecret", hash)
		})).Return(nil)
		tr.sessions.On("RevokeAllUserSessions", mock.Anything, userID).Return(nil)

		svc := NewAuthService(tr.repo, testConfig(), testLogger())

		err := svc.ResetPassword(ctx, &request.ConfirmPasswordResetRequest{
			Email:       "neo@example.com",
			OTP:         "123456",
			NewPassword: "newsecret",
		})

		require.NoError(t, err)
		tr.otps.AssertExpectations(t)
		tr.users.AssertExpectations(t)
		tr.sessions.AssertExpectations(t)
	})

	t.Run("expired code", func(t *testing.T) {
		tr := newTestRepos()
		tr.otps.On("FindValidOTP", mock.Anything, "neo@example.com", "654321", entity.OTPTypePasswordReset).Return(nil, nil)

		svc := NewAuthService(tr.repo, testConfig(), testLogger())

		err := svc.ResetPassword(ctx, &request.ConfirmPasswordResetRequest{
			Email:       "neo@example.com",
			OTP:         "654321",
			NewPassword: "newsecret",
		})

		assert.ErrorContains(t, err, "invalid or expired OTP")
		tr.users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}
