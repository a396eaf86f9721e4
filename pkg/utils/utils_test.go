package utils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "batman,harry potter,avengers", want: []string{"batman", "harry potter", "avengers"}},
		{raw: " matrix , ,inception ", want: []string{"matrix", "inception"}},
		{raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitKeywords(tt.raw))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults from environment only", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("OMDB_API_KEY", "abc123")
		t.Setenv("SUGGESTION_KEYWORDS", "alien, heat")

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "abc123", config.OMDB.APIKey)
		assert.Equal(t, []string{"alien", "heat"}, config.Suggestion.Keywords)
		assert.Equal(t, 2, config.Suggestion.PerKeyword)
		assert.Equal(t, 10*time.Second, config.OMDB.Timeout)
		assert.Equal(t, "8080", config.App.Port)
	})

	t.Run("reads dotenv file", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("OMDB_API_KEY", "")
		t.Setenv("PORT", "")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OMDB_API_KEY=fromfile\nPORT=9090\n"), 0o600))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "fromfile", config.OMDB.APIKey)
		assert.Equal(t, "9090", config.App.Port)
	})

	t.Run("api key required", func(t *testing.T) {
		viper.Reset()
		t.Chdir(t.TempDir())
		t.Setenv("OMDB_API_KEY", "")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "OMDB_API_KEY")
	})
}

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Email   string `validate:"required,email"`
		MovieID string `validate:"required,imdbid"`
		Code    string `validate:"required,numeric"`
	}

	assert.Empty(t, ValidateStruct(payload{Email: "neo@example.com", MovieID: "tt0133093", Code: "123456"}))

	errs := ValidateStruct(payload{Email: "neo", MovieID: "0133093", Code: "12ab"})
	assert.Equal(t, map[string]string{
		"Email":   "Invalid email format",
		"MovieID": "Must be a valid IMDb ID",
		"Code":    "Must contain digits only",
	}, errs)
	assert.Equal(t,
		"Code: Must contain digits only; Email: Invalid email format; MovieID: Must be a valid IMDb ID",
		FormatValidationErrors(errs))
}

func TestIsIMDbID(t *testing.T) {
	for id, want := range map[string]bool{
		"tt0133093":  true,
		"tt10872600": true,
		"tt123":      false,
		"nm0000206":  false,
		"tt0133093 ": false,
		"":           false,
	} {
		assert.Equal(t, want, IsIMDbID(id), id)
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("-2", 10))
	assert.Equal(t, 3, CalculateTotalPages(5, 2))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}

func TestGenerateOTP(t *testing.T) {
	code := GenerateOTP(8)

	assert.Len(t, code, 8)
	assert.Empty(t, strings.Trim(code, "0123456789"))
	assert.Len(t, GenerateOTP(0), 6)
}

func TestUserContext(t *testing.T) {
	id := uuid.New()
	ctx := SetUserContext(context.Background(), id, "neo@example.com")
	ctx = SetTokenContext(ctx, "token")

	gotID, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, gotID)

	email, ok := GetEmailFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "neo@example.com", email)

	token, ok := GetTokenFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "token", token)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestInitLogger(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(dir, "test", false)
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
