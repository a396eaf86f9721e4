package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Session    SessionConfig
	OTP        OTPConfig
	OMDB       OMDBConfig
	Suggestion SuggestionConfig
	RateLimit  RateLimitConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

type OMDBConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

type SuggestionConfig struct {
	Keywords    []string
	PerKeyword  int
	Concurrency int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "moview")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("OMDB_BASE_URL", "https://www.omdbapi.com/")
	viper.SetDefault("OMDB_TIMEOUT_SECONDS", 10)
	viper.SetDefault("OMDB_RATE_PER_SECOND", 10)
	viper.SetDefault("OMDB_BURST", 5)
	viper.SetDefault("SUGGESTION_KEYWORDS", "batman,harry potter,avengers,inception,matrix")
	viper.SetDefault("SUGGESTION_PER_KEYWORD", 2)
	viper.SetDefault("SUGGESTION_CONCURRENCY", 5)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	// .env is optional, container deployments only set env vars
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            viper.GetString("APP_NAME"),
			Port:            viper.GetString("PORT"),
			Debug:           viper.GetBool("DEBUG"),
			LogPath:         viper.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		OMDB: OMDBConfig{
			BaseURL:       viper.GetString("OMDB_BASE_URL"),
			APIKey:        viper.GetString("OMDB_API_KEY"),
			Timeout:       time.Duration(viper.GetInt("OMDB_TIMEOUT_SECONDS")) * time.Second,
			RatePerSecond: viper.GetFloat64("OMDB_RATE_PER_SECOND"),
			Burst:         viper.GetInt("OMDB_BURST"),
		},
		Suggestion: SuggestionConfig{
			Keywords:    SplitKeywords(viper.GetString("SUGGESTION_KEYWORDS")),
			PerKeyword:  viper.GetInt("SUGGESTION_PER_KEYWORD"),
			Concurrency: viper.GetInt("SUGGESTION_CONCURRENCY"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if config.OMDB.APIKey == "" {
		return nil, errors.New("OMDB_API_KEY is required")
	}

	return config, nil
}

// SplitKeywords parses a comma separated keyword list, dropping blanks.
func SplitKeywords(raw string) []string {
	var keywords []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}
