package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moview/internal/data/entity"
	"moview/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	// ErrNotFound is returned when the API answers Response=False for a search or id.
	ErrNotFound = errors.New("movie not found")
	// ErrDecode is returned when a payload cannot be decoded or lacks required fields.
	ErrDecode = errors.New("malformed movie metadata response")
	// ErrUpstream covers transport failures, non-200 statuses and API-reported errors.
	ErrUpstream = errors.New("movie metadata service unavailable")
)

const maxBodyBytes = 1 << 20

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewClient(cfg utils.OMDBConfig, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With(zap.String("client", "omdb")),
	}
}

// Responses
type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type searchItem struct {
	Title      string  `json:"Title"`
	Year       string  `json:"Year"`
	ImdbID     string  `json:"imdbID"`
	Type       string  `json:"Type"`
	Poster     string  `json:"Poster"`
	ImdbRating *string `json:"imdbRating"`
}

type detailResponse struct {
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title" validate:"required"`
	Year       string `json:"Year" validate:"required"`
	Genre      string `json:"Genre" validate:"required"`
	Director   string `json:"Director" validate:"required"`
	Plot       string `json:"Plot" validate:"required"`
	Poster     string `json:"Poster" validate:"required"`
	ImdbRating string `json:"imdbRating" validate:"required"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Search runs a title search (s=term). A "Movie not found!" answer maps to ErrNotFound.
func (c *Client) Search(ctx context.Context, term string) ([]entity.Movie, error) {
	q := url.Values{}
	q.Set("s", term)

	var res searchResponse
	if err := c.get(ctx, q, &res); err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}

	if !strings.EqualFold(res.Response, "True") {
		if isNotFound(res.Error) {
			return nil, fmt.Errorf("search %q: %w", term, ErrNotFound)
		}
		return nil, fmt.Errorf("search %q: %s: %w", term, res.Error, ErrUpstream)
	}

	movies := make([]entity.Movie, 0, len(res.Search))
	for _, item := range res.Search {
		movies = append(movies, entity.Movie{
			Title:      item.Title,
			Year:       item.Year,
			ImdbID:     item.ImdbID,
			Type:       item.Type,
			Poster:     item.Poster,
			ImdbRating: item.ImdbRating,
		})
	}

	return movies, nil
}

// GetByID fetches one title (i=id). Every display field must be present.
func (c *Client) GetByID(ctx context.Context, imdbID string) (*entity.MovieDetail, error) {
	q := url.Values{}
	q.Set("i", imdbID)
	q.Set("plot", "short")

	var res detailResponse
	if err := c.get(ctx, q, &res); err != nil {
		return nil, fmt.Errorf("get %s: %w", imdbID, err)
	}

	if strings.EqualFold(res.Response, "False") {
		if isNotFound(res.Error) {
			return nil, fmt.Errorf("get %s: %w", imdbID, ErrNotFound)
		}
		return nil, fmt.Errorf("get %s: %s: %w", imdbID, res.Error, ErrUpstream)
	}

	if errs := utils.ValidateStruct(res); len(errs) > 0 {
		c.log.Warn("Detail payload missing fields",
			zap.String("imdb_id", imdbID),
			zap.Any("errors", errs))
		return nil, fmt.Errorf("get %s: %s: %w", imdbID, utils.FormatValidationErrors(errs), ErrDecode)
	}

	id := res.ImdbID
	if id == "" {
		id = imdbID
	}

	return &entity.MovieDetail{
		ImdbID:     id,
		Title:      res.Title,
		Year:       res.Year,
		Genre:      res.Genre,
		Director:   res.Director,
		Plot:       res.Plot,
		Poster:     res.Poster,
		ImdbRating: res.ImdbRating,
	}, nil
}

func (c *Client) get(ctx context.Context, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	q.Set("apikey", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.log.Debug("OMDB request",
		zap.String("query", redact(q)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}

func isNotFound(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "not found") || strings.Contains(msg, "incorrect imdb id")
}

func redact(q url.Values) string {
	c := url.Values{}
	for k, v := range q {
		if k == "apikey" {
			continue
		}
		c[k] = v
	}
	return c.Encode()
}
