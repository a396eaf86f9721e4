package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"moview/internal/data/omdb"
	"moview/internal/usecase"
	"moview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service     usecase.MovieService
	suggestions usecase.SuggestionService
	log         *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, suggestions usecase.SuggestionService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service:     service,
		suggestions: suggestions,
		log:         log.With(zap.String("handler", "movie")),
	}
}

// GetSuggestions handles GET /api/movies/suggestions
func (h *MovieHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	movies, err := h.suggestions.Suggestions(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get suggestions")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// SearchMovies handles GET /api/movies/search?q=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		utils.ResponseBadRequest(w, "Search query is required", map[string]string{"q": "This field is required"})
		return
	}

	movies, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.handleServiceError(w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieDetail handles GET /api/movies/{id} (optional auth)
func (h *MovieHandler) GetMovieDetail(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	detail, err := h.service.GetDetail(r.Context(), movieID, userID)
	if err != nil {
		h.handleServiceError(w, err, "get movie detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, omdb.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, omdb.ErrDecode), errors.Is(err, omdb.ErrUpstream):
		h.log.Error(operation+" failed - upstream", zap.Error(err))
		utils.ResponseBadGateway(w, "Movie metadata is unavailable")

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
