package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"moview/internal/data/omdb"
	"moview/internal/dto/request"
	"moview/internal/usecase"
	"moview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type WatchlistHandler struct {
	service usecase.WatchlistService
	log     *zap.Logger
}

func NewWatchlistHandler(service usecase.WatchlistService, log *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		log:     log.With(zap.String("handler", "watchlist")),
	}
}

// GetWatchlist handles GET /api/user/watchlist
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get watchlist")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// GetStatus handles GET /api/user/watchlist/{id}
func (h *WatchlistHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	status, err := h.service.Status(r.Context(), userID, movieID)
	if err != nil {
		h.handleServiceError(w, err, "get watchlist status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// Toggle handles POST /api/user/watchlist/{id}/toggle
func (h *WatchlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	status, err := h.service.Toggle(r.Context(), userID, movieID)
	if err != nil {
		h.handleServiceError(w, err, "toggle watchlist")
		return
	}

	message := "Removed from watchlist"
	if status.InWatchlist {
		message = "Added to watchlist"
	}
	utils.ResponseSuccess(w, message, status)
}

// Add handles PUT /api/user/watchlist/{id}
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	item, err := h.service.Add(r.Context(), userID, movieID)
	if err != nil {
		h.handleServiceError(w, err, "add to watchlist")
		return
	}

	utils.ResponseSuccess(w, "Added to watchlist", item)
}

// Remove handles DELETE /api/user/watchlist/{id}
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, ok := movieIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), userID, movieID); err != nil {
		h.handleServiceError(w, err, "remove from watchlist")
		return
	}

	utils.ResponseSuccess(w, "Removed from watchlist", nil)
}

func (h *WatchlistHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, omdb.ErrDecode), errors.Is(err, omdb.ErrUpstream):
		h.log.Error(operation+" failed - upstream", zap.Error(err))
		utils.ResponseBadGateway(w, "Movie metadata is unavailable")

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func movieIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := request.WatchlistMovieRequest{MovieID: chi.URLParam(r, "id")}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return "", false
	}
	return req.MovieID, true
}
