package wire

import (
	"net/http"

	"moview/internal/adaptor"
	"moview/internal/data/repository"
	"moview/internal/usecase"
	"moview/pkg/middleware"
	"moview/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes
func Wiring(repo *repository.Repository, provider usecase.MovieProvider, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, provider, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	if config.RateLimit.RequestsPerSecond > 0 {
		r.Use(middleware.RateLimit(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, logger))
	}

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, handler.Watchlist, repo, logger)
	wireMovie(r, handler.Movie, handler.Comment, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
