package wire

import (
	"movie-rating/internal/adaptor"
	"movie-rating/internal/data/repository"
	"movie-rating/internal/usecase"
	"movie-rating/pkg/database"
	"movie-rating/pkg/middleware"
	"movie-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP application.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router on top of the repositories.
func Wiring(repo *repository.Repository, db database.PgxIface, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, db, config, logger)

	router := setupRouter(handler, service, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.LoadSession(service.Auth, logger))

	// Apply routes
	wireAuth(r, handler.Auth, logger)
	wireUser(r, handler.User, logger)
	wireMovie(r, handler.Movie, logger)
	wireReview(r, handler.Review, logger)

	r.Get("/health", handler.Health.Health)
	r.Get("/health/ready", handler.Health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
