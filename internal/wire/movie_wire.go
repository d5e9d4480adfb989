package wire

import (
	"movie-rating/internal/adaptor"
	"movie-rating/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies - List movies ordered by title
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/{id} - Movie details with reviews
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)

	// ==================== PROTECTED ROUTES ====================
	// Any logged-in user may add a movie
	r.With(middleware.AuthSession(log)).Post("/api/movies", movieHandler.CreateMovie)
}
