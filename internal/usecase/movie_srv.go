package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"movie-rating/internal/data/entity"
	"movie-rating/internal/data/repository"
	"movie-rating/internal/dto/request"
	"movie-rating/internal/dto/response"
	"movie-rating/pkg/apperror"
	"movie-rating/pkg/metrics"
	"movie-rating/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error)
	CreateMovie(ctx context.Context, identity utils.Identity, req *request.MovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

// GetMovies lists every movie ordered by title.
func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies := make([]response.MovieResponse, 0)
	for movie, err := range s.repo.Movie.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("get movies: %w", err)
		}
		movies = append(movies, response.MovieToResponse(movie))
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))
	return movies, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieDetailResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, apperror.NotFound("movie", movieID)
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	stats := response.MovieReviewStats{MovieID: movie.ID}
	stats.AverageRating, stats.ReviewCount, err = s.repo.Review.GetMovieReviewStats(ctx, movie.ID)
	if err != nil {
		s.log.Warn("Failed to get review stats for movie, using loaded reviews",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		stats = statsFromReviews(movie.ID, reviews)
	}

	detail := response.MovieToDetailResponse(movie, reviews, stats)
	return &detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, identity utils.Identity, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := identity.Require(); err != nil {
		return nil, err
	}

	if err := utils.Validate(req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	year, err := strconv.Atoi(req.Year)
	if err != nil {
		return nil, apperror.NewValidationError(map[string]string{"Year": "Must contain digits only"})
	}

	movie := &entity.Movie{
		Base:        entity.Base{CreatedAt: time.Now().UTC()},
		Title:       req.Title,
		Year:        year,
		Genre:       entity.Genre(req.Genre),
		Director:    req.Director,
		Description: req.Description,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	metrics.MoviesCreatedTotal.Inc()
	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int64("created_by", identity.UserID),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func statsFromReviews(movieID int64, reviews []*entity.Review) response.MovieReviewStats {
	stats := response.MovieReviewStats{MovieID: movieID, ReviewCount: int64(len(reviews))}
	if len(reviews) == 0 {
		return stats
	}
	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	stats.AverageRating = float64(total) / float64(len(reviews))
	return stats
}
