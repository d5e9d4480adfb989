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

type ReviewService interface {
	CreateReview(ctx context.Context, identity utils.Identity, movieID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, identity utils.Identity) ([]response.ReviewResponse, error)

	// Only the author may change or remove a review.
	UpdateReview(ctx context.Context, identity utils.Identity, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, identity utils.Identity, reviewID int64) error

	// Stats
	GetMovieReviewStats(ctx context.Context, movieID int64) (*response.MovieReviewStats, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, identity utils.Identity, movieID int64, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := identity.Require(); err != nil {
		return nil, err
	}

	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}

	if err := s.validate(req.Rating, req); err != nil {
		return nil, err
	}

	review := &entity.Review{
		Base:       entity.Base{CreatedAt: time.Now().UTC()},
		UserID:     identity.UserID,
		MovieID:    movieID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		AuthorName: identity.Username,
	}

	// The movie may be deleted in between; the repository re-checks it under lock.
	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()
	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", identity.UserID),
		zap.Int64("movie_id", movieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetMovieReviews(ctx context.Context, movieID int64) ([]response.ReviewResponse, error) {
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, identity utils.Identity) ([]response.ReviewResponse, error) {
	if err := identity.Require(); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.FindByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, identity utils.Identity, reviewID int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if err := identity.Require(); err != nil {
		return nil, err
	}

	if err := s.validate(req.Rating, req); err != nil {
		return nil, err
	}

	review, err := s.findOwned(ctx, identity, reviewID)
	if err != nil {
		return nil, err
	}

	review.Rating = req.Rating
	review.Comment = req.Comment

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review updated",
		zap.Int64("review_id", reviewID),
		zap.Int64("user_id", identity.UserID),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, identity utils.Identity, reviewID int64) error {
	if err := identity.Require(); err != nil {
		return err
	}

	if _, err := s.findOwned(ctx, identity, reviewID); err != nil {
		return err
	}

	return s.repo.Review.Delete(ctx, reviewID)
}

func (s *reviewService) GetMovieReviewStats(ctx context.Context, movieID int64) (*response.MovieReviewStats, error) {
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}

	avg, count, err := s.repo.Review.GetMovieReviewStats(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get review stats: %w", err)
	}

	return &response.MovieReviewStats{
		MovieID:       movieID,
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) validate(rating int, req any) error {
	if !entity.ValidRating(rating) {
		s.log.Warn("Invalid rating", zap.Int("rating", rating))
		return apperror.ErrInvalidRating
	}
	return utils.Validate(req)
}

func (s *reviewService) ensureMovie(ctx context.Context, movieID int64) error {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return apperror.NotFound("movie", movieID)
	}
	return nil
}

func (s *reviewService) findOwned(ctx context.Context, identity utils.Identity, reviewID int64) (*entity.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, apperror.NotFound("review", reviewID)
	}
	if review.UserID != identity.UserID {
		s.log.Warn("Review owned by another user",
			zap.Int64("review_id", reviewID),
			zap.Int64("user_id", identity.UserID),
		)
		return nil, apperror.ErrForbidden
	}
	return review, nil
}
