package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-rating/internal/data/entity"
	"movie-rating/pkg/apperror"
	"movie-rating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id int64) (*entity.Review, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int64) error

	GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) // average, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

// reviewSelect joins the author and the movie so callers get complete values.
const reviewSelect = `
	SELECT r.id, r.user_id, r.movie_id, r.rating, r.comment, r.created_at,
	       u.username, m.title
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN movies m ON m.id = r.movie_id
`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.AuthorName,
		&review.MovieTitle,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Create locks the target movie row against deletion, then inserts the
// review. A missing movie yields apperror.ErrNotFound and nothing is written.
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var one int
		err := tx.QueryRow(ctx, `SELECT 1 FROM movies WHERE id = $1 FOR SHARE`, review.MovieID).Scan(&one)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("movie", review.MovieID)
		}
		if err != nil {
			return fmt.Errorf("check movie: %w", err)
		}

		query := `
			INSERT INTO reviews (user_id, movie_id, rating, comment, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		return tx.QueryRow(ctx, query,
			review.UserID,
			review.MovieID,
			review.Rating,
			review.Comment,
			review.CreatedAt,
		).Scan(&review.ID)
	})

	if constraint, ok := foreignKeyViolation(err); ok {
		switch constraint {
		case "reviews_user_id_fkey":
			err = apperror.NotFound("user", review.UserID)
		default:
			err = apperror.NotFound("movie", review.MovieID)
		}
	}

	if errors.Is(err, apperror.ErrNotFound) {
		return err
	}
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", review.UserID),
			zap.Int64("movie_id", review.MovieID),
		)
		return fmt.Errorf("create review for movie %d by user %d: %w",
			review.MovieID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	query := reviewSelect + ` WHERE r.id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("find review by ID %d: %w", id, err)
	}

	return review, nil
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	query := reviewSelect + `
		WHERE r.movie_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	reviews, err := database.Collect(database.Seq(ctx, r.db, scanReview, query, movieID))
	if err != nil {
		r.log.Error("Failed to find reviews by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find reviews by movie ID %d: %w", movieID, err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	query := reviewSelect + `
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
	`

	reviews, err := database.Collect(database.Seq(ctx, r.db, scanReview, query, userID))
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find reviews by user ID %d: %w", userID, err)
	}

	return reviews, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `UPDATE reviews SET rating = $2, comment = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
	)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", review.ID),
		)
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("review", review.ID)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NotFound("review", id)
	}

	r.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}

func (r *reviewRepository) GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE movie_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, movieID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get movie review stats",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return 0, 0, fmt.Errorf("get movie review stats for %d: %w", movieID, err)
	}

	return avgRating, reviewCount, nil
}
