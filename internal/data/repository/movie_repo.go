package repository

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"movie-rating/internal/data/entity"
	"movie-rating/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)

	// All yields every movie ordered by title. Ranging again re-reads the table.
	All(ctx context.Context) iter.Seq2[*entity.Movie, error]
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, title, year, genre, director, description, created_at`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	var genre string
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Year,
		&genre,
		&movie.Director,
		&movie.Description,
		&movie.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	movie.Genre = entity.Genre(genre)
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, year, genre, director, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Year,
		string(movie.Genre),
		movie.Director,
		movie.Description,
		movie.CreatedAt,
	).Scan(&movie.ID)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) All(ctx context.Context) iter.Seq2[*entity.Movie, error] {
	query := `SELECT ` + movieColumns + ` FROM movies ORDER BY title ASC, id ASC`

	return func(yield func(*entity.Movie, error) bool) {
		for movie, err := range database.Seq(ctx, r.db, scanMovie, query) {
			if err != nil {
				r.log.Error("Failed to list movies", zap.Error(err))
				yield(nil, fmt.Errorf("failed to list movies: %w", err))
				return
			}
			if !yield(movie, nil) {
				return
			}
		}
	}
}
