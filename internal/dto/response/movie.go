package response

import (
	"time"

	"movie-rating/internal/data/entity"
)

type MovieResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Year        int       `json:"year"`
	Genre       string    `json:"genre"`
	Director    string    `json:"director"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type MovieDetailResponse struct {
	MovieResponse
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
	Reviews       []ReviewResponse `json:"reviews"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Year:        movie.Year,
		Genre:       string(movie.Genre),
		Director:    movie.Director,
		Description: movie.Description,
		CreatedAt:   movie.CreatedAt,
	}
}

func MovieToDetailResponse(movie *entity.Movie, reviews []*entity.Review, stats MovieReviewStats) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		AverageRating: stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
		Reviews:       ReviewsToResponse(reviews),
	}
}
