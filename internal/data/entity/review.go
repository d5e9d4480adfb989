package entity

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	Base
	UserID  int64  `db:"user_id"`
	MovieID int64  `db:"movie_id"`
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`

	// Filled by joined queries.
	AuthorName string `db:"username"`
	MovieTitle string `db:"title"`
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
