package entity

type Genre string

const (
	GenreAction   Genre = "action"
	GenreComedy   Genre = "comedy"
	GenreDrama    Genre = "drama"
	GenreHorror   Genre = "horror"
	GenreSciFi    Genre = "sci-fi"
	GenreThriller Genre = "thriller"
	GenreOther    Genre = "other"
)

// Genres lists the accepted genres in display order.
var Genres = []Genre{
	GenreAction,
	GenreComedy,
	GenreDrama,
	GenreHorror,
	GenreSciFi,
	GenreThriller,
	GenreOther,
}

func (g Genre) Valid() bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

type Movie struct {
	Base
	Title       string `db:"title"`
	Year        int    `db:"year"`
	Genre       Genre  `db:"genre"`
	Director    string `db:"director"`
	Description string `db:"description"`
}
