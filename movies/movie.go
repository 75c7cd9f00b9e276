// Package movies provides the movie feature objects of the rating model and
// the predicate vocabulary used to split them.
package movies

import (
	"slices"
	"strconv"

	"github.com/Motwg/RandomForest/tree"
)

// Movie holds the attributes of one catalog entry.
type Movie struct {
	ID          int
	TMDBID      int
	Title       string
	Popularity  float64
	Genres      []string
	Overview    string
	VoteAverage float64
	VoteCount   float64
	ReleaseDate string
	Revenue     int64
	Budget      int64
	Collection  string
	Language    string
	Companies   []string
}

// ReleaseYear parses the leading four digits of ReleaseDate.
func (m Movie) ReleaseYear() (int, bool) {
	if len(m.ReleaseDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// HasGenre reports whether genre is one of the movie's genres.
func (m Movie) HasGenre(genre string) bool {
	return slices.Contains(m.Genres, genre)
}

// HasCompany reports whether company produced the movie.
func (m Movie) HasCompany(company string) bool {
	return slices.Contains(m.Companies, company)
}

// Catalog indexes movies by ID. A later duplicate replaces an earlier one.
func Catalog(movies []Movie) tree.MapMapping[Movie] {
	m := make(tree.MapMapping[Movie], len(movies))
	for _, movie := range movies {
		m[movie.ID] = movie
	}
	return m
}
