package dataio

import (
	"io"
	"os"

	"github.com/Motwg/RandomForest/movies"
	"github.com/Motwg/RandomForest/pkg/errors"
)

// Rating is one row of the training or task table. Task rows carry no
// rate until it is predicted.
type Rating struct {
	Idx     int
	UserID  int
	MovieID int
	Rate    int
}

// ReadMovies parses the movie catalog table.
func ReadMovies(r io.Reader) ([]movies.Movie, error) {
	df, err := readTable(r, MovieColumns)
	if err != nil {
		return nil, errors.Wrap(err, "movies")
	}
	c := newColumns("movies", df, MovieColumns)

	out := make([]movies.Movie, c.rows)
	for row := range c.rows {
		m := &out[row]
		if m.ID, err = c.integer("movie_id", row); err != nil {
			return nil, err
		}
		tmdb, err := c.optionalInt64("tmdb_id", row)
		if err != nil {
			return nil, err
		}
		m.TMDBID = int(tmdb)
		m.Title = c.str("title", row)
		if m.Popularity, err = c.optionalFloat("popularity", row); err != nil {
			return nil, err
		}
		if m.Genres, err = c.list("genres", row); err != nil {
			return nil, err
		}
		m.Overview = c.str("overview", row)
		if m.VoteAverage, err = c.optionalFloat("vote_average", row); err != nil {
			return nil, err
		}
		if m.VoteCount, err = c.optionalFloat("vote_count", row); err != nil {
			return nil, err
		}
		m.ReleaseDate = c.str("release_date", row)
		if m.Revenue, err = c.optionalInt64("revenue", row); err != nil {
			return nil, err
		}
		if m.Budget, err = c.optionalInt64("budget", row); err != nil {
			return nil, err
		}
		m.Collection = c.str("belongs_to_collection", row)
		m.Language = c.str("original_language", row)
		if m.Companies, err = c.list("production_companies", row); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReadRatings parses the training table.
func ReadRatings(r io.Reader) ([]Rating, error) {
	return readRatings(r, "train", TrainColumns)
}

// ReadTasks parses the task table. Rate is left zero.
func ReadTasks(r io.Reader) ([]Rating, error) {
	return readRatings(r, "task", TaskColumns)
}

func readRatings(r io.Reader, table string, names []string) ([]Rating, error) {
	df, err := readTable(r, names)
	if err != nil {
		return nil, errors.Wrap(err, table)
	}
	c := newColumns(table, df, names)
	withRate := len(names) == len(TrainColumns)

	out := make([]Rating, c.rows)
	for row := range c.rows {
		rt := &out[row]
		if rt.Idx, err = c.integer("idx", row); err != nil {
			return nil, err
		}
		if rt.UserID, err = c.integer("user_id", row); err != nil {
			return nil, err
		}
		if rt.MovieID, err = c.integer("movie_id", row); err != nil {
			return nil, err
		}
		if withRate {
			if rt.Rate, err = c.integer("rate", row); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Files names the input tables of a run.
type Files struct {
	Movies  string
	Train   string
	Task    string
	Charset string
}

// Dataset is the decoded content of Files.
type Dataset struct {
	Movies []movies.Movie
	Train  []Rating
	Task   []Rating
}

// Load reads every table named by f.
func Load(f Files) (*Dataset, error) {
	var ds Dataset
	var err error
	if ds.Movies, err = loadFile(f.Movies, f.Charset, ReadMovies); err != nil {
		return nil, err
	}
	if ds.Train, err = loadFile(f.Train, f.Charset, ReadRatings); err != nil {
		return nil, err
	}
	if ds.Task, err = loadFile(f.Task, f.Charset, ReadTasks); err != nil {
		return nil, err
	}
	return &ds, nil
}

func loadFile[T any](path, charset string, read func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close()

	r, err := Decode(file, charset)
	if err != nil {
		return nil, err
	}
	rows, err := read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return rows, nil
}
