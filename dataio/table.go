package dataio

import (
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Motwg/RandomForest/pkg/errors"
)

// Column layouts of the input tables.
var (
	MovieColumns = []string{
		"movie_id", "tmdb_id", "title", "popularity", "genres", "overview", "vote_average",
		"vote_count", "release_date", "revenue", "budget", "belongs_to_collection",
		"original_language", "production_companies",
	}
	TrainColumns = []string{"idx", "user_id", "movie_id", "rate"}
	TaskColumns  = []string{"idx", "user_id", "movie_id"}
)

// Delimiter separates the fields of every table.
const Delimiter = ';'

// readTable loads a headerless table whose columns are named by names.
// Every cell is kept as a string.
func readTable(r io.Reader, names []string) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithDelimiter(Delimiter),
		dataframe.HasHeader(false),
		dataframe.Names(names...),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithLazyQuotes(true),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return df, errors.Wrap(df.Err, "reading table")
	}
	return df, nil
}

// columns gives random access to the string cells of a DataFrame with
// row-aware parse errors.
type columns struct {
	table string
	cells map[string][]string
	rows  int
}

func newColumns(table string, df dataframe.DataFrame, names []string) columns {
	c := columns{table: table, cells: make(map[string][]string, len(names)), rows: df.Nrow()}
	for _, name := range names {
		c.cells[name] = df.Col(name).Records()
	}
	return c
}

func (c columns) str(name string, row int) string {
	return strings.TrimSpace(c.cells[name][row])
}

func (c columns) fail(name string, row int, err error) error {
	return errors.Wrapf(err, "%s row %d, column %s", c.table, row+1, name)
}

func (c columns) integer(name string, row int) (int, error) {
	v, err := strconv.Atoi(c.str(name, row))
	if err != nil {
		return 0, c.fail(name, row, err)
	}
	return v, nil
}

// optionalInt64 parses an integer cell, reading an empty cell as zero.
func (c columns) optionalInt64(name string, row int) (int64, error) {
	s := c.str(name, row)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, c.fail(name, row, err)
	}
	return v, nil
}

// optionalFloat parses a float cell, reading an empty cell as zero.
func (c columns) optionalFloat(name string, row int) (float64, error) {
	s := c.str(name, row)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, c.fail(name, row, err)
	}
	return v, nil
}

func (c columns) list(name string, row int) ([]string, error) {
	v, err := ParseList(c.str(name, row))
	if err != nil {
		return nil, c.fail(name, row, err)
	}
	return v, nil
}
