package dataio

import (
	"context"
	"database/sql"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Motwg/RandomForest/metrics"
	"github.com/Motwg/RandomForest/pkg/errors"
)

// Sink receives the completed task rows and the validation statistics of a
// run.
type Sink interface {
	WritePredictions(ctx context.Context, rows []Rating) error
	WriteStats(ctx context.Context, stats metrics.ErrorHistogram) error
	Close() error
}

// WriteSubmission writes rows as a headerless ';'-delimited table with the
// columns idx, user_id, movie_id and rate.
func WriteSubmission(w io.Writer, rows []Rating) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Idx),
			strconv.Itoa(r.UserID),
			strconv.Itoa(r.MovieID),
			strconv.Itoa(r.Rate),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "writing submission")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "writing submission")
}

// CSVSink writes predictions to a submission file. Statistics are not
// part of the submission format and are dropped.
type CSVSink struct {
	file *os.File
}

// NewCSVSink creates or truncates the file at path.
func NewCSVSink(path string) (*CSVSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	return &CSVSink{file: file}, nil
}

// WritePredictions implements Sink.
func (s *CSVSink) WritePredictions(_ context.Context, rows []Rating) error {
	return WriteSubmission(s.file, rows)
}

// WriteStats implements Sink.
func (s *CSVSink) WriteStats(context.Context, metrics.ErrorHistogram) error {
	return nil
}

// Close implements Sink.
func (s *CSVSink) Close() error {
	return s.file.Close()
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS predictions (
    idx INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    movie_id INTEGER NOT NULL,
    rate INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS validation_stats (
    diff INTEGER PRIMARY KEY,
    count INTEGER NOT NULL,
    cumulative REAL NOT NULL
);`

// SQLiteSink stores predictions and validation statistics in a SQLite
// database. Rows with an existing idx are replaced.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens or creates the database at path.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating tables")
	}
	return &SQLiteSink{db: db}, nil
}

// WritePredictions implements Sink.
func (s *SQLiteSink) WritePredictions(ctx context.Context, rows []Rating) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO predictions (idx, user_id, movie_id, rate) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare insert")
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.Idx, r.UserID, r.MovieID, r.Rate); err != nil {
			return errors.Wrapf(err, "insert prediction %d", r.Idx)
		}
	}
	return errors.Wrap(tx.Commit(), "commit predictions")
}

// WriteStats implements Sink. The table is replaced by the given
// histogram.
func (s *SQLiteSink) WriteStats(ctx context.Context, stats metrics.ErrorHistogram) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM validation_stats`); err != nil {
		return errors.Wrap(err, "clear validation stats")
	}
	cumulative := stats.Cumulative()
	for diff, count := range stats.Buckets {
		share := 0.0
		if cumulative != nil {
			share = cumulative[diff]
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO validation_stats (diff, count, cumulative) VALUES (?, ?, ?)`,
			diff, count, share); err != nil {
			return errors.Wrapf(err, "insert bucket %d", diff)
		}
	}
	return errors.Wrap(tx.Commit(), "commit validation stats")
}

// Predictions reads back the stored predictions ordered by idx.
func (s *SQLiteSink) Predictions(ctx context.Context) ([]Rating, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT idx, user_id, movie_id, rate FROM predictions ORDER BY idx`)
	if err != nil {
		return nil, errors.Wrap(err, "query predictions")
	}
	defer rows.Close()

	var out []Rating
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.Idx, &r.UserID, &r.MovieID, &r.Rate); err != nil {
			return nil, errors.Wrap(err, "scan prediction")
		}
		out = append(out, r)
	}
	return out, errors.Wrap(rows.Err(), "iterate predictions")
}

// Stats reads back the stored histogram.
func (s *SQLiteSink) Stats(ctx context.Context) (metrics.ErrorHistogram, error) {
	var h metrics.ErrorHistogram
	rows, err := s.db.QueryContext(ctx, `SELECT diff, count FROM validation_stats ORDER BY diff`)
	if err != nil {
		return h, errors.Wrap(err, "query validation stats")
	}
	defer rows.Close()

	for rows.Next() {
		var diff, count int
		if err := rows.Scan(&diff, &count); err != nil {
			return h, errors.Wrap(err, "scan validation stats")
		}
		if diff >= 0 && diff < metrics.HistogramBuckets {
			h.Buckets[diff] = count
			h.N += count
		}
	}
	return h, errors.Wrap(rows.Err(), "iterate validation stats")
}

// Close implements Sink.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// OpenSink picks the sink for path by its extension: ".db", ".sqlite" and
// ".sqlite3" go to SQLite, anything else to a submission table.
func OpenSink(path string) (Sink, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSink(path)
	default:
		return NewCSVSink(path)
	}
}
