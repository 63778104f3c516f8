package repository

import (
	"context"
	"database/sql"
)

// ResultRepo handles answered-round history.
type ResultRepo struct {
	db *sql.DB
}

func NewResultRepo(db *sql.DB) *ResultRepo { return &ResultRepo{db: db} }

func (r *ResultRepo) Insert(ctx context.Context, res Result) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO results(
	 id, played_at, hand, starter, guess, total,
	 pairs, fifteens, runs, flushes, nobs, correct)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		res.ID, res.PlayedAt, res.Hand, res.Starter, res.Guess, res.Total,
		res.Pairs, res.Fifteens, res.Runs, res.Flushes, res.Nobs, res.Correct)
	return err
}

// Recent returns the latest n results, newest first.
func (r *ResultRepo) Recent(ctx context.Context, n int) ([]Result, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, played_at, hand, starter, guess, total,
	       pairs, fifteens, runs, flushes, nobs, correct
	FROM results ORDER BY played_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var res Result
		if err := rows.Scan(&res.ID, &res.PlayedAt, &res.Hand, &res.Starter,
			&res.Guess, &res.Total, &res.Pairs, &res.Fifteens, &res.Runs,
			&res.Flushes, &res.Nobs, &res.Correct); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Summary counts rounds and correct answers across all recorded history.
func (r *ResultRepo) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*), COALESCE(SUM(correct), 0) FROM results`).Scan(&s.Rounds, &s.Correct)
	return s, err
}
