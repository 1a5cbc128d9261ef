package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/morita/chartdrill/internal/scheduler"
)

type scheduleRepo struct {
	db *sql.DB
}

func (r *scheduleRepo) Upsert(ctx context.Context, e scheduler.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_schedule (question_id, stage, next_review_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(question_id) DO UPDATE SET
			stage = excluded.stage,
			next_review_at = excluded.next_review_at`,
		e.QuestionID, e.Stage, e.NextReviewAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert schedule entry: %w", err)
	}
	return nil
}

func (r *scheduleRepo) Due(ctx context.Context, now time.Time) ([]scheduler.Entry, error) {
	entries, err := r.queryEntries(ctx,
		`SELECT question_id, stage, next_review_at
		 FROM review_schedule WHERE next_review_at <= ?
		 ORDER BY next_review_at, question_id`,
		now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("query due entries: %w", err)
	}
	return entries, nil
}

func (r *scheduleRepo) All(ctx context.Context) ([]scheduler.Entry, error) {
	entries, err := r.queryEntries(ctx,
		`SELECT question_id, stage, next_review_at
		 FROM review_schedule ORDER BY next_review_at, question_id`)
	if err != nil {
		return nil, fmt.Errorf("query all entries: %w", err)
	}
	return entries, nil
}

func (r *scheduleRepo) Get(ctx context.Context, questionID string) (*scheduler.Entry, error) {
	var (
		e            scheduler.Entry
		nextReviewAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT question_id, stage, next_review_at
		 FROM review_schedule WHERE question_id = ?`,
		questionID,
	).Scan(&e.QuestionID, &e.Stage, &nextReviewAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query schedule entry: %w", err)
	}
	e.NextReviewAt = time.UnixMilli(nextReviewAt)
	return &e, nil
}

func (r *scheduleRepo) queryEntries(ctx context.Context, query string, args ...any) ([]scheduler.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []scheduler.Entry
	for rows.Next() {
		var (
			e            scheduler.Entry
			nextReviewAt int64
		)
		if err := rows.Scan(&e.QuestionID, &e.Stage, &nextReviewAt); err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		e.NextReviewAt = time.UnixMilli(nextReviewAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
