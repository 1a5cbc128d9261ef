package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/morita/chartdrill/internal/attempt"
)

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a attempt.Attempt) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, question_id, answered_at, correct, chosen_option, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), a.QuestionID, a.Timestamp.UnixMilli(),
		boolToInt(a.Correct), a.ChosenOption, a.ElapsedMs,
	)
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) LatestByQuestion(ctx context.Context) (map[string]attempt.Attempt, error) {
	// Fetch most-recent-first and let the attempt package apply its
	// latest-wins rule, so the reduction is defined in exactly one place.
	rows, err := r.queryAttempts(ctx,
		`SELECT question_id, answered_at, correct, chosen_option, elapsed_ms
		 FROM attempts ORDER BY answered_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query latest attempts: %w", err)
	}
	return attempt.LatestByQuestion(rows), nil
}

func (r *attemptRepo) ForQuestion(ctx context.Context, questionID string) ([]attempt.Attempt, error) {
	rows, err := r.queryAttempts(ctx,
		`SELECT question_id, answered_at, correct, chosen_option, elapsed_ms
		 FROM attempts WHERE question_id = ? ORDER BY answered_at DESC, id`,
		questionID)
	if err != nil {
		return nil, fmt.Errorf("query attempts for question: %w", err)
	}
	return rows, nil
}

func (r *attemptRepo) Since(ctx context.Context, from time.Time) ([]attempt.Attempt, error) {
	rows, err := r.queryAttempts(ctx,
		`SELECT question_id, answered_at, correct, chosen_option, elapsed_ms
		 FROM attempts WHERE answered_at >= ? ORDER BY answered_at DESC, id`,
		from.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("query attempts since: %w", err)
	}
	return rows, nil
}

func (r *attemptRepo) queryAttempts(ctx context.Context, query string, args ...any) ([]attempt.Attempt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []attempt.Attempt
	for rows.Next() {
		var (
			a          attempt.Attempt
			answeredAt int64
			correct    int
		)
		if err := rows.Scan(&a.QuestionID, &answeredAt, &correct, &a.ChosenOption, &a.ElapsedMs); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Timestamp = time.UnixMilli(answeredAt)
		a.Correct = correct != 0
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
