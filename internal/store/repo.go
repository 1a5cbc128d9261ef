package store

import (
	"context"
	"time"

	"github.com/morita/chartdrill/internal/attempt"
	"github.com/morita/chartdrill/internal/scheduler"
)

// AttemptRepo provides append and query access to the attempt history.
type AttemptRepo interface {
	// Append records a new attempt. Attempts are never updated or deleted.
	Append(ctx context.Context, a attempt.Attempt) error

	// LatestByQuestion returns the most recent attempt per question across
	// the whole corpus.
	LatestByQuestion(ctx context.Context) (map[string]attempt.Attempt, error)

	// ForQuestion returns all attempts for one question, most recent first.
	ForQuestion(ctx context.Context, questionID string) ([]attempt.Attempt, error)

	// Since returns all attempts with a timestamp at or after from, most
	// recent first.
	Since(ctx context.Context, from time.Time) ([]attempt.Attempt, error)
}

// ScheduleRepo provides upsert and query access to the review schedule.
type ScheduleRepo interface {
	// Upsert stores the entry, replacing any existing entry for the same
	// question.
	Upsert(ctx context.Context, e scheduler.Entry) error

	// Due returns all entries whose next review time is at or before now,
	// earliest first.
	Due(ctx context.Context, now time.Time) ([]scheduler.Entry, error)

	// All returns every schedule entry, earliest next review first.
	All(ctx context.Context) ([]scheduler.Entry, error)

	// Get returns the entry for a question, or nil if none exists.
	Get(ctx context.Context, questionID string) (*scheduler.Entry, error)
}
