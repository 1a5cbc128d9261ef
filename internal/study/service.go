// Package study orchestrates the pure scheduling and composition core
// against the storage layer. It is the "caller" side of the core's
// contract: it snapshots state, invokes the composer, and persists the
// schedule updates the scheduler computes.
package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/morita/chartdrill/internal/attempt"
	"github.com/morita/chartdrill/internal/catalog"
	"github.com/morita/chartdrill/internal/composer"
	"github.com/morita/chartdrill/internal/scheduler"
	"github.com/morita/chartdrill/internal/store"
)

// ErrUnknownQuestion is returned when an answer references a question id
// that is not in the catalog.
var ErrUnknownQuestion = errors.New("unknown question id")

// Service wires the catalog, the attempt history, and the review schedule
// together. All collaborators are injected; the service holds no state
// beyond them.
type Service struct {
	catalog   catalog.Provider
	attempts  store.AttemptRepo
	schedules store.ScheduleRepo
	targets   catalog.TargetTimes
	log       *slog.Logger

	// now is the clock; tests override it.
	now func() time.Time
}

// New creates a Service. A nil logger falls back to slog's default.
func New(p catalog.Provider, attempts store.AttemptRepo, schedules store.ScheduleRepo, targets catalog.TargetTimes, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog:   p,
		attempts:  attempts,
		schedules: schedules,
		targets:   targets,
		log:       log,
		now:       time.Now,
	}
}

// snapshot loads everything the composer reads, as of now.
func (s *Service) snapshot(ctx context.Context, now time.Time) (composer.State, error) {
	latest, err := s.attempts.LatestByQuestion(ctx)
	if err != nil {
		return composer.State{}, fmt.Errorf("load latest attempts: %w", err)
	}
	due, err := s.schedules.Due(ctx, now)
	if err != nil {
		return composer.State{}, fmt.Errorf("load due entries: %w", err)
	}
	entries, err := s.schedules.All(ctx)
	if err != nil {
		return composer.State{}, fmt.Errorf("load schedule entries: %w", err)
	}
	return composer.State{
		Questions: s.catalog.Questions(),
		Latest:    latest,
		Due:       due,
		Entries:   entries,
		Targets:   s.targets,
	}, nil
}

// QuickSession composes a timed session of roughly targetSeconds.
func (s *Service) QuickSession(ctx context.Context, targetSeconds int) ([]catalog.Question, error) {
	state, err := s.snapshot(ctx, s.now())
	if err != nil {
		return nil, err
	}
	picked := state.QuickSession(targetSeconds)
	s.log.Debug("composed quick session",
		"target_seconds", targetSeconds, "questions", len(picked))
	return picked, nil
}

// ReviewSession composes a review-only session of up to max questions.
func (s *Service) ReviewSession(ctx context.Context, max int) ([]catalog.Question, error) {
	state, err := s.snapshot(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return state.ReviewSession(max), nil
}

// SpeedSession composes a speed drill of up to max questions.
func (s *Service) SpeedSession(ctx context.Context, max int) ([]catalog.Question, error) {
	state, err := s.snapshot(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return state.SpeedSession(max), nil
}

// WeaknessTest composes a weakness test of up to count questions.
func (s *Service) WeaknessTest(ctx context.Context, count int) ([]catalog.Question, error) {
	state, err := s.snapshot(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return state.WeaknessTest(count), nil
}

// Recommendations evaluates the home-screen cards against the current
// time.
func (s *Service) Recommendations(ctx context.Context) ([]composer.Recommendation, error) {
	now := s.now()
	state, err := s.snapshot(ctx, now)
	if err != nil {
		return nil, err
	}
	return state.Recommendations(now), nil
}

// Due returns the schedule entries due at the current time, earliest
// first.
func (s *Service) Due(ctx context.Context) ([]scheduler.Entry, error) {
	return s.schedules.Due(ctx, s.now())
}

// RecordAnswer persists one answer event and the schedule update it
// triggers, in that order. A crash between the two writes loses at most
// the schedule update — the schedule row is a full replacement keyed by
// question id, so it can never be left half-written.
func (s *Service) RecordAnswer(ctx context.Context, questionID string, correct bool, chosenOption int, elapsed time.Duration) (scheduler.Entry, error) {
	if _, ok := s.lookup(questionID); !ok {
		return scheduler.Entry{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	now := s.now()
	a := attempt.Attempt{
		QuestionID:   questionID,
		Timestamp:    now,
		Correct:      correct,
		ChosenOption: chosenOption,
		ElapsedMs:    elapsed.Milliseconds(),
	}
	if err := s.attempts.Append(ctx, a); err != nil {
		return scheduler.Entry{}, fmt.Errorf("save attempt: %w", err)
	}

	current, err := s.schedules.Get(ctx, questionID)
	if err != nil {
		return scheduler.Entry{}, fmt.Errorf("load schedule entry: %w", err)
	}

	entry := scheduler.ComputeNextReview(questionID, correct, current, now)
	if err := s.schedules.Upsert(ctx, entry); err != nil {
		return scheduler.Entry{}, fmt.Errorf("save schedule entry: %w", err)
	}

	s.log.Debug("recorded answer",
		"question", questionID, "correct", correct,
		"stage", entry.Stage, "next_review", entry.NextReviewAt)
	return entry, nil
}

// lookup finds a catalog question by id.
func (s *Service) lookup(id string) (catalog.Question, bool) {
	for _, q := range s.catalog.Questions() {
		if q.ID == id {
			return q, true
		}
	}
	return catalog.Question{}, false
}
