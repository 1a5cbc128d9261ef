// Package scheduler computes spaced-repetition review schedules.
//
// The schedule is a Leitner-style stage walk: a correct answer promotes a
// question one stage, a wrong answer demotes it one stage (never below
// zero), and each stage maps to a review interval in whole days. Demotion
// instead of a hard reset keeps lapses cheap: one miss shrinks the
// interval, it does not erase the history.
//
// Everything here is a pure function over value inputs. Callers own the
// clock and the persistence of the entries this package produces.
package scheduler

import "time"

// BaseIntervals defines the expanding review schedule in days, indexed by
// stage. Stages past the end of the table reuse the final interval.
var BaseIntervals = []int{1, 3, 7, 14, 30}

// Entry is the review schedule record for one question. Entries are
// replaced, never mutated: every answer produces a fresh Entry keyed by
// the same question id.
type Entry struct {
	QuestionID   string    `json:"question_id"`
	Stage        int       `json:"stage"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// IsDue reports whether the entry is due for review at now. An entry is
// due at exactly its review time, not only after it.
func (e Entry) IsDue(now time.Time) bool {
	return !now.Before(e.NextReviewAt)
}

// OverdueDays returns how many days past due the entry is at now, or 0 if
// it is not yet due.
func (e Entry) OverdueDays(now time.Time) float64 {
	if now.Before(e.NextReviewAt) {
		return 0
	}
	return now.Sub(e.NextReviewAt).Hours() / 24.0
}

// IntervalDays returns the review interval for a stage. Out-of-range
// stages clamp to the nearest table entry instead of indexing out of
// bounds.
func IntervalDays(stage int) int {
	if stage < 0 {
		stage = 0
	}
	if stage >= len(BaseIntervals) {
		return BaseIntervals[len(BaseIntervals)-1]
	}
	return BaseIntervals[stage]
}

// ComputeNextReview returns the schedule entry for questionID after an
// answer. A nil current entry means the question has never been scheduled
// and is treated as stage 0. Correct answers promote the stage without
// bound (the interval caps at the last table entry); wrong answers demote
// it, floored at 0.
//
// The next review lands a whole number of calendar days ahead of now
// (AddDate, not a fixed millisecond multiple), so DST transitions shift
// the review time the same way they shift the caller's "due" checks.
func ComputeNextReview(questionID string, correct bool, current *Entry, now time.Time) Entry {
	stage := 0
	if current != nil {
		stage = current.Stage
	}

	if correct {
		stage++
	} else if stage > 0 {
		stage--
	}

	return Entry{
		QuestionID:   questionID,
		Stage:        stage,
		NextReviewAt: now.AddDate(0, 0, IntervalDays(stage)),
	}
}
