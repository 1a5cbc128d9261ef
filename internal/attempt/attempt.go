// Package attempt defines the answer-event record and the latest-attempt
// view derived from it.
package attempt

import "time"

// Attempt records one answer event. Attempts are append-only: created once
// per answer and never mutated.
type Attempt struct {
	QuestionID   string    `json:"question_id"`
	Timestamp    time.Time `json:"timestamp"`
	Correct      bool      `json:"correct"`
	ChosenOption int       `json:"chosen_option"`
	ElapsedMs    int64     `json:"elapsed_ms"`
}

// LatestByQuestion reduces an attempt history to the most recent attempt
// per question. This is the one place the "which attempt counts" rule
// lives: a later timestamp wins, and on equal timestamps the attempt that
// appears earlier in the input wins. Store queries return attempts most
// recent first, so with ties the store's ordering is preserved.
func LatestByQuestion(attempts []Attempt) map[string]Attempt {
	latest := make(map[string]Attempt, len(attempts))
	for _, a := range attempts {
		prev, seen := latest[a.QuestionID]
		if !seen || a.Timestamp.After(prev.Timestamp) {
			latest[a.QuestionID] = a
		}
	}
	return latest
}
