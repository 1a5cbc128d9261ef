package catalog

// Question is an immutable catalog entry. Questions are loaded once from
// the catalog file and never mutated; answer history lives elsewhere.
type Question struct {
	// ID uniquely identifies the question across the whole catalog.
	ID string `json:"id"`

	// Category is the chart kind the question asks about.
	Category Category `json:"category"`

	// Difficulty is a small ordinal, 1 (easy) to 3 (hard).
	Difficulty int `json:"difficulty"`

	// TargetSeconds optionally overrides the category solve-time budget
	// for this one question. Zero means "use the category default".
	TargetSeconds int `json:"target_seconds,omitempty"`
}

// TargetTimes resolves the solve-time budget for a question. Keys are
// per-category overrides supplied by the settings layer; a nil map is a
// valid lookup that always falls back to the defaults. This is the single
// place the fallback chain is defined: override, then the question's own
// value, then the category default.
type TargetTimes map[Category]int

// For returns the solve-time budget for q in seconds.
func (tt TargetTimes) For(q Question) int {
	if t, ok := tt[q.Category]; ok && t > 0 {
		return t
	}
	if q.TargetSeconds > 0 {
		return q.TargetSeconds
	}
	return q.Category.TargetSeconds()
}

// MillisFor returns the solve-time budget for q in milliseconds, the unit
// attempt latencies are recorded in.
func (tt TargetTimes) MillisFor(q Question) int64 {
	return int64(tt.For(q)) * 1000
}
