// Package composer assembles study sessions from corpus-wide state.
//
// Every operation is a pure function over a State snapshot: the caller
// loads the catalog, the latest-attempt view, and the review schedule from
// storage, and the composer turns them into ordered question lists. No
// pool builder or picker reads the clock or touches storage, so results
// are fully determined by the snapshot.
package composer

import (
	"sort"

	"github.com/morita/chartdrill/internal/attempt"
	"github.com/morita/chartdrill/internal/catalog"
	"github.com/morita/chartdrill/internal/scheduler"
)

// Default session sizes when the caller passes a non-positive limit.
const (
	DefaultReviewMax     = 10
	DefaultSpeedMax      = 10
	DefaultWeaknessCount = 20
)

// State is the snapshot session selection reads. Due is the precomputed
// due set used for pool membership; Entries is the full schedule, which
// recommendation generation checks live against the current time.
type State struct {
	Questions []catalog.Question
	Latest    map[string]attempt.Attempt
	Due       []scheduler.Entry
	Entries   []scheduler.Entry
	Targets   catalog.TargetTimes
}

// QuickSession picks questions for a timed session. The four candidate
// pools are walked in strict priority order — due reviews, recently
// wrong, slow-but-correct, unseen — and each new question adds its
// category target time to the running estimate. Selection stops as soon
// as the estimate reaches targetSeconds, or when the pools run out. A
// question qualifying for several pools is taken from the first one only.
func (s State) QuickSession(targetSeconds int) []catalog.Question {
	pools := [][]catalog.Question{
		s.duePool(),
		s.wrongPool(),
		s.slowPool(),
		s.unseenPool(),
	}

	var picked []catalog.Question
	seen := make(map[string]bool)
	estimated := 0

	for _, pool := range pools {
		for _, q := range pool {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			picked = append(picked, q)
			estimated += s.Targets.For(q)
			if estimated >= targetSeconds {
				return picked
			}
		}
	}
	return picked
}

// ReviewSession picks up to max questions that are due for review or were
// answered wrong most recently. Due questions come first as a group; the
// rest follow ordered by attempt timestamp, oldest first. max <= 0 means
// DefaultReviewMax.
func (s State) ReviewSession(max int) []catalog.Question {
	if max <= 0 {
		max = DefaultReviewMax
	}

	due := s.dueSet()
	var candidates []catalog.Question
	for _, q := range s.Questions {
		if due[q.ID] {
			candidates = append(candidates, q)
			continue
		}
		if a, ok := s.Latest[q.ID]; ok && !a.Correct {
			candidates = append(candidates, q)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := due[candidates[i].ID], due[candidates[j].ID]
		if di != dj {
			return di
		}
		// Questions without an attempt carry the zero time and sort
		// as oldest.
		ti := s.Latest[candidates[i].ID].Timestamp
		tj := s.Latest[candidates[j].ID].Timestamp
		return ti.Before(tj)
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}

// SpeedSession picks up to max questions that were answered correctly but
// over the category target time, slowest first. max <= 0 means
// DefaultSpeedMax.
func (s State) SpeedSession(max int) []catalog.Question {
	if max <= 0 {
		max = DefaultSpeedMax
	}
	pool := s.slowPool()
	if len(pool) > max {
		pool = pool[:max]
	}
	return pool
}

// WeaknessTest picks up to count attempted questions ordered weakest
// first. A wrong latest answer scores a flat 10; a correct one scores its
// overage past the target time in seconds, so wrong answers always
// dominate merely slow ones. count <= 0 means DefaultWeaknessCount.
func (s State) WeaknessTest(count int) []catalog.Question {
	if count <= 0 {
		count = DefaultWeaknessCount
	}

	var scored []catalog.Question
	for _, q := range s.Questions {
		if _, ok := s.Latest[q.ID]; ok {
			scored = append(scored, q)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return s.weaknessScore(scored[i]) > s.weaknessScore(scored[j])
	})

	if len(scored) > count {
		scored = scored[:count]
	}
	return scored
}

// weaknessScore rates how badly a question needs work based on its latest
// attempt. Callers must only pass questions that have one.
func (s State) weaknessScore(q catalog.Question) float64 {
	a := s.Latest[q.ID]
	score := 0.0
	if !a.Correct {
		score += 10
	}
	if over := float64(a.ElapsedMs-s.Targets.MillisFor(q)) / 1000.0; over > 0 {
		score += over
	}
	return score
}
