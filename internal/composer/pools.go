package composer

import (
	"sort"

	"github.com/morita/chartdrill/internal/catalog"
)

// All pool builders sort stably so that questions tying on the sort key
// keep their snapshot order. Pools are built fresh per call; State caches
// nothing.

// dueSet returns the ids in the precomputed due set.
func (s State) dueSet() map[string]bool {
	due := make(map[string]bool, len(s.Due))
	for _, e := range s.Due {
		due[e.QuestionID] = true
	}
	return due
}

// duePool returns due questions ordered earliest overdue first. Schedule
// entries whose question no longer exists in the catalog are skipped.
func (s State) duePool() []catalog.Question {
	byID := make(map[string]catalog.Question, len(s.Questions))
	for _, q := range s.Questions {
		byID[q.ID] = q
	}

	entries := make([]int, 0, len(s.Due))
	for i := range s.Due {
		if _, ok := byID[s.Due[i].QuestionID]; ok {
			entries = append(entries, i)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return s.Due[entries[i]].NextReviewAt.Before(s.Due[entries[j]].NextReviewAt)
	})

	pool := make([]catalog.Question, len(entries))
	for i, idx := range entries {
		pool[i] = byID[s.Due[idx].QuestionID]
	}
	return pool
}

// slowPool returns questions whose latest attempt was correct but slower
// than the category target, slowest first.
func (s State) slowPool() []catalog.Question {
	var pool []catalog.Question
	for _, q := range s.Questions {
		a, ok := s.Latest[q.ID]
		if !ok || !a.Correct {
			continue
		}
		if a.ElapsedMs > s.Targets.MillisFor(q) {
			pool = append(pool, q)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return s.Latest[pool[i].ID].ElapsedMs > s.Latest[pool[j].ID].ElapsedMs
	})
	return pool
}

// wrongPool returns questions whose latest attempt was incorrect, most
// recently missed first.
func (s State) wrongPool() []catalog.Question {
	var pool []catalog.Question
	for _, q := range s.Questions {
		if a, ok := s.Latest[q.ID]; ok && !a.Correct {
			pool = append(pool, q)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return s.Latest[pool[i].ID].Timestamp.After(s.Latest[pool[j].ID].Timestamp)
	})
	return pool
}

// unseenPool returns never-attempted questions, easiest first.
func (s State) unseenPool() []catalog.Question {
	var pool []catalog.Question
	for _, q := range s.Questions {
		if _, ok := s.Latest[q.ID]; !ok {
			pool = append(pool, q)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Difficulty < pool[j].Difficulty
	})
	return pool
}
