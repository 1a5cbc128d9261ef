package study

import (
	"context"
	"fmt"
	"time"

	"github.com/morita/chartdrill/internal/catalog"
)

// CategoryStat summarizes answer history for one category.
type CategoryStat struct {
	Category  catalog.Category
	Attempts  int
	Correct   int
	AvgMillis int64
}

// Accuracy returns the fraction of correct attempts, or 0 with no
// attempts.
func (cs CategoryStat) Accuracy() float64 {
	if cs.Attempts == 0 {
		return 0
	}
	return float64(cs.Correct) / float64(cs.Attempts)
}

// CategoryStats aggregates the full attempt history per category, in
// catalog display order. Categories with no attempts are included with
// zero counts.
func (s *Service) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	attempts, err := s.attempts.Since(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	byID := make(map[string]catalog.Category)
	for _, q := range s.catalog.Questions() {
		byID[q.ID] = q.Category
	}

	counts := make(map[catalog.Category]*CategoryStat)
	totalMillis := make(map[catalog.Category]int64)
	for _, a := range attempts {
		cat, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		st := counts[cat]
		if st == nil {
			st = &CategoryStat{Category: cat}
			counts[cat] = st
		}
		st.Attempts++
		if a.Correct {
			st.Correct++
		}
		totalMillis[cat] += a.ElapsedMs
	}

	stats := make([]CategoryStat, 0, len(catalog.AllCategories))
	for _, cat := range catalog.AllCategories {
		st := CategoryStat{Category: cat}
		if c := counts[cat]; c != nil {
			st = *c
			st.AvgMillis = totalMillis[cat] / int64(st.Attempts)
		}
		stats = append(stats, st)
	}
	return stats, nil
}
