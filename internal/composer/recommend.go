package composer

import (
	"fmt"
	"time"

	"github.com/morita/chartdrill/internal/catalog"
)

// RecommendationType tags what a home-screen card proposes.
type RecommendationType string

const (
	RecommendReview       RecommendationType = "review"
	RecommendSpeed        RecommendationType = "speed"
	RecommendCategoryWeak RecommendationType = "category_weak"
	RecommendDrill        RecommendationType = "drill"
)

// Recommendation is an ephemeral home-screen card. It is computed on
// demand and never persisted.
type Recommendation struct {
	Title            string
	Reason           string
	Type             RecommendationType
	Questions        int
	EstimatedMinutes int

	// Category is set only for category_weak cards.
	Category catalog.Category
}

// Thresholds and sizing constants for recommendation cards.
const (
	reviewCardMax      = 5
	speedCardMax       = 3
	weakCardQuestions  = 3
	weakCardMinutes    = 3
	weakAccuracyCutoff = 0.70
	weakMinAttempted   = 3

	// Per-question pacing assumptions used for the minute estimates.
	reviewSecondsPerQuestion = 50
	speedSecondsPerQuestion  = 45
)

// Recommendations produces up to three home-screen cards, evaluated
// independently and emitted in a fixed order: review backlog, speed
// reinforcement, category weakness. The due count is checked live against
// the full schedule at now rather than reusing the precomputed due set,
// which may predate the snapshot.
func (s State) Recommendations(now time.Time) []Recommendation {
	var recs []Recommendation

	dueCount := 0
	for _, e := range s.Entries {
		if e.IsDue(now) {
			dueCount++
		}
	}
	if dueCount > 0 {
		recs = append(recs, Recommendation{
			Title:            "Clear your review queue",
			Reason:           fmt.Sprintf("%d questions are due for review", dueCount),
			Type:             RecommendReview,
			Questions:        min(dueCount, reviewCardMax),
			EstimatedMinutes: ceilMinutes(dueCount * reviewSecondsPerQuestion),
		})
	}

	if slow := len(s.slowPool()); slow > 0 {
		n := min(slow, speedCardMax)
		recs = append(recs, Recommendation{
			Title:            "Pick up the pace",
			Reason:           fmt.Sprintf("%d questions were correct but over the target time", slow),
			Type:             RecommendSpeed,
			Questions:        n,
			EstimatedMinutes: ceilMinutes(n * speedSecondsPerQuestion),
		})
	}

	if cat, acc, ok := s.weakestCategory(); ok && acc < weakAccuracyCutoff {
		recs = append(recs, Recommendation{
			Title:            fmt.Sprintf("Strengthen %s questions", cat),
			Reason:           fmt.Sprintf("accuracy on %s questions is %.0f%%", cat, acc*100),
			Type:             RecommendCategoryWeak,
			Questions:        weakCardQuestions,
			EstimatedMinutes: weakCardMinutes,
			Category:         cat,
		})
	}

	return recs
}

// weakestCategory returns the category with the lowest latest-attempt
// accuracy among categories with at least weakMinAttempted attempted
// questions. ok is false when no category clears the sample-size guard.
// Ties resolve to the earlier category in catalog display order.
func (s State) weakestCategory() (catalog.Category, float64, bool) {
	attempted := make(map[catalog.Category]int)
	correct := make(map[catalog.Category]int)
	for _, q := range s.Questions {
		a, ok := s.Latest[q.ID]
		if !ok {
			continue
		}
		attempted[q.Category]++
		if a.Correct {
			correct[q.Category]++
		}
	}

	var (
		worst    catalog.Category
		worstAcc float64
		found    bool
	)
	for _, cat := range catalog.AllCategories {
		n := attempted[cat]
		if n < weakMinAttempted {
			continue
		}
		acc := float64(correct[cat]) / float64(n)
		if !found || acc < worstAcc {
			worst, worstAcc, found = cat, acc, true
		}
	}
	return worst, worstAcc, found
}

// ceilMinutes converts a second estimate to whole minutes, rounding up.
func ceilMinutes(seconds int) int {
	return (seconds + 59) / 60
}
