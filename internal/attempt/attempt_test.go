package attempt

import (
	"testing"
	"time"
)

func TestLatestByQuestion_Empty(t *testing.T) {
	got := LatestByQuestion(nil)
	if len(got) != 0 {
		t.Errorf("expected empty map, got %d entries", len(got))
	}
}

func TestLatestByQuestion_LatestWins(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{QuestionID: "a", Timestamp: base.Add(2 * time.Hour), Correct: true},
		{QuestionID: "a", Timestamp: base, Correct: false},
		{QuestionID: "b", Timestamp: base.Add(time.Hour), Correct: false},
		{QuestionID: "a", Timestamp: base.Add(time.Hour), Correct: false},
	}

	got := LatestByQuestion(attempts)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got["a"].Correct || !got["a"].Timestamp.Equal(base.Add(2*time.Hour)) {
		t.Errorf("latest for a = %+v, want the newest (correct) attempt", got["a"])
	}
	if got["b"].Correct {
		t.Errorf("latest for b = %+v, want the incorrect attempt", got["b"])
	}
}

func TestLatestByQuestion_TieKeepsFirstSeen(t *testing.T) {
	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{QuestionID: "a", Timestamp: ts, ChosenOption: 1},
		{QuestionID: "a", Timestamp: ts, ChosenOption: 2},
	}

	got := LatestByQuestion(attempts)

	if got["a"].ChosenOption != 1 {
		t.Errorf("ChosenOption = %d, want 1 (first seen wins on equal timestamps)", got["a"].ChosenOption)
	}
}
