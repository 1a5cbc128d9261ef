package study

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morita/chartdrill/internal/attempt"
	"github.com/morita/chartdrill/internal/catalog"
	"github.com/morita/chartdrill/internal/composer"
	"github.com/morita/chartdrill/internal/scheduler"
)

// fixtureProvider is an in-memory catalog.Provider.
type fixtureProvider struct {
	qs []catalog.Question
}

func (p fixtureProvider) Questions() []catalog.Question { return p.qs }

// fakeAttemptRepo is an in-memory store.AttemptRepo.
type fakeAttemptRepo struct {
	appended []attempt.Attempt
}

func (r *fakeAttemptRepo) Append(_ context.Context, a attempt.Attempt) error {
	r.appended = append(r.appended, a)
	return nil
}

func (r *fakeAttemptRepo) LatestByQuestion(_ context.Context) (map[string]attempt.Attempt, error) {
	return attempt.LatestByQuestion(r.appended), nil
}

func (r *fakeAttemptRepo) ForQuestion(_ context.Context, questionID string) ([]attempt.Attempt, error) {
	var out []attempt.Attempt
	for _, a := range r.appended {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *fakeAttemptRepo) Since(_ context.Context, from time.Time) ([]attempt.Attempt, error) {
	var out []attempt.Attempt
	for _, a := range r.appended {
		if !a.Timestamp.Before(from) {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeScheduleRepo is an in-memory store.ScheduleRepo.
type fakeScheduleRepo struct {
	entries map[string]scheduler.Entry
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{entries: make(map[string]scheduler.Entry)}
}

func (r *fakeScheduleRepo) Upsert(_ context.Context, e scheduler.Entry) error {
	r.entries[e.QuestionID] = e
	return nil
}

func (r *fakeScheduleRepo) Due(_ context.Context, now time.Time) ([]scheduler.Entry, error) {
	var out []scheduler.Entry
	for _, e := range r.entries {
		if e.IsDue(now) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextReviewAt.Before(out[j].NextReviewAt) })
	return out, nil
}

func (r *fakeScheduleRepo) All(_ context.Context) ([]scheduler.Entry, error) {
	var out []scheduler.Entry
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

func (r *fakeScheduleRepo) Get(_ context.Context, questionID string) (*scheduler.Entry, error) {
	if e, ok := r.entries[questionID]; ok {
		return &e, nil
	}
	return nil, nil
}

var testQuestions = []catalog.Question{
	{ID: "A", Category: catalog.CategoryTable, Difficulty: 2},
	{ID: "B", Category: catalog.CategoryBar, Difficulty: 2},
	{ID: "C", Category: catalog.CategoryPie, Difficulty: 1},
}

func newTestService(t *testing.T, now time.Time) (*Service, *fakeAttemptRepo, *fakeScheduleRepo) {
	t.Helper()
	attempts := &fakeAttemptRepo{}
	schedules := newFakeScheduleRepo()
	svc := New(fixtureProvider{qs: testQuestions}, attempts, schedules, nil, nil)
	svc.now = func() time.Time { return now }
	return svc, attempts, schedules
}

func TestRecordAnswer_FirstCorrect(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, attempts, schedules := newTestService(t, now)
	ctx := context.Background()

	entry, err := svc.RecordAnswer(ctx, "A", true, 1, 48*time.Second)
	require.NoError(t, err)

	assert.Equal(t, 1, entry.Stage)
	assert.True(t, entry.NextReviewAt.Equal(now.AddDate(0, 0, 3)))

	require.Len(t, attempts.appended, 1)
	a := attempts.appended[0]
	assert.Equal(t, "A", a.QuestionID)
	assert.True(t, a.Correct)
	assert.Equal(t, int64(48_000), a.ElapsedMs)

	stored, err := schedules.Get(ctx, "A")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entry, *stored)
}

func TestRecordAnswer_StageWalkAcrossAnswers(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, now)
	ctx := context.Background()

	e1, err := svc.RecordAnswer(ctx, "A", true, 1, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, e1.Stage)

	e2, err := svc.RecordAnswer(ctx, "A", true, 1, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, e2.Stage)

	e3, err := svc.RecordAnswer(ctx, "A", false, 2, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, e3.Stage)
	assert.True(t, e3.NextReviewAt.Equal(now.AddDate(0, 0, 3)))
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, attempts, _ := newTestService(t, now)

	_, err := svc.RecordAnswer(context.Background(), "nope", true, 1, time.Minute)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownQuestion))
	assert.Empty(t, attempts.appended)
}

func TestQuickSession_ComposesFromStoreState(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, attempts, _ := newTestService(t, now)
	ctx := context.Background()

	// A slow but correct, B wrong, C untouched.
	attempts.appended = []attempt.Attempt{
		{QuestionID: "A", Timestamp: now.Add(-time.Hour), Correct: true, ElapsedMs: 80_000},
		{QuestionID: "B", Timestamp: now.Add(-time.Hour), Correct: false, ElapsedMs: 60_000},
	}

	got, err := svc.QuickSession(ctx, 60)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ID)
	assert.Equal(t, "A", got[1].ID)
}

func TestReviewSessionAndDue_UseClock(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, schedules := newTestService(t, now)
	ctx := context.Background()

	require.NoError(t, schedules.Upsert(ctx, scheduler.Entry{QuestionID: "A", Stage: 1, NextReviewAt: now.AddDate(0, 0, -1)}))
	require.NoError(t, schedules.Upsert(ctx, scheduler.Entry{QuestionID: "B", Stage: 2, NextReviewAt: now.AddDate(0, 0, 5)}))

	due, err := svc.Due(ctx)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "A", due[0].QuestionID)

	session, err := svc.ReviewSession(ctx, 10)
	require.NoError(t, err)
	require.Len(t, session, 1)
	assert.Equal(t, "A", session[0].ID)
}

func TestRecommendations_LiveDueCount(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, _, schedules := newTestService(t, now)
	ctx := context.Background()

	require.NoError(t, schedules.Upsert(ctx, scheduler.Entry{QuestionID: "A", Stage: 0, NextReviewAt: now}))

	recs, err := svc.Recommendations(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, composer.RecommendReview, recs[0].Type)
	assert.Equal(t, 1, recs[0].Questions)
}

func TestCategoryStats_Aggregates(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc, attempts, _ := newTestService(t, now)

	attempts.appended = []attempt.Attempt{
		{QuestionID: "A", Timestamp: now, Correct: true, ElapsedMs: 40_000},
		{QuestionID: "A", Timestamp: now.Add(time.Hour), Correct: false, ElapsedMs: 60_000},
		{QuestionID: "C", Timestamp: now, Correct: true, ElapsedMs: 30_000},
		// Attempt for a question no longer in the catalog is skipped.
		{QuestionID: "ghost", Timestamp: now, Correct: true, ElapsedMs: 10_000},
	}

	stats, err := svc.CategoryStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, len(catalog.AllCategories))

	byCat := make(map[catalog.Category]CategoryStat)
	for _, st := range stats {
		byCat[st.Category] = st
	}

	table := byCat[catalog.CategoryTable]
	assert.Equal(t, 2, table.Attempts)
	assert.Equal(t, 1, table.Correct)
	assert.InDelta(t, 0.5, table.Accuracy(), 1e-9)
	assert.Equal(t, int64(50_000), table.AvgMillis)

	pie := byCat[catalog.CategoryPie]
	assert.Equal(t, 1, pie.Attempts)

	bar := byCat[catalog.CategoryBar]
	assert.Equal(t, 0, bar.Attempts)
	assert.Equal(t, float64(0), bar.Accuracy())
}
