package progress

import (
	"context"
	"testing"
	"time"

	"github.com/deebya/codetutor/internal/quiz"
	"github.com/deebya/codetutor/internal/store"
)

func openTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s, nil, nil)
}

func TestRecordTopicAccess(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	rec, unlocked, err := svc.RecordTopicAccess(ctx, "u1", "python", "basics", 100, 5*time.Minute)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !rec.Completed || rec.TimeSpentSecs != 300 {
		t.Errorf("record = %+v", rec)
	}

	// Completing the first topic unlocks first_topic.
	found := false
	for _, a := range unlocked {
		if a.Key == "first_topic" {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocked = %v, want first_topic", unlocked)
	}
}

func TestRecordQuizResultMarksTopicComplete(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	res := quiz.Result{Score: 8, MaxScore: 10, Percentage: 80, Passed: true}
	stored, unlocked, err := svc.RecordQuizResult(ctx, "u1", "python", "basics", res,
		map[string]string{"q1": "2"}, 90*time.Second)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if stored.Attempt != 1 || !stored.Passed {
		t.Errorf("stored result = %+v", stored)
	}

	prog, err := svc.progress.Get(ctx, "u1", "python", "basics")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if prog == nil || !prog.Completed {
		t.Fatalf("passing quiz should complete the topic, got %+v", prog)
	}
	if prog.BestScore != 80 || prog.Attempts != 1 {
		t.Errorf("progress = %+v", prog)
	}

	keys := make(map[string]bool)
	for _, a := range unlocked {
		keys[a.Key] = true
	}
	if !keys["first_quiz"] || !keys["first_topic"] {
		t.Errorf("unlocked = %v", keys)
	}
	if keys["perfect_quiz"] {
		t.Error("perfect_quiz unlocked at 80%")
	}
}

func TestRecordQuizResultFailedAttempt(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	res := quiz.Result{Score: 3, MaxScore: 10, Percentage: 30, Passed: false}
	if _, _, err := svc.RecordQuizResult(ctx, "u1", "go", "slices", res, nil, time.Minute); err != nil {
		t.Fatalf("record: %v", err)
	}

	prog, err := svc.progress.Get(ctx, "u1", "go", "slices")
	if err != nil {
		t.Fatalf("get progress: %v", err)
	}
	if prog.Completed {
		t.Error("failed quiz must not complete the topic")
	}
	if prog.Completion != 30 || prog.BestScore != 30 {
		t.Errorf("progress = %+v", prog)
	}
}

func TestRecordSubmission(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	runID, unlocked, err := svc.RecordSubmission(ctx, store.SubmissionRecord{
		UserID: "u1", Language: "python", Code: "print(1)",
		Status: "ok", DurationMs: 42,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if runID == "" {
		t.Error("empty run id")
	}

	found := false
	for _, a := range unlocked {
		if a.Key == "first_run" {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocked = %v, want first_run", unlocked)
	}
}

func TestReportAggregation(t *testing.T) {
	svc := openTestService(t)
	ctx := context.Background()

	if _, _, err := svc.RecordTopicAccess(ctx, "u1", "python", "basics", 100, time.Minute); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := svc.RecordTopicAccess(ctx, "u1", "python", "functions", 40, 2*time.Minute); err != nil {
		t.Fatalf("seed: %v", err)
	}
	res := quiz.Result{Score: 10, MaxScore: 10, Percentage: 100, Passed: true}
	if _, _, err := svc.RecordQuizResult(ctx, "u1", "python", "basics", res, nil, time.Minute); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := svc.RecordSubmission(ctx, store.SubmissionRecord{
		UserID: "u1", Language: "python", Code: "x", Status: "ok",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rep, err := svc.Report(ctx, "u1", "")
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(rep.Languages) != 1 {
		t.Fatalf("languages = %d, want 1", len(rep.Languages))
	}
	lang := rep.Languages[0]
	if lang.Language != "python" || lang.TopicsStarted != 2 || lang.TopicsCompleted != 1 {
		t.Errorf("language report = %+v", lang)
	}
	if lang.TimeSpentSecs != 240 {
		t.Errorf("time spent = %d, want 240", lang.TimeSpentSecs)
	}

	if rep.Quiz.TotalAttempts != 1 || rep.Quiz.Passed != 1 || rep.Quiz.BestScore != 100 {
		t.Errorf("quiz stats = %+v", rep.Quiz)
	}
	if rep.Submissions.Total != 1 || rep.Submissions.SuccessPct != 100 {
		t.Errorf("submission stats = %+v", rep.Submissions)
	}
	if rep.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", rep.CurrentStreak)
	}
	if rep.Points == 0 || len(rep.Achievements) == 0 {
		t.Errorf("achievements missing from report: points=%d n=%d", rep.Points, len(rep.Achievements))
	}
}

func TestCalcStreaks(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Now().AddDate(0, 0, offset)
	}

	tests := []struct {
		name        string
		offsets     []int
		wantCurrent int
		wantLongest int
	}{
		{"empty", nil, 0, 0},
		{"today only", []int{0}, 1, 1},
		{"three day run ending today", []int{-2, -1, 0}, 3, 3},
		{"run ended yesterday survives", []int{-2, -1}, 2, 2},
		{"two day gap resets current", []int{-5, -4, -3}, 0, 3},
		{"duplicates within a day collapse", []int{0, 0, 0}, 1, 1},
		{"longest in the past", []int{-9, -8, -7, -6, 0}, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var activity []time.Time
			for _, off := range tt.offsets {
				activity = append(activity, day(off))
			}
			current, longest := calcStreaks(activity, time.Now())
			if current != tt.wantCurrent || longest != tt.wantLongest {
				t.Errorf("streaks = (%d, %d), want (%d, %d)",
					current, longest, tt.wantCurrent, tt.wantLongest)
			}
		})
	}
}
