package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationTableStamped(t *testing.T) {
	s := openTestStore(t)

	v, err := currentVersion(s.DB())
	if err != nil {
		t.Fatalf("current version: %v", err)
	}
	if v != schemaVersion {
		t.Errorf("schema version = %d, want %d", v, schemaVersion)
	}
}

func TestProgressUpsertCreatesThenMerges(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)

	// First interaction creates the record.
	rec, err := repo.Upsert(ctx, ProgressUpdate{
		UserID: "u1", Language: "python", TopicID: "basics",
		Completion: 25, AddSecs: 60, AccessedAt: base,
	})
	if err != nil {
		t.Fatalf("upsert (create): %v", err)
	}
	if rec.TimeSpentSecs != 60 || rec.Completion != 25 {
		t.Errorf("created record = %+v", rec)
	}
	if rec.Status != "in_progress" {
		t.Errorf("status = %q, want in_progress", rec.Status)
	}

	// Second interaction merges.
	rec, err = repo.Upsert(ctx, ProgressUpdate{
		UserID: "u1", Language: "python", TopicID: "basics",
		Completion: 100, Score: 80, AddSecs: 30, AddAttempt: true,
		AccessedAt: base.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("upsert (merge): %v", err)
	}
	if rec.TimeSpentSecs != 90 {
		t.Errorf("time spent = %d, want 90", rec.TimeSpentSecs)
	}
	if !rec.Completed || rec.Status != "completed" {
		t.Errorf("completion not applied: %+v", rec)
	}
	if rec.BestScore != 80 {
		t.Errorf("best score = %f, want 80", rec.BestScore)
	}
	if rec.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", rec.Attempts)
	}
}

func TestProgressMonotonicInvariants(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	_, err := repo.Upsert(ctx, ProgressUpdate{
		UserID: "u1", Language: "go", TopicID: "slices",
		Completion: 80, Score: 90, AddSecs: 120, AccessedAt: base,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// A later, worse interaction must not regress anything.
	rec, err := repo.Upsert(ctx, ProgressUpdate{
		UserID: "u1", Language: "go", TopicID: "slices",
		Completion: 40, Score: 50, AddSecs: 10,
		AccessedAt: base.Add(-time.Hour), // clock skew backwards
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if rec.Completion != 80 {
		t.Errorf("completion regressed to %f", rec.Completion)
	}
	if rec.BestScore != 90 {
		t.Errorf("best score regressed to %f", rec.BestScore)
	}
	if rec.TimeSpentSecs != 130 {
		t.Errorf("time spent = %d, want 130", rec.TimeSpentSecs)
	}
	if rec.LastAccessed.Before(base) {
		t.Errorf("last accessed moved backwards: %v", rec.LastAccessed)
	}
}

func TestProgressGetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.ProgressRepo().Get(ctx, "u1", "python", "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Fatalf("expected nil record, got %+v", rec)
	}
}

func TestQuizAppendAssignsAttemptNumbers(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec, err := repo.Append(ctx, QuizResultRecord{
			UserID: "u1", Language: "python", TopicID: "basics",
			Score: float64(i), MaxScore: 10, Percentage: float64(i * 10),
			Passed: i == 2,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if rec.Attempt != i+1 {
			t.Errorf("attempt = %d, want %d", rec.Attempt, i+1)
		}
	}

	stats, err := repo.Stats(ctx, "u1", "python")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAttempts != 3 || stats.Passed != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestScore != 20 {
		t.Errorf("best score = %f, want 20", stats.BestScore)
	}
	if stats.AverageScore != 10 {
		t.Errorf("average = %f, want 10", stats.AverageScore)
	}
}

func TestSubmissionAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	runs := []struct{ status string }{{"ok"}, {"error"}, {"ok"}, {"timeout"}}
	for i, r := range runs {
		id, err := repo.Append(ctx, SubmissionRecord{
			UserID: "u1", Language: "python",
			Code: "print(1)", Status: r.status, DurationMs: int64(i),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if id == "" {
			t.Errorf("append %d: empty run id", i)
		}
	}

	stats, err := repo.Stats(ctx, "u1", "python")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 4 || stats.Succeeded != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.SuccessPct != 50 {
		t.Errorf("success pct = %f, want 50", stats.SuccessPct)
	}
}

func TestAchievementAwardIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AchievementRepo()
	ctx := context.Background()

	a := AchievementRecord{
		UserID: "u1", Key: "first_topic", Name: "First Steps",
		Description: "Complete your first topic", Category: "learning",
		Points: 10,
	}

	awarded, err := repo.Award(ctx, a)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if !awarded {
		t.Fatal("expected first award to succeed")
	}

	awarded, err = repo.Award(ctx, a)
	if err != nil {
		t.Fatalf("re-award: %v", err)
	}
	if awarded {
		t.Fatal("expected duplicate award to be a no-op")
	}

	list, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("achievements = %d, want 1", len(list))
	}

	keys, err := repo.UnlockedKeys(ctx, "u1")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if !keys["first_topic"] {
		t.Error("expected first_topic in unlocked keys")
	}
}

func TestResetLearnerData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.ProgressRepo().Upsert(ctx, ProgressUpdate{
		UserID: "u1", Language: "python", TopicID: "basics", AddSecs: 1,
	}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if _, err := s.AchievementRepo().Award(ctx, AchievementRecord{
		UserID: "u1", Key: "first_topic", Name: "First Steps",
		Description: "d", Category: "learning",
	}); err != nil {
		t.Fatalf("seed achievement: %v", err)
	}

	if err := s.ResetLearnerData(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	records, err := s.ProgressRepo().List(ctx, "u1", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("progress rows after reset = %d, want 0", len(records))
	}
	keys, err := s.AchievementRepo().UnlockedKeys(ctx, "u1")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("achievements after reset = %d, want 0", len(keys))
	}
}
