package achievements

import (
	"context"
	"testing"

	"github.com/deebya/codetutor/internal/store"
)

// memRepo is an in-memory AchievementRepo for predicate tests.
type memRepo struct {
	records []store.AchievementRecord
}

func (m *memRepo) Award(ctx context.Context, a store.AchievementRecord) (bool, error) {
	for _, r := range m.records {
		if r.UserID == a.UserID && r.Key == a.Key {
			return false, nil
		}
	}
	m.records = append(m.records, a)
	return true, nil
}

func (m *memRepo) List(ctx context.Context, userID string) ([]store.AchievementRecord, error) {
	var out []store.AchievementRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) UnlockedKeys(ctx context.Context, userID string) (map[string]bool, error) {
	keys := make(map[string]bool)
	for _, r := range m.records {
		if r.UserID == userID {
			keys[r.Key] = true
		}
	}
	return keys, nil
}

func keysOf(records []store.AchievementRecord) map[string]bool {
	keys := make(map[string]bool, len(records))
	for _, r := range records {
		keys[r.Key] = true
	}
	return keys
}

func TestEvaluateUnlocksEarnedOnly(t *testing.T) {
	repo := &memRepo{}
	ctx := context.Background()

	unlocked, err := Evaluate(ctx, repo, Summary{
		UserID:          "u1",
		TopicsCompleted: 1,
		QuizAttempts:    1,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	keys := keysOf(unlocked)
	if !keys["first_topic"] || !keys["first_quiz"] {
		t.Errorf("unlocked = %v, want first_topic and first_quiz", keys)
	}
	if keys["perfect_quiz"] || keys["streak_3"] {
		t.Errorf("unearned achievements unlocked: %v", keys)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	repo := &memRepo{}
	ctx := context.Background()
	s := Summary{UserID: "u1", TopicsCompleted: 5, QuizzesPassed: 10}

	first, err := Evaluate(ctx, repo, s)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected unlocks on first evaluation")
	}

	second, err := Evaluate(ctx, repo, s)
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second evaluation unlocked %d achievements, want 0", len(second))
	}
}

func TestEvaluateStreakThresholds(t *testing.T) {
	tests := []struct {
		longest int
		want    []string
	}{
		{2, nil},
		{3, []string{"streak_3"}},
		{7, []string{"streak_3", "streak_7"}},
		{30, []string{"streak_3", "streak_7", "streak_30"}},
	}

	for _, tt := range tests {
		repo := &memRepo{}
		unlocked, err := Evaluate(context.Background(), repo, Summary{
			UserID: "u1", LongestStreak: tt.longest,
		})
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		keys := keysOf(unlocked)
		if len(keys) != len(tt.want) {
			t.Errorf("streak %d unlocked %v, want %v", tt.longest, keys, tt.want)
			continue
		}
		for _, k := range tt.want {
			if !keys[k] {
				t.Errorf("streak %d missing %s", tt.longest, k)
			}
		}
	}
}

func TestEvaluateLanguageMastery(t *testing.T) {
	repo := &memRepo{}
	unlocked, err := Evaluate(context.Background(), repo, Summary{
		UserID:            "u1",
		TopicsCompleted:   8,
		MasteredLanguages: []string{"python"},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	var mastery *store.AchievementRecord
	for i := range unlocked {
		if unlocked[i].Key == "python_master" {
			mastery = &unlocked[i]
		}
	}
	if mastery == nil {
		t.Fatal("python_master not unlocked")
	}
	if mastery.Language != "python" || mastery.Points != masteryPoints {
		t.Errorf("mastery record = %+v", mastery)
	}
	if mastery.Name != "Python Master" {
		t.Errorf("mastery name = %q", mastery.Name)
	}
}

func TestCatalogKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, def := range Catalog {
		if seen[def.Key] {
			t.Errorf("duplicate catalog key %q", def.Key)
		}
		seen[def.Key] = true
		if def.Unlocked == nil {
			t.Errorf("catalog entry %q has no predicate", def.Key)
		}
		if def.Points <= 0 {
			t.Errorf("catalog entry %q has no points", def.Key)
		}
	}
}

func TestTotalPoints(t *testing.T) {
	records := []store.AchievementRecord{
		{Points: 10}, {Points: 50}, {Points: 100},
	}
	if got := TotalPoints(records); got != 160 {
		t.Errorf("total points = %d, want 160", got)
	}
}
