// Package achievements evaluates a learner's activity summary against
// a fixed catalog and unlocks anything newly earned. Evaluation is
// idempotent, so it can run after every interaction without double
// awards.
package achievements

import (
	"context"
	"fmt"
	"time"

	"github.com/deebya/codetutor/internal/store"
)

// Summary is the snapshot of learner activity the predicates read.
// It carries only counts, never raw records.
type Summary struct {
	UserID          string
	TopicsCompleted int
	QuizAttempts    int
	QuizzesPassed   int
	PerfectQuizzes  int
	Submissions     int
	CurrentStreak   int
	LongestStreak   int

	// MasteredLanguages lists languages where every topic is complete.
	MasteredLanguages []string
}

// Evaluate checks the summary against the catalog and awards anything
// not yet held. Returns the newly unlocked achievements in catalog
// order, mastery awards last.
func Evaluate(ctx context.Context, repo store.AchievementRepo, s Summary) ([]store.AchievementRecord, error) {
	held, err := repo.UnlockedKeys(ctx, s.UserID)
	if err != nil {
		return nil, fmt.Errorf("load unlocked achievements: %w", err)
	}

	now := time.Now()
	var unlocked []store.AchievementRecord

	award := func(def Definition, language string) error {
		rec := store.AchievementRecord{
			UserID:      s.UserID,
			Key:         def.Key,
			Name:        def.Name,
			Description: def.Description,
			Category:    string(def.Category),
			Points:      def.Points,
			Language:    language,
			UnlockedAt:  now,
		}
		fresh, err := repo.Award(ctx, rec)
		if err != nil {
			return fmt.Errorf("award %s: %w", def.Key, err)
		}
		if fresh {
			unlocked = append(unlocked, rec)
		}
		return nil
	}

	for _, def := range Catalog {
		if held[def.Key] || !def.Unlocked(s) {
			continue
		}
		if err := award(def, ""); err != nil {
			return unlocked, err
		}
	}

	for _, lang := range s.MasteredLanguages {
		def := masteryDefinition(lang)
		if held[def.Key] {
			continue
		}
		if err := award(def, lang); err != nil {
			return unlocked, err
		}
	}

	return unlocked, nil
}

// TotalPoints sums the points of the given achievement records.
func TotalPoints(records []store.AchievementRecord) int {
	var total int
	for _, r := range records {
		total += r.Points
	}
	return total
}
