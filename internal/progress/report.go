package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/deebya/codetutor/internal/achievements"
	"github.com/deebya/codetutor/internal/store"
)

// LanguageReport summarizes a user's standing in one language.
type LanguageReport struct {
	Language        string
	TopicsTotal     int // 0 when the language is not in the library
	TopicsStarted   int
	TopicsCompleted int
	CompletionPct   float64
	TimeSpentSecs   int
}

// Report is the full learner dashboard: per-language progress, quiz and
// execution statistics, streaks, and unlocked achievements.
type Report struct {
	UserID        string
	Languages     []LanguageReport
	Quiz          store.QuizStats
	Submissions   store.SubmissionStats
	CurrentStreak int
	LongestStreak int
	Achievements  []store.AchievementRecord
	Points        int
}

// Report aggregates everything known about the user. language may be
// empty to report across all languages.
func (s *Service) Report(ctx context.Context, userID, language string) (*Report, error) {
	records, err := s.progress.List(ctx, userID, language)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	byLang := make(map[string]*LanguageReport)
	for _, r := range records {
		lr, ok := byLang[r.Language]
		if !ok {
			lr = &LanguageReport{Language: r.Language}
			byLang[r.Language] = lr
		}
		lr.TopicsStarted++
		if r.Completed {
			lr.TopicsCompleted++
		}
		lr.TimeSpentSecs += r.TimeSpentSecs
	}

	rep := &Report{UserID: userID}
	for _, lr := range byLang {
		if s.library != nil {
			lr.TopicsTotal = s.library.TopicCount(lr.Language)
		}
		if lr.TopicsTotal > 0 {
			lr.CompletionPct = float64(lr.TopicsCompleted) / float64(lr.TopicsTotal) * 100
		}
		rep.Languages = append(rep.Languages, *lr)
	}
	sort.Slice(rep.Languages, func(i, j int) bool {
		return rep.Languages[i].Language < rep.Languages[j].Language
	})

	if rep.Quiz, err = s.quizzes.Stats(ctx, userID, language); err != nil {
		return nil, fmt.Errorf("quiz stats: %w", err)
	}
	if rep.Submissions, err = s.subs.Stats(ctx, userID, language); err != nil {
		return nil, fmt.Errorf("submission stats: %w", err)
	}

	history, err := s.quizzes.History(ctx, userID, "", 0)
	if err != nil {
		return nil, fmt.Errorf("quiz history: %w", err)
	}
	allRecords := records
	if language != "" {
		// Streaks always span every language.
		if allRecords, err = s.progress.List(ctx, userID, ""); err != nil {
			return nil, fmt.Errorf("list progress: %w", err)
		}
	}
	rep.CurrentStreak, rep.LongestStreak = calcStreaks(activityDays(allRecords, history), time.Now())

	if rep.Achievements, err = s.awards.List(ctx, userID); err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	rep.Points = achievements.TotalPoints(rep.Achievements)

	return rep, nil
}
