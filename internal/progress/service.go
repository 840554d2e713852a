// Package progress ties the repositories together: it records learner
// interactions, keeps progress rows in sync with quiz results and code
// runs, and triggers achievement evaluation after every interaction.
package progress

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/deebya/codetutor/internal/achievements"
	"github.com/deebya/codetutor/internal/content"
	"github.com/deebya/codetutor/internal/quiz"
	"github.com/deebya/codetutor/internal/store"
)

// Service coordinates progress tracking across the repositories.
// library may be nil, in which case language mastery is not evaluated.
type Service struct {
	progress store.ProgressRepo
	quizzes  store.QuizRepo
	subs     store.SubmissionRepo
	awards   store.AchievementRepo
	library  *content.Library
	log      *zap.Logger
}

// NewService wires a Service over the given store.
func NewService(st *store.Store, lib *content.Library, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		progress: st.ProgressRepo(),
		quizzes:  st.QuizRepo(),
		subs:     st.SubmissionRepo(),
		awards:   st.AchievementRepo(),
		library:  lib,
		log:      log,
	}
}

// RecordTopicAccess registers that the user spent time on a topic,
// optionally advancing its completion percentage. Returns the merged
// record and any newly unlocked achievements.
func (s *Service) RecordTopicAccess(ctx context.Context, userID, language, topicID string, completion float64, spent time.Duration) (*store.ProgressRecord, []store.AchievementRecord, error) {
	rec, err := s.progress.Upsert(ctx, store.ProgressUpdate{
		UserID:     userID,
		Language:   language,
		TopicID:    topicID,
		Completion: completion,
		AddSecs:    int(spent.Seconds()),
		AccessedAt: time.Now(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("record topic access: %w", err)
	}

	unlocked := s.checkAchievements(ctx, userID)
	return rec, unlocked, nil
}

// RecordQuizResult stores a graded attempt and folds it into the
// topic's progress: a pass marks the topic complete, and the percentage
// feeds the best score. Returns the stored result and any newly
// unlocked achievements.
func (s *Service) RecordQuizResult(ctx context.Context, userID, language, topicID string, res quiz.Result, answers map[string]string, took time.Duration) (*store.QuizResultRecord, []store.AchievementRecord, error) {
	stored, err := s.quizzes.Append(ctx, store.QuizResultRecord{
		UserID:       userID,
		Language:     language,
		TopicID:      topicID,
		Score:        res.Score,
		MaxScore:     res.MaxScore,
		Percentage:   res.Percentage,
		Passed:       res.Passed,
		DurationSecs: int(took.Seconds()),
		Answers:      answers,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("record quiz result: %w", err)
	}

	completion := res.Percentage
	if res.Passed {
		completion = 100
	}
	if _, err := s.progress.Upsert(ctx, store.ProgressUpdate{
		UserID:     userID,
		Language:   language,
		TopicID:    topicID,
		Completion: completion,
		Score:      res.Percentage,
		AddSecs:    int(took.Seconds()),
		AddAttempt: true,
		AccessedAt: time.Now(),
	}); err != nil {
		return nil, nil, fmt.Errorf("update progress from quiz: %w", err)
	}

	unlocked := s.checkAchievements(ctx, userID)
	return stored, unlocked, nil
}

// RecordSubmission stores a code-execution run and returns its run id
// and any newly unlocked achievements.
func (s *Service) RecordSubmission(ctx context.Context, rec store.SubmissionRecord) (string, []store.AchievementRecord, error) {
	runID, err := s.subs.Append(ctx, rec)
	if err != nil {
		return "", nil, fmt.Errorf("record submission: %w", err)
	}

	unlocked := s.checkAchievements(ctx, rec.UserID)
	return runID, unlocked, nil
}

// checkAchievements evaluates the catalog against the user's current
// summary. Achievement failures never fail the interaction that
// triggered them; they are logged and evaluation retries next time.
func (s *Service) checkAchievements(ctx context.Context, userID string) []store.AchievementRecord {
	summary, err := s.buildSummary(ctx, userID)
	if err != nil {
		s.log.Warn("skipping achievement evaluation",
			zap.String("user", userID), zap.Error(err))
		return nil
	}

	unlocked, err := achievements.Evaluate(ctx, s.awards, summary)
	if err != nil {
		s.log.Warn("achievement evaluation failed",
			zap.String("user", userID), zap.Error(err))
	}
	return unlocked
}

func (s *Service) buildSummary(ctx context.Context, userID string) (achievements.Summary, error) {
	records, err := s.progress.List(ctx, userID, "")
	if err != nil {
		return achievements.Summary{}, fmt.Errorf("list progress: %w", err)
	}

	summary := achievements.Summary{UserID: userID}
	completedByLang := make(map[string]int)
	for _, r := range records {
		if r.Completed {
			summary.TopicsCompleted++
			completedByLang[r.Language]++
		}
	}

	history, err := s.quizzes.History(ctx, userID, "", 0)
	if err != nil {
		return achievements.Summary{}, fmt.Errorf("quiz history: %w", err)
	}
	summary.QuizAttempts = len(history)
	for _, h := range history {
		if h.Passed {
			summary.QuizzesPassed++
		}
		if h.Percentage >= 100 {
			summary.PerfectQuizzes++
		}
	}

	subStats, err := s.subs.Stats(ctx, userID, "")
	if err != nil {
		return achievements.Summary{}, fmt.Errorf("submission stats: %w", err)
	}
	summary.Submissions = subStats.Total

	activity := activityDays(records, history)
	summary.CurrentStreak, summary.LongestStreak = calcStreaks(activity, time.Now())

	if s.library != nil {
		for _, lang := range s.library.Languages() {
			total := s.library.TopicCount(lang)
			if total > 0 && completedByLang[lang] >= total {
				summary.MasteredLanguages = append(summary.MasteredLanguages, lang)
			}
		}
	}

	return summary, nil
}

// activityDays collects every timestamp that counts as learning
// activity for streak purposes.
func activityDays(records []store.ProgressRecord, history []store.QuizResultRecord) []time.Time {
	out := make([]time.Time, 0, len(records)+len(history))
	for _, r := range records {
		if !r.LastAccessed.IsZero() {
			out = append(out, r.LastAccessed)
		}
	}
	for _, h := range history {
		if !h.Timestamp.IsZero() {
			out = append(out, h.Timestamp)
		}
	}
	return out
}
