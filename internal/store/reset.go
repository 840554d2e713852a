package store

import (
	"context"
	"fmt"

	"github.com/deebya/codetutor/ent"
	"github.com/deebya/codetutor/ent/achievement"
	"github.com/deebya/codetutor/ent/progressrecord"
	"github.com/deebya/codetutor/ent/quizresult"
	"github.com/deebya/codetutor/ent/submission"
)

// deleteUserRows removes every learner-owned row for userID inside tx.
func deleteUserRows(ctx context.Context, tx *ent.Tx, userID string) error {
	if _, err := tx.ProgressRecord.Delete().
		Where(progressrecord.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}
	if _, err := tx.QuizResult.Delete().
		Where(quizresult.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete quiz history: %w", err)
	}
	if _, err := tx.Submission.Delete().
		Where(submission.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete submissions: %w", err)
	}
	if _, err := tx.Achievement.Delete().
		Where(achievement.UserID(userID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete achievements: %w", err)
	}
	return nil
}
