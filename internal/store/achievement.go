package store

import (
	"context"
	"fmt"
	"time"

	"github.com/deebya/codetutor/ent"
	"github.com/deebya/codetutor/ent/achievement"
)

// achievementRepo implements AchievementRepo using the ent client.
type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Award(ctx context.Context, a AchievementRecord) (bool, error) {
	held, err := r.client.Achievement.Query().
		Where(
			achievement.UserID(a.UserID),
			achievement.Key(a.Key),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check achievement: %w", err)
	}
	if held {
		return false, nil
	}

	unlocked := a.UnlockedAt
	if unlocked.IsZero() {
		unlocked = time.Now()
	}

	builder := r.client.Achievement.Create().
		SetUserID(a.UserID).
		SetKey(a.Key).
		SetName(a.Name).
		SetDescription(a.Description).
		SetCategory(a.Category).
		SetPoints(a.Points).
		SetUnlockedAt(unlocked)
	if a.Language != "" {
		builder = builder.SetLanguage(a.Language)
	}

	if _, err := builder.Save(ctx); err != nil {
		// The unique (user_id, key) index backstops concurrent awards.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("save achievement: %w", err)
	}
	return true, nil
}

func (r *achievementRepo) List(ctx context.Context, userID string) ([]AchievementRecord, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Order(ent.Desc(achievement.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	records := make([]AchievementRecord, len(rows))
	for i, a := range rows {
		records[i] = AchievementRecord{
			UserID:      a.UserID,
			Key:         a.Key,
			Name:        a.Name,
			Description: a.Description,
			Category:    a.Category,
			Points:      a.Points,
			Language:    a.Language,
			UnlockedAt:  a.UnlockedAt,
		}
	}
	return records, nil
}

func (r *achievementRepo) UnlockedKeys(ctx context.Context, userID string) (map[string]bool, error) {
	keys, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Select(achievement.FieldKey).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievement keys: %w", err)
	}

	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set, nil
}
