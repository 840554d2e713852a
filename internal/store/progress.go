package store

import (
	"context"
	"fmt"
	"time"

	"github.com/deebya/codetutor/ent"
	"github.com/deebya/codetutor/ent/progressrecord"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Upsert(ctx context.Context, u ProgressUpdate) (*ProgressRecord, error) {
	if u.UserID == "" || u.Language == "" || u.TopicID == "" {
		return nil, fmt.Errorf("progress upsert: user, language, and topic are required")
	}
	accessed := u.AccessedAt
	if accessed.IsZero() {
		accessed = time.Now()
	}

	existing, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(u.UserID),
			progressrecord.Language(u.Language),
			progressrecord.TopicID(u.TopicID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query progress: %w", err)
	}

	if existing == nil {
		created, err := r.client.ProgressRecord.Create().
			SetUserID(u.UserID).
			SetLanguage(u.Language).
			SetTopicID(u.TopicID).
			SetCompletion(u.Completion).
			SetBestScore(u.Score).
			SetTimeSpentSecs(maxInt(u.AddSecs, 0)).
			SetAttempts(boolToInt(u.AddAttempt)).
			SetCompleted(u.Completion >= 100).
			SetStatus(statusFor(u.Completion)).
			SetLastAccessed(accessed).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create progress: %w", err)
		}
		return entProgressToRecord(created), nil
	}

	// Monotonic merge: time accumulates, completion and best score only
	// move up, last-accessed only moves forward.
	upd := existing.Update().
		SetTimeSpentSecs(existing.TimeSpentSecs + maxInt(u.AddSecs, 0))
	if u.Completion > existing.Completion {
		upd.SetCompletion(u.Completion)
		upd.SetCompleted(u.Completion >= 100)
		upd.SetStatus(statusFor(u.Completion))
	}
	if u.Score > existing.BestScore {
		upd.SetBestScore(u.Score)
	}
	if u.AddAttempt {
		upd.SetAttempts(existing.Attempts + 1)
	}
	if accessed.After(existing.LastAccessed) {
		upd.SetLastAccessed(accessed)
	}

	saved, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update progress: %w", err)
	}
	return entProgressToRecord(saved), nil
}

func (r *progressRepo) Get(ctx context.Context, userID, language, topicID string) (*ProgressRecord, error) {
	p, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.UserID(userID),
			progressrecord.Language(language),
			progressrecord.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return entProgressToRecord(p), nil
}

func (r *progressRepo) List(ctx context.Context, userID, language string) ([]ProgressRecord, error) {
	query := r.client.ProgressRecord.Query().
		Where(progressrecord.UserID(userID)).
		Order(ent.Desc(progressrecord.FieldLastAccessed))
	if language != "" {
		query = query.Where(progressrecord.Language(language))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	records := make([]ProgressRecord, len(rows))
	for i, p := range rows {
		records[i] = *entProgressToRecord(p)
	}
	return records, nil
}

func entProgressToRecord(p *ent.ProgressRecord) *ProgressRecord {
	return &ProgressRecord{
		UserID:        p.UserID,
		Language:      p.Language,
		TopicID:       p.TopicID,
		Status:        p.Status,
		Completion:    p.Completion,
		BestScore:     p.BestScore,
		TimeSpentSecs: p.TimeSpentSecs,
		Attempts:      p.Attempts,
		Completed:     p.Completed,
		LastAccessed:  p.LastAccessed,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func statusFor(completion float64) string {
	if completion >= 100 {
		return "completed"
	}
	return "in_progress"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
