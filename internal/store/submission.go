package store

import (
	"context"
	"fmt"

	"github.com/deebya/codetutor/ent"
	"github.com/deebya/codetutor/ent/submission"
)

// submissionRepo implements SubmissionRepo using the ent client.
type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) Append(ctx context.Context, rec SubmissionRecord) (string, error) {
	builder := r.client.Submission.Create().
		SetUserID(rec.UserID).
		SetLanguage(rec.Language).
		SetCode(rec.Code).
		SetStatus(rec.Status).
		SetDurationMs(rec.DurationMs)
	if rec.TopicID != "" {
		builder = builder.SetTopicID(rec.TopicID)
	}
	if rec.Output != "" {
		builder = builder.SetOutput(rec.Output)
	}
	if rec.ErrorOutput != "" {
		builder = builder.SetErrorOutput(rec.ErrorOutput)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("save submission: %w", err)
	}
	return saved.RunID, nil
}

func (r *submissionRepo) Recent(ctx context.Context, userID string, limit int) ([]SubmissionRecord, error) {
	query := r.client.Submission.Query().
		Where(submission.UserID(userID)).
		Order(ent.Desc(submission.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	records := make([]SubmissionRecord, len(rows))
	for i, s := range rows {
		records[i] = SubmissionRecord{
			RunID:       s.RunID,
			UserID:      s.UserID,
			Language:    s.Language,
			TopicID:     s.TopicID,
			Code:        s.Code,
			Status:      s.Status,
			Output:      s.Output,
			ErrorOutput: s.ErrorOutput,
			DurationMs:  s.DurationMs,
			Timestamp:   s.CreatedAt,
		}
	}
	return records, nil
}

func (r *submissionRepo) Stats(ctx context.Context, userID, language string) (SubmissionStats, error) {
	query := r.client.Submission.Query().
		Where(submission.UserID(userID))
	if language != "" {
		query = query.Where(submission.Language(language))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return SubmissionStats{}, fmt.Errorf("count submissions: %w", err)
	}
	if total == 0 {
		return SubmissionStats{}, nil
	}

	ok, err := query.Where(submission.Status("ok")).Count(ctx)
	if err != nil {
		return SubmissionStats{}, fmt.Errorf("count successful submissions: %w", err)
	}

	return SubmissionStats{
		Total:      total,
		Succeeded:  ok,
		SuccessPct: float64(ok) / float64(total) * 100,
	}, nil
}
