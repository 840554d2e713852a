package store

import (
	"context"
	"fmt"
	"time"

	"github.com/deebya/codetutor/ent"
	"github.com/deebya/codetutor/ent/quizresult"
)

// quizRepo implements QuizRepo using the ent client.
type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Append(ctx context.Context, res QuizResultRecord) (*QuizResultRecord, error) {
	prior, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(res.UserID),
			quizresult.Language(res.Language),
			quizresult.TopicID(res.TopicID),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count prior attempts: %w", err)
	}

	ts := res.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	builder := r.client.QuizResult.Create().
		SetUserID(res.UserID).
		SetLanguage(res.Language).
		SetTopicID(res.TopicID).
		SetScore(res.Score).
		SetMaxScore(res.MaxScore).
		SetPercentage(res.Percentage).
		SetPassed(res.Passed).
		SetAttempt(prior + 1).
		SetDurationSecs(res.DurationSecs).
		SetCreatedAt(ts)
	if len(res.Answers) > 0 {
		builder = builder.SetAnswers(res.Answers)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}
	return entQuizToRecord(saved), nil
}

func (r *quizRepo) History(ctx context.Context, userID, language string, limit int) ([]QuizResultRecord, error) {
	query := r.client.QuizResult.Query().
		Where(quizresult.UserID(userID)).
		Order(ent.Desc(quizresult.FieldCreatedAt))
	if language != "" {
		query = query.Where(quizresult.Language(language))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	records := make([]QuizResultRecord, len(rows))
	for i, q := range rows {
		records[i] = *entQuizToRecord(q)
	}
	return records, nil
}

func (r *quizRepo) Stats(ctx context.Context, userID, language string) (QuizStats, error) {
	rows, err := r.History(ctx, userID, language, 0)
	if err != nil {
		return QuizStats{}, err
	}
	if len(rows) == 0 {
		return QuizStats{}, nil
	}

	stats := QuizStats{TotalAttempts: len(rows)}
	var sum float64
	for _, q := range rows {
		sum += q.Percentage
		if q.Percentage > stats.BestScore {
			stats.BestScore = q.Percentage
		}
		if q.Passed {
			stats.Passed++
		}
	}
	stats.AverageScore = sum / float64(len(rows))
	return stats, nil
}

func entQuizToRecord(q *ent.QuizResult) *QuizResultRecord {
	return &QuizResultRecord{
		UserID:       q.UserID,
		Language:     q.Language,
		TopicID:      q.TopicID,
		Score:        q.Score,
		MaxScore:     q.MaxScore,
		Percentage:   q.Percentage,
		Passed:       q.Passed,
		Attempt:      q.Attempt,
		DurationSecs: q.DurationSecs,
		Answers:      q.Answers,
		Timestamp:    q.CreatedAt,
	}
}
