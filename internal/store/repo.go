package store

import (
	"context"
	"time"
)

// ProgressRecord is the durable record of a user's interaction with a
// topic. Created on first interaction, updated afterwards, never
// silently deleted.
type ProgressRecord struct {
	UserID        string
	Language      string
	TopicID       string
	Status        string
	Completion    float64 // 0-100
	BestScore     float64 // best quiz percentage, 0-100
	TimeSpentSecs int
	Attempts      int
	Completed     bool
	LastAccessed  time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProgressUpdate carries the deltas for one interaction with a topic.
// Zero-valued fields leave the stored record unchanged.
type ProgressUpdate struct {
	UserID     string
	Language   string
	TopicID    string
	Completion float64 // new completion percentage (applied if higher)
	Score      float64 // quiz percentage (applied to BestScore if higher)
	AddSecs    int     // time spent in this interaction, added on
	AddAttempt bool    // count a quiz attempt
	AccessedAt time.Time
}

// ProgressRepo manages ProgressRecords with monotonic merge semantics:
// time-spent accumulates, best score and completion never decrease, and
// last-accessed only moves forward.
type ProgressRepo interface {
	// Upsert creates the record on first interaction or merges the
	// update into the existing one, and returns the stored state.
	Upsert(ctx context.Context, u ProgressUpdate) (*ProgressRecord, error)

	// Get returns the record for (user, language, topic), or nil if the
	// user has not interacted with the topic.
	Get(ctx context.Context, userID, language, topicID string) (*ProgressRecord, error)

	// List returns all records for a user, newest-accessed first.
	// language may be empty to list across languages.
	List(ctx context.Context, userID, language string) ([]ProgressRecord, error)
}

// QuizResultRecord is one graded quiz attempt.
type QuizResultRecord struct {
	UserID       string
	Language     string
	TopicID      string
	Score        float64
	MaxScore     float64
	Percentage   float64
	Passed       bool
	Attempt      int
	DurationSecs int
	Answers      map[string]string
	Timestamp    time.Time
}

// QuizStats aggregates a user's quiz history.
type QuizStats struct {
	TotalAttempts int
	Passed        int
	AverageScore  float64 // mean percentage
	BestScore     float64
}

// QuizRepo provides append-only access to quiz history.
type QuizRepo interface {
	// Append stores a result, assigning the next attempt number for the
	// topic, and returns the stored record.
	Append(ctx context.Context, r QuizResultRecord) (*QuizResultRecord, error)

	// History returns results newest first. language may be empty;
	// limit 0 means unlimited.
	History(ctx context.Context, userID, language string, limit int) ([]QuizResultRecord, error)

	// Stats aggregates over the user's history, optionally filtered by
	// language.
	Stats(ctx context.Context, userID, language string) (QuizStats, error)
}

// SubmissionRecord is one code-execution run.
type SubmissionRecord struct {
	RunID       string
	UserID      string
	Language    string
	TopicID     string
	Code        string
	Status      string // ok, error, or timeout
	Output      string
	ErrorOutput string
	DurationMs  int64
	Timestamp   time.Time
}

// SubmissionStats aggregates a user's execution history.
type SubmissionStats struct {
	Total      int
	Succeeded  int
	SuccessPct float64
}

// SubmissionRepo provides append-only access to code submissions.
type SubmissionRepo interface {
	// Append stores a run and returns its run id.
	Append(ctx context.Context, r SubmissionRecord) (string, error)

	// Recent returns the newest runs, limited to limit (0 = unlimited).
	Recent(ctx context.Context, userID string, limit int) ([]SubmissionRecord, error)

	// Stats aggregates over the user's runs, optionally filtered by
	// language.
	Stats(ctx context.Context, userID, language string) (SubmissionStats, error)
}

// AchievementRecord is an unlocked badge.
type AchievementRecord struct {
	UserID      string
	Key         string
	Name        string
	Description string
	Category    string
	Points      int
	Language    string
	UnlockedAt  time.Time
}

// AchievementRepo manages unlocked achievements.
type AchievementRepo interface {
	// Award inserts the achievement if the user does not already hold
	// it. Returns true if a new row was created.
	Award(ctx context.Context, a AchievementRecord) (bool, error)

	// List returns a user's achievements, newest first.
	List(ctx context.Context, userID string) ([]AchievementRecord, error)

	// UnlockedKeys returns the set of keys the user already holds.
	UnlockedKeys(ctx context.Context, userID string) (map[string]bool, error)
}
