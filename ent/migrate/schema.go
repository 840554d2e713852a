// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "key", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_user_id_key",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
			{
				Name:    "achievement_category",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[5]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "in_progress"},
		{Name: "completion", Type: field.TypeFloat64, Default: 0},
		{Name: "best_score", Type: field.TypeFloat64, Default: 0},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "last_accessed", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_user_id_language_topic_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[3], ProgressRecordsColumns[4], ProgressRecordsColumns[5]},
			},
			{
				Name:    "progressrecord_user_id_language",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[3], ProgressRecordsColumns[4]},
			},
			{
				Name:    "progressrecord_status",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[6]},
			},
		},
	}
	// QuizResultsColumns holds the columns for the "quiz_results" table.
	QuizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "max_score", Type: field.TypeFloat64},
		{Name: "percentage", Type: field.TypeFloat64},
		{Name: "passed", Type: field.TypeBool},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
	}
	// QuizResultsTable holds the schema information for the "quiz_results" table.
	QuizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    QuizResultsColumns,
		PrimaryKey: []*schema.Column{QuizResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresult_user_id_language_topic_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[3], QuizResultsColumns[4], QuizResultsColumns[5]},
			},
			{
				Name:    "quizresult_passed",
				Unique:  false,
				Columns: []*schema.Column{QuizResultsColumns[9]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeString},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submission_user_id_language",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[4], SubmissionsColumns[5]},
			},
			{
				Name:    "submission_status",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		ProgressRecordsTable,
		QuizResultsTable,
		SubmissionsTable,
	}
)

func init() {
}
