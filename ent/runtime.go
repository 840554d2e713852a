// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/deebya/codetutor/ent/achievement"
	"github.com/deebya/codetutor/ent/progressrecord"
	"github.com/deebya/codetutor/ent/quizresult"
	"github.com/deebya/codetutor/ent/schema"
	"github.com/deebya/codetutor/ent/submission"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUserID is the schema descriptor for user_id field.
	achievementDescUserID := achievementFields[0].Descriptor()
	// achievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievement.UserIDValidator = achievementDescUserID.Validators[0].(func(string) error)
	// achievementDescKey is the schema descriptor for key field.
	achievementDescKey := achievementFields[1].Descriptor()
	// achievement.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	achievement.KeyValidator = achievementDescKey.Validators[0].(func(string) error)
	// achievementDescName is the schema descriptor for name field.
	achievementDescName := achievementFields[2].Descriptor()
	// achievement.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievement.NameValidator = achievementDescName.Validators[0].(func(string) error)
	// achievementDescDescription is the schema descriptor for description field.
	achievementDescDescription := achievementFields[3].Descriptor()
	// achievement.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	achievement.DescriptionValidator = achievementDescDescription.Validators[0].(func(string) error)
	// achievementDescCategory is the schema descriptor for category field.
	achievementDescCategory := achievementFields[4].Descriptor()
	// achievement.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	achievement.CategoryValidator = achievementDescCategory.Validators[0].(func(string) error)
	// achievementDescPoints is the schema descriptor for points field.
	achievementDescPoints := achievementFields[5].Descriptor()
	// achievement.DefaultPoints holds the default value on creation for the points field.
	achievement.DefaultPoints = achievementDescPoints.Default.(int)
	// achievementDescUnlockedAt is the schema descriptor for unlocked_at field.
	achievementDescUnlockedAt := achievementFields[7].Descriptor()
	// achievement.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	achievement.DefaultUnlockedAt = achievementDescUnlockedAt.Default.(func() time.Time)
	progressrecordMixin := schema.ProgressRecord{}.Mixin()
	progressrecordMixinFields0 := progressrecordMixin[0].Fields()
	_ = progressrecordMixinFields0
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescCreatedAt is the schema descriptor for created_at field.
	progressrecordDescCreatedAt := progressrecordMixinFields0[0].Descriptor()
	// progressrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	progressrecord.DefaultCreatedAt = progressrecordDescCreatedAt.Default.(func() time.Time)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordMixinFields0[1].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// progressrecordDescUserID is the schema descriptor for user_id field.
	progressrecordDescUserID := progressrecordFields[0].Descriptor()
	// progressrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progressrecord.UserIDValidator = progressrecordDescUserID.Validators[0].(func(string) error)
	// progressrecordDescLanguage is the schema descriptor for language field.
	progressrecordDescLanguage := progressrecordFields[1].Descriptor()
	// progressrecord.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	progressrecord.LanguageValidator = progressrecordDescLanguage.Validators[0].(func(string) error)
	// progressrecordDescTopicID is the schema descriptor for topic_id field.
	progressrecordDescTopicID := progressrecordFields[2].Descriptor()
	// progressrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	progressrecord.TopicIDValidator = progressrecordDescTopicID.Validators[0].(func(string) error)
	// progressrecordDescStatus is the schema descriptor for status field.
	progressrecordDescStatus := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultStatus holds the default value on creation for the status field.
	progressrecord.DefaultStatus = progressrecordDescStatus.Default.(string)
	// progressrecordDescCompletion is the schema descriptor for completion field.
	progressrecordDescCompletion := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultCompletion holds the default value on creation for the completion field.
	progressrecord.DefaultCompletion = progressrecordDescCompletion.Default.(float64)
	// progressrecordDescBestScore is the schema descriptor for best_score field.
	progressrecordDescBestScore := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultBestScore holds the default value on creation for the best_score field.
	progressrecord.DefaultBestScore = progressrecordDescBestScore.Default.(float64)
	// progressrecordDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	progressrecordDescTimeSpentSecs := progressrecordFields[6].Descriptor()
	// progressrecord.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	progressrecord.DefaultTimeSpentSecs = progressrecordDescTimeSpentSecs.Default.(int)
	// progressrecordDescAttempts is the schema descriptor for attempts field.
	progressrecordDescAttempts := progressrecordFields[7].Descriptor()
	// progressrecord.DefaultAttempts holds the default value on creation for the attempts field.
	progressrecord.DefaultAttempts = progressrecordDescAttempts.Default.(int)
	// progressrecordDescCompleted is the schema descriptor for completed field.
	progressrecordDescCompleted := progressrecordFields[8].Descriptor()
	// progressrecord.DefaultCompleted holds the default value on creation for the completed field.
	progressrecord.DefaultCompleted = progressrecordDescCompleted.Default.(bool)
	quizresultMixin := schema.QuizResult{}.Mixin()
	quizresultMixinFields0 := quizresultMixin[0].Fields()
	_ = quizresultMixinFields0
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescCreatedAt is the schema descriptor for created_at field.
	quizresultDescCreatedAt := quizresultMixinFields0[0].Descriptor()
	// quizresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizresult.DefaultCreatedAt = quizresultDescCreatedAt.Default.(func() time.Time)
	// quizresultDescUpdatedAt is the schema descriptor for updated_at field.
	quizresultDescUpdatedAt := quizresultMixinFields0[1].Descriptor()
	// quizresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quizresult.DefaultUpdatedAt = quizresultDescUpdatedAt.Default.(func() time.Time)
	// quizresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quizresult.UpdateDefaultUpdatedAt = quizresultDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quizresultDescUserID is the schema descriptor for user_id field.
	quizresultDescUserID := quizresultFields[0].Descriptor()
	// quizresult.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizresult.UserIDValidator = quizresultDescUserID.Validators[0].(func(string) error)
	// quizresultDescLanguage is the schema descriptor for language field.
	quizresultDescLanguage := quizresultFields[1].Descriptor()
	// quizresult.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	quizresult.LanguageValidator = quizresultDescLanguage.Validators[0].(func(string) error)
	// quizresultDescTopicID is the schema descriptor for topic_id field.
	quizresultDescTopicID := quizresultFields[2].Descriptor()
	// quizresult.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	quizresult.TopicIDValidator = quizresultDescTopicID.Validators[0].(func(string) error)
	// quizresultDescAttempt is the schema descriptor for attempt field.
	quizresultDescAttempt := quizresultFields[7].Descriptor()
	// quizresult.DefaultAttempt holds the default value on creation for the attempt field.
	quizresult.DefaultAttempt = quizresultDescAttempt.Default.(int)
	// quizresultDescDurationSecs is the schema descriptor for duration_secs field.
	quizresultDescDurationSecs := quizresultFields[8].Descriptor()
	// quizresult.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizresult.DefaultDurationSecs = quizresultDescDurationSecs.Default.(int)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields0[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescUpdatedAt is the schema descriptor for updated_at field.
	submissionDescUpdatedAt := submissionMixinFields0[1].Descriptor()
	// submission.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submission.DefaultUpdatedAt = submissionDescUpdatedAt.Default.(func() time.Time)
	// submission.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submission.UpdateDefaultUpdatedAt = submissionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submissionDescRunID is the schema descriptor for run_id field.
	submissionDescRunID := submissionFields[0].Descriptor()
	// submission.DefaultRunID holds the default value on creation for the run_id field.
	submission.DefaultRunID = submissionDescRunID.Default.(func() string)
	// submissionDescUserID is the schema descriptor for user_id field.
	submissionDescUserID := submissionFields[1].Descriptor()
	// submission.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	submission.UserIDValidator = submissionDescUserID.Validators[0].(func(string) error)
	// submissionDescLanguage is the schema descriptor for language field.
	submissionDescLanguage := submissionFields[2].Descriptor()
	// submission.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	submission.LanguageValidator = submissionDescLanguage.Validators[0].(func(string) error)
	// submissionDescCode is the schema descriptor for code field.
	submissionDescCode := submissionFields[4].Descriptor()
	// submission.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	submission.CodeValidator = submissionDescCode.Validators[0].(func(string) error)
	// submissionDescStatus is the schema descriptor for status field.
	submissionDescStatus := submissionFields[5].Descriptor()
	// submission.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	submission.StatusValidator = submissionDescStatus.Validators[0].(func(string) error)
	// submissionDescDurationMs is the schema descriptor for duration_ms field.
	submissionDescDurationMs := submissionFields[8].Descriptor()
	// submission.DefaultDurationMs holds the default value on creation for the duration_ms field.
	submission.DefaultDurationMs = submissionDescDurationMs.Default.(int64)
}
