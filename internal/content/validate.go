package content

import (
	"fmt"
	"strings"
)

// FormatError reports everything wrong with a single tutorial document.
// Problems are collected rather than failing fast so an author can fix
// a file in one pass.
type FormatError struct {
	File     string
	Problems []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid tutorial document %s:\n  %s",
		e.File, strings.Join(e.Problems, "\n  "))
}

// validateTutorial performs all structural checks that the JSON Schema
// cannot express. Returns a combined error describing all problems
// found, or nil if valid.
func validateTutorial(t *Tutorial) []string {
	var errs []string

	topicIDs := make(map[string]bool, len(t.Topics))
	for i := range t.Topics {
		topic := &t.Topics[i]
		if topicIDs[topic.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", topic.ID))
		}
		topicIDs[topic.ID] = true

		errs = append(errs, validateTopic(topic)...)
	}

	return errs
}

func validateTopic(topic *Topic) []string {
	var errs []string

	subIDs := make(map[string]bool, len(topic.Subtopics))
	for _, sub := range topic.Subtopics {
		if subIDs[sub.ID] {
			errs = append(errs, fmt.Sprintf("topic %q: duplicate subtopic ID: %q", topic.ID, sub.ID))
		}
		subIDs[sub.ID] = true
	}

	exIDs := make(map[string]bool, len(topic.Exercises))
	for _, ex := range topic.Exercises {
		if exIDs[ex.ID] {
			errs = append(errs, fmt.Sprintf("topic %q: duplicate exercise ID: %q", topic.ID, ex.ID))
		}
		exIDs[ex.ID] = true
	}

	if topic.Quiz != nil {
		errs = append(errs, validateQuiz(topic.ID, topic.Quiz)...)
	}

	return errs
}

func validateQuiz(topicID string, qz *Quiz) []string {
	var errs []string

	if qz.PassingScore < 0 || qz.PassingScore > 100 {
		errs = append(errs, fmt.Sprintf("topic %q: passing score must be in [0, 100], got %v", topicID, qz.PassingScore))
	}

	qIDs := make(map[string]bool, len(qz.Questions))
	for i := range qz.Questions {
		q := &qz.Questions[i]
		prefix := fmt.Sprintf("topic %q question %q", topicID, q.ID)

		if qIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("topic %q: duplicate question ID: %q", topicID, q.ID))
		}
		qIDs[q.ID] = true

		switch {
		case q.Type.IsChoice():
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: choice questions need at least 2 options, got %d", prefix, len(q.Options)))
			}
			if q.Type == TypeTrueFalse && len(q.Options) != 2 {
				errs = append(errs, fmt.Sprintf("%s: true/false questions need exactly 2 options, got %d", prefix, len(q.Options)))
			}
			if q.Answer < 1 || q.Answer > len(q.Options) {
				errs = append(errs, fmt.Sprintf("%s: answer %d does not reference an option (1..%d)", prefix, q.Answer, len(q.Options)))
			}
		case q.Type == TypeFillBlank || q.Type == TypeCodeCompletion:
			if strings.TrimSpace(q.AnswerText) == "" {
				errs = append(errs, fmt.Sprintf("%s: text questions require answer_text", prefix))
			}
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown question type %q", prefix, q.Type))
		}
	}

	return errs
}
