// Package quiz grades answers against a topic's question set. Grading
// is pure and deterministic so results can be replayed from stored
// answer maps.
package quiz

import (
	"strconv"
	"strings"

	"github.com/deebya/codetutor/internal/content"
)

// DefaultPassingScore applies when a quiz does not set its own
// threshold.
const DefaultPassingScore = 70.0

// QuestionFeedback explains how one question was graded.
type QuestionFeedback struct {
	QuestionID    string
	Correct       bool
	Answered      bool
	GivenAnswer   string
	CorrectAnswer string
	Explanation   string
	PointsEarned  float64
	PointsMax     float64
}

// Result is the outcome of grading one quiz attempt.
type Result struct {
	Score      float64
	MaxScore   float64
	Percentage float64
	Passed     bool
	Feedback   []QuestionFeedback
}

// PassingScore returns the effective threshold for the quiz. Zero
// means the document left passing_score unset, since the content
// schema rejects an explicit zero.
func PassingScore(qz *content.Quiz) float64 {
	if qz.PassingScore > 0 {
		return qz.PassingScore
	}
	return DefaultPassingScore
}

// Grade scores the given answers against the quiz. answers maps
// question ID to the learner's raw input; missing or blank entries
// count as unanswered and earn zero. Feedback is returned in question
// order regardless of answer-map iteration order.
func Grade(qz *content.Quiz, answers map[string]string) Result {
	res := Result{
		Feedback: make([]QuestionFeedback, 0, len(qz.Questions)),
	}

	for i := range qz.Questions {
		q := &qz.Questions[i]
		max := q.PointValue()
		res.MaxScore += max

		given := strings.TrimSpace(answers[q.ID])
		fb := QuestionFeedback{
			QuestionID:    q.ID,
			Answered:      given != "",
			GivenAnswer:   given,
			CorrectAnswer: correctAnswerText(q),
			Explanation:   q.Explanation,
			PointsMax:     max,
		}
		if fb.Answered && checkAnswer(given, q) {
			fb.Correct = true
			fb.PointsEarned = max
			res.Score += max
		}
		res.Feedback = append(res.Feedback, fb)
	}

	if res.MaxScore > 0 {
		res.Percentage = res.Score / res.MaxScore * 100
	}
	res.Passed = res.Percentage >= PassingScore(qz)
	return res
}

// checkAnswer compares the learner's input against the correct answer.
//
// Choice questions accept the 1-based option index or the option text,
// case-insensitively. Text questions compare after trimming, collapsing
// internal whitespace, and lowercasing.
func checkAnswer(given string, q *content.QuizQuestion) bool {
	if q.Type.IsChoice() {
		return checkChoice(given, q)
	}
	return normalizeText(given) == normalizeText(q.AnswerText)
}

func checkChoice(given string, q *content.QuizQuestion) bool {
	correct, ok := q.CorrectOption()
	if !ok {
		return false
	}

	// Numeric input selects by 1-based index only while it is in range.
	// Anything else falls through to text matching, so options whose
	// text is itself a number stay answerable.
	if idx, err := strconv.Atoi(given); err == nil && idx >= 1 && idx <= len(q.Options) {
		return idx == q.Answer
	}

	// Match by option text (case-insensitive).
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(correct))
}

// normalizeText lowercases and collapses all runs of whitespace to a
// single space, so formatting differences in code answers don't count
// against the learner.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func correctAnswerText(q *content.QuizQuestion) string {
	if opt, ok := q.CorrectOption(); ok {
		return opt
	}
	return q.AnswerText
}

// Questions returns the quiz's questions with answer keys stripped, for
// presenting to the learner. The original quiz is not modified.
func Questions(qz *content.Quiz) []content.QuizQuestion {
	out := make([]content.QuizQuestion, len(qz.Questions))
	copy(out, qz.Questions)
	for i := range out {
		out[i].Answer = 0
		out[i].AnswerText = ""
		out[i].Explanation = ""
	}
	return out
}
