package quiz

import (
	"testing"

	"github.com/deebya/codetutor/internal/content"
)

func sampleQuiz() *content.Quiz {
	return &content.Quiz{
		PassingScore: 70,
		Questions: []content.QuizQuestion{
			{
				ID:      "q1",
				Prompt:  "Which keyword defines a function?",
				Type:    content.TypeMultipleChoice,
				Options: []string{"func", "def", "fn"},
				Answer:  2,
				Points:  2,
			},
			{
				ID:      "q2",
				Prompt:  "Lists are mutable.",
				Type:    content.TypeTrueFalse,
				Options: []string{"True", "False"},
				Answer:  1,
			},
			{
				ID:         "q3",
				Prompt:     "Complete: ___('hi')",
				Type:       content.TypeCodeCompletion,
				AnswerText: "print",
			},
		},
	}
}

func TestGradeAllCorrect(t *testing.T) {
	res := Grade(sampleQuiz(), map[string]string{
		"q1": "2",    // by index
		"q2": "true", // by text, case-insensitive
		"q3": "print",
	})

	if res.Score != 4 || res.MaxScore != 4 {
		t.Errorf("score = %v/%v, want 4/4", res.Score, res.MaxScore)
	}
	if res.Percentage != 100 || !res.Passed {
		t.Errorf("percentage = %v passed = %v", res.Percentage, res.Passed)
	}
	for _, fb := range res.Feedback {
		if !fb.Correct {
			t.Errorf("question %s marked incorrect", fb.QuestionID)
		}
	}
}

func TestGradeAnswerMatching(t *testing.T) {
	tests := []struct {
		name    string
		qid     string
		answer  string
		correct bool
	}{
		{"choice by index", "q1", "2", true},
		{"choice by text", "q1", "DEF", true},
		{"choice wrong index", "q1", "1", false},
		{"choice wrong text", "q1", "func", false},
		{"choice out of range index", "q1", "9", false},
		{"text exact", "q3", "print", true},
		{"text padded and cased", "q3", "  Print  ", true},
		{"text collapsed whitespace", "q3", "pri nt", false},
		{"text wrong", "q3", "puts", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Grade(sampleQuiz(), map[string]string{tt.qid: tt.answer})
			var fb *QuestionFeedback
			for i := range res.Feedback {
				if res.Feedback[i].QuestionID == tt.qid {
					fb = &res.Feedback[i]
				}
			}
			if fb == nil {
				t.Fatalf("no feedback for %s", tt.qid)
			}
			if fb.Correct != tt.correct {
				t.Errorf("correct = %v, want %v", fb.Correct, tt.correct)
			}
		})
	}
}

func TestGradeChoiceNumericOptionTexts(t *testing.T) {
	qz := &content.Quiz{Questions: []content.QuizQuestion{{
		ID:      "q1",
		Prompt:  "What is 3 + 5?",
		Type:    content.TypeMultipleChoice,
		Options: []string{"6", "9", "8"},
		Answer:  3,
	}}}

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"correct option text outside index range", "8", true},
		{"in-range number is an index, not text", "3", true},
		{"wrong option text", "9", false},
		{"wrong index", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Grade(qz, map[string]string{"q1": tt.answer})
			if res.Feedback[0].Correct != tt.correct {
				t.Errorf("answer %q graded %v, want %v",
					tt.answer, res.Feedback[0].Correct, tt.correct)
			}
		})
	}
}

func TestGradeNormalizedCodeAnswer(t *testing.T) {
	qz := &content.Quiz{Questions: []content.QuizQuestion{{
		ID:         "q1",
		Prompt:     "Write the loop header",
		Type:       content.TypeCodeCompletion,
		AnswerText: "for i in range(10):",
	}}}

	res := Grade(qz, map[string]string{"q1": "  FOR  i   in range(10):  "})
	if !res.Feedback[0].Correct {
		t.Error("whitespace and case differences should not fail the answer")
	}
}

func TestGradeUnansweredCountsZero(t *testing.T) {
	res := Grade(sampleQuiz(), map[string]string{"q1": "2"})

	if res.Score != 2 {
		t.Errorf("score = %v, want 2", res.Score)
	}
	for _, fb := range res.Feedback {
		if fb.QuestionID == "q1" {
			continue
		}
		if fb.Answered || fb.Correct || fb.PointsEarned != 0 {
			t.Errorf("unanswered %s = %+v", fb.QuestionID, fb)
		}
	}
}

func TestGradePassThreshold(t *testing.T) {
	// q1 is worth 2 of 4 points: 50%, below the quiz's 70 threshold.
	res := Grade(sampleQuiz(), map[string]string{"q1": "def"})
	if res.Passed {
		t.Errorf("passed at %v%%, threshold 70", res.Percentage)
	}

	// q1 + q2 is 3 of 4: 75%.
	res = Grade(sampleQuiz(), map[string]string{"q1": "def", "q2": "1"})
	if !res.Passed {
		t.Errorf("failed at %v%%, threshold 70", res.Percentage)
	}
}

func TestPassingScoreDefault(t *testing.T) {
	if got := PassingScore(&content.Quiz{}); got != DefaultPassingScore {
		t.Errorf("default threshold = %v", got)
	}
	if got := PassingScore(&content.Quiz{PassingScore: 90}); got != 90 {
		t.Errorf("explicit threshold = %v", got)
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	res := Grade(&content.Quiz{}, nil)
	if res.Percentage != 0 || res.Score != 0 {
		t.Errorf("empty quiz result = %+v", res)
	}
}

func TestQuestionsStripAnswers(t *testing.T) {
	qz := sampleQuiz()
	stripped := Questions(qz)

	for i, q := range stripped {
		if q.Answer != 0 || q.AnswerText != "" || q.Explanation != "" {
			t.Errorf("question %d leaks answer data: %+v", i, q)
		}
	}

	// The source quiz keeps its answer keys.
	if qz.Questions[0].Answer != 2 || qz.Questions[2].AnswerText != "print" {
		t.Error("stripping modified the source quiz")
	}
}

func TestGradeFeedbackOrderIsDeterministic(t *testing.T) {
	res := Grade(sampleQuiz(), map[string]string{"q3": "x", "q1": "1", "q2": "2"})

	want := []string{"q1", "q2", "q3"}
	for i, fb := range res.Feedback {
		if fb.QuestionID != want[i] {
			t.Fatalf("feedback order = %v at %d, want %v", fb.QuestionID, i, want[i])
		}
	}
}
