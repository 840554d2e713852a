package content

import "sort"

// Level represents a tutorial difficulty level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// QuestionType identifies how a quiz question is answered and graded.
type QuestionType string

const (
	// TypeMultipleChoice is graded by exact option match.
	TypeMultipleChoice QuestionType = "multiple_choice"
	// TypeTrueFalse is multiple choice restricted to two options.
	TypeTrueFalse QuestionType = "true_false"
	// TypeFillBlank is graded by normalized string comparison.
	TypeFillBlank QuestionType = "fill_blank"
	// TypeCodeCompletion is graded by normalized string comparison.
	TypeCodeCompletion QuestionType = "code_completion"
)

// IsChoice reports whether the type is answered by picking an option.
func (t QuestionType) IsChoice() bool {
	return t == TypeMultipleChoice || t == TypeTrueFalse
}

// QuizQuestion is a single question within a topic's quiz.
//
// For choice types, Answer is the 1-based index of the correct option.
// For text types, AnswerText holds the canonical answer.
type QuizQuestion struct {
	ID          string       `json:"id"`
	Prompt      string       `json:"prompt"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
	Answer      int          `json:"answer,omitempty"`
	AnswerText  string       `json:"answer_text,omitempty"`
	CodeSnippet string       `json:"code_snippet,omitempty"`
	Explanation string       `json:"explanation,omitempty"`
	Points      float64      `json:"points,omitempty"`
}

// PointValue returns the question's point value, defaulting to 1.
func (q *QuizQuestion) PointValue() float64 {
	if q.Points > 0 {
		return q.Points
	}
	return 1
}

// CorrectOption returns the option text the Answer reference resolves
// to. ok is false if the reference is out of range or the question is
// not a choice type.
func (q *QuizQuestion) CorrectOption() (string, bool) {
	if !q.Type.IsChoice() {
		return "", false
	}
	if q.Answer < 1 || q.Answer > len(q.Options) {
		return "", false
	}
	return q.Options[q.Answer-1], true
}

// Quiz is the question set attached to a topic.
type Quiz struct {
	PassingScore  float64        `json:"passing_score,omitempty"`
	TimeLimitMins int            `json:"time_limit,omitempty"`
	Questions     []QuizQuestion `json:"questions"`
}

// TotalPoints returns the points available across all questions.
func (qz *Quiz) TotalPoints() float64 {
	var total float64
	for i := range qz.Questions {
		total += qz.Questions[i].PointValue()
	}
	return total
}

// Example is a runnable code sample with explanation.
type Example struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Explanation string `json:"explanation,omitempty"`
	Output      string `json:"output,omitempty"`
}

// Exercise is a programming task with starter code and a reference
// solution.
type Exercise struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	StarterCode string   `json:"starter_code,omitempty"`
	Solution    string   `json:"solution,omitempty"`
	Difficulty  Level    `json:"difficulty,omitempty"`
	Hints       []string `json:"hints,omitempty"`
	Points      int      `json:"points,omitempty"`
}

// Subtopic is a named content section within a topic.
type Subtopic struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Topic is a unit of tutorial content within a language.
type Topic struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Content          string     `json:"content"`
	Order            int        `json:"order,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes,omitempty"`
	Subtopics        []Subtopic `json:"subtopics,omitempty"`
	Examples         []Example  `json:"examples,omitempty"`
	Exercises        []Exercise `json:"exercises,omitempty"`
	Quiz             *Quiz      `json:"quiz,omitempty"`
}

// Tutorial is a full language course: an ordered list of topics loaded
// from one document. Immutable once loaded.
type Tutorial struct {
	Language    string  `json:"language"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Level       Level   `json:"level,omitempty"`
	Topics      []Topic `json:"topics"`
}

// Topic returns the topic with the given id, or nil.
func (t *Tutorial) Topic(id string) *Topic {
	for i := range t.Topics {
		if t.Topics[i].ID == id {
			return &t.Topics[i]
		}
	}
	return nil
}

// OrderedTopics returns the topics sorted by their order field, with
// document position as the tiebreaker.
func (t *Tutorial) OrderedTopics() []Topic {
	out := make([]Topic, len(t.Topics))
	copy(out, t.Topics)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
