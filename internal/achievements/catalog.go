package achievements

import "fmt"

// Category groups achievements for display.
type Category string

const (
	CategoryLearning    Category = "learning"
	CategoryQuiz        Category = "quiz"
	CategoryPractice    Category = "practice"
	CategoryConsistency Category = "consistency"
	CategoryMastery     Category = "mastery"
)

// Definition is one achievement in the catalog. Unlocked is a pure
// predicate over a learner summary, so evaluation is deterministic and
// side-effect free.
type Definition struct {
	Key         string
	Name        string
	Description string
	Category    Category
	Points      int
	Unlocked    func(Summary) bool
}

// Catalog is the fixed set of global achievements, in display order.
// Language mastery awards are generated per language and are not
// listed here.
var Catalog = []Definition{
	{
		Key:         "first_topic",
		Name:        "First Steps",
		Description: "Complete your first topic",
		Category:    CategoryLearning,
		Points:      10,
		Unlocked:    func(s Summary) bool { return s.TopicsCompleted >= 1 },
	},
	{
		Key:         "topic_explorer",
		Name:        "Explorer",
		Description: "Complete 5 topics",
		Category:    CategoryLearning,
		Points:      25,
		Unlocked:    func(s Summary) bool { return s.TopicsCompleted >= 5 },
	},
	{
		Key:         "dedicated_learner",
		Name:        "Dedicated Learner",
		Description: "Complete 25 topics",
		Category:    CategoryLearning,
		Points:      100,
		Unlocked:    func(s Summary) bool { return s.TopicsCompleted >= 25 },
	},
	{
		Key:         "first_quiz",
		Name:        "Quiz Taker",
		Description: "Attempt your first quiz",
		Category:    CategoryQuiz,
		Points:      10,
		Unlocked:    func(s Summary) bool { return s.QuizAttempts >= 1 },
	},
	{
		Key:         "perfect_quiz",
		Name:        "Perfectionist",
		Description: "Score 100% on a quiz",
		Category:    CategoryQuiz,
		Points:      50,
		Unlocked:    func(s Summary) bool { return s.PerfectQuizzes >= 1 },
	},
	{
		Key:         "quiz_veteran",
		Name:        "Quiz Veteran",
		Description: "Pass 10 quizzes",
		Category:    CategoryQuiz,
		Points:      100,
		Unlocked:    func(s Summary) bool { return s.QuizzesPassed >= 10 },
	},
	{
		Key:         "first_run",
		Name:        "Hello, World",
		Description: "Run your first program",
		Category:    CategoryPractice,
		Points:      10,
		Unlocked:    func(s Summary) bool { return s.Submissions >= 1 },
	},
	{
		Key:         "code_machine",
		Name:        "Code Machine",
		Description: "Run 100 programs",
		Category:    CategoryPractice,
		Points:      100,
		Unlocked:    func(s Summary) bool { return s.Submissions >= 100 },
	},
	{
		Key:         "streak_3",
		Name:        "Warming Up",
		Description: "Learn 3 days in a row",
		Category:    CategoryConsistency,
		Points:      25,
		Unlocked:    func(s Summary) bool { return s.LongestStreak >= 3 },
	},
	{
		Key:         "streak_7",
		Name:        "Week Streak",
		Description: "Learn 7 days in a row",
		Category:    CategoryConsistency,
		Points:      100,
		Unlocked:    func(s Summary) bool { return s.LongestStreak >= 7 },
	},
	{
		Key:         "streak_30",
		Name:        "Unstoppable",
		Description: "Learn 30 days in a row",
		Category:    CategoryConsistency,
		Points:      250,
		Unlocked:    func(s Summary) bool { return s.LongestStreak >= 30 },
	},
}

// masteryPoints is the award for completing every topic in a language.
const masteryPoints = 500

// masteryDefinition builds the per-language mastery award.
func masteryDefinition(language string) Definition {
	return Definition{
		Key:         fmt.Sprintf("%s_master", language),
		Name:        fmt.Sprintf("%s Master", titleCase(language)),
		Description: fmt.Sprintf("Complete every %s topic", language),
		Category:    CategoryMastery,
		Points:      masteryPoints,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
