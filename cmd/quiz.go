package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deebya/codetutor/internal/content"
	"github.com/deebya/codetutor/internal/progress"
	"github.com/deebya/codetutor/internal/quiz"
	"github.com/deebya/codetutor/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <language> <topic>",
	Short: "Take a topic's quiz",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, topicID := strings.ToLower(args[0]), args[1]

		lib, err := loadLibrary()
		if err != nil {
			return err
		}
		topic := lib.Topic(lang, topicID)
		if topic == nil {
			return fmt.Errorf("unknown topic %s/%s", lang, topicID)
		}
		if topic.Quiz == nil || len(topic.Quiz.Questions) == 0 {
			return fmt.Errorf("topic %s/%s has no quiz", lang, topicID)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		start := time.Now()
		answers := collectAnswers(topic.Quiz)
		result := quiz.Grade(topic.Quiz, answers)

		svc := progress.NewService(st, lib, logger)
		stored, unlocked, err := svc.RecordQuizResult(cmd.Context(),
			settings.User, lang, topicID, result, answers, time.Since(start))
		if err != nil {
			// Grading already happened; a storage failure should not
			// hide the result from the learner.
			logger.Warn("could not save quiz result", zap.Error(err))
			fmt.Fprintln(os.Stderr, "Warning: result could not be saved.")
		}

		printResult(topic.Quiz, result, stored)
		printUnlocked(unlocked)
		return nil
	},
}

// collectAnswers presents each question and reads the learner's input
// from stdin. Answer keys are stripped before display.
func collectAnswers(qz *content.Quiz) map[string]string {
	reader := bufio.NewReader(os.Stdin)
	answers := make(map[string]string, len(qz.Questions))

	for i, q := range quiz.Questions(qz) {
		fmt.Printf("\nQ%d. %s\n", i+1, q.Prompt)
		if q.CodeSnippet != "" {
			fmt.Printf("\n%s\n", indent(q.CodeSnippet))
		}
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		answers[q.ID] = strings.TrimSpace(line)
	}
	return answers
}

func printResult(qz *content.Quiz, result quiz.Result, stored *store.QuizResultRecord) {
	fmt.Printf("\nScore: %.0f/%.0f (%.0f%%)", result.Score, result.MaxScore, result.Percentage)
	if stored != nil {
		fmt.Printf("  attempt #%d", stored.Attempt)
	}
	fmt.Println()

	if result.Passed {
		fmt.Printf("Passed! (threshold %.0f%%)\n", quiz.PassingScore(qz))
	} else {
		fmt.Printf("Not passed (threshold %.0f%%). Try again!\n", quiz.PassingScore(qz))
	}

	for i, fb := range result.Feedback {
		if fb.Correct {
			continue
		}
		fmt.Printf("\nQ%d: ", i+1)
		if !fb.Answered {
			fmt.Print("not answered.")
		} else {
			fmt.Printf("%q is wrong.", fb.GivenAnswer)
		}
		fmt.Printf(" Correct answer: %s\n", fb.CorrectAnswer)
		if fb.Explanation != "" {
			fmt.Printf("    %s\n", fb.Explanation)
		}
	}
}

func printUnlocked(unlocked []store.AchievementRecord) {
	for _, a := range unlocked {
		fmt.Printf("\nAchievement unlocked: %s (+%d points) — %s\n", a.Name, a.Points, a.Description)
	}
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}
