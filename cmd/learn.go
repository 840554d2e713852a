package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/deebya/codetutor/internal/content"
	"github.com/deebya/codetutor/internal/progress"
)

var learnCmd = &cobra.Command{
	Use:   "learn <language> <topic>",
	Short: "Read a topic and record the visit",
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

		start := time.Now()
		printTopic(topic)
		fmt.Print("\nPress Enter when you're finished reading...")
		elapsed := readDuration(cmd.InOrStdin(), start)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		completion, _ := cmd.Flags().GetFloat64("completion")
		svc := progress.NewService(st, lib, logger)
		rec, unlocked, err := svc.RecordTopicAccess(cmd.Context(),
			settings.User, lang, topicID, completion, elapsed)
		if err != nil {
			return err
		}

		fmt.Printf("\nProgress: %.0f%%", rec.Completion)
		if rec.Completed {
			fmt.Print(" (completed)")
		}
		fmt.Println()
		printUnlocked(unlocked)
		return nil
	},
	Args: cobra.ExactArgs(2),
}

func init() {
	learnCmd.Flags().Float64("completion", 100, "Completion percentage to record for the visit")
}

// readDuration blocks until the reader delivers a line or closes, then
// returns the time elapsed since start. The recorded study time covers
// the span the topic was actually on screen.
func readDuration(r io.Reader, start time.Time) time.Duration {
	_, _ = bufio.NewReader(r).ReadString('\n')
	return time.Since(start)
}

func printTopic(topic *content.Topic) {
	fmt.Printf("# %s\n\n%s\n", topic.Title, topic.Content)

	for _, sub := range topic.Subtopics {
		fmt.Printf("\n## %s\n\n%s\n", sub.Title, sub.Content)
	}
	for _, ex := range topic.Examples {
		fmt.Printf("\n## Example: %s\n\n%s\n", ex.Title, indent(ex.Code))
		if ex.Output != "" {
			fmt.Printf("\nOutput:\n%s\n", indent(ex.Output))
		}
		if ex.Explanation != "" {
			fmt.Printf("\n%s\n", ex.Explanation)
		}
	}
	for _, exr := range topic.Exercises {
		fmt.Printf("\n## Exercise: %s\n\n%s\n", exr.Title, exr.Description)
		if exr.StarterCode != "" {
			fmt.Printf("\nStarter code:\n%s\n", indent(exr.StarterCode))
		}
	}
	if topic.Quiz != nil {
		fmt.Printf("\nThis topic has a quiz (%d questions). Take it with: codetutor quiz\n", len(topic.Quiz.Questions))
	}
}
