package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/deebya/codetutor/internal/content"
	"github.com/deebya/codetutor/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats [language]",
	Short: "Show learning statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		language := ""
		if len(args) == 1 {
			language = args[0]
		}

		// Stats still work when the content dir is missing; totals are
		// just omitted.
		var lib *content.Library
		if l, err := loadLibrary(); err == nil {
			lib = l
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progress.NewService(st, lib, logger)
		rep, err := svc.Report(cmd.Context(), settings.User, language)
		if err != nil {
			return err
		}

		fmt.Printf("Learner: %s\n\n", rep.UserID)
		if len(rep.Languages) == 0 {
			fmt.Println("No activity yet. Start with: codetutor topics")
			return nil
		}

		for _, lr := range rep.Languages {
			fmt.Printf("%s: %d started, %d completed", lr.Language, lr.TopicsStarted, lr.TopicsCompleted)
			if lr.TopicsTotal > 0 {
				fmt.Printf(" of %d (%.0f%%)", lr.TopicsTotal, lr.CompletionPct)
			}
			fmt.Printf(", %s spent\n", (time.Duration(lr.TimeSpentSecs) * time.Second))
		}

		fmt.Printf("\nQuizzes: %d attempts, %d passed", rep.Quiz.TotalAttempts, rep.Quiz.Passed)
		if rep.Quiz.TotalAttempts > 0 {
			fmt.Printf(", best %.0f%%, average %.0f%%", rep.Quiz.BestScore, rep.Quiz.AverageScore)
		}
		fmt.Println()

		fmt.Printf("Runs: %d total", rep.Submissions.Total)
		if rep.Submissions.Total > 0 {
			fmt.Printf(", %.0f%% succeeded", rep.Submissions.SuccessPct)
		}
		fmt.Println()

		fmt.Printf("Streak: %d days (longest %d)\n", rep.CurrentStreak, rep.LongestStreak)
		fmt.Printf("Achievements: %d unlocked, %d points\n", len(rep.Achievements), rep.Points)
		return nil
	},
}
