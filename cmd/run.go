package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deebya/codetutor/internal/progress"
	"github.com/deebya/codetutor/internal/runner"
	"github.com/deebya/codetutor/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run <language> [file]",
	Short: "Execute a program and record the attempt",
	Long:  "Executes the given source file (or code piped on stdin) with the language's toolchain, under a timeout.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := strings.ToLower(args[0])

		r := runner.New(logger)
		if err := r.Preflight(lang); err != nil {
			return err
		}

		code, err := readCode(args)
		if err != nil {
			return err
		}
		stdin, _ := cmd.Flags().GetString("stdin")
		topicID, _ := cmd.Flags().GetString("topic")

		res, err := r.Run(cmd.Context(), runner.Request{
			Language: lang,
			Code:     code,
			Stdin:    stdin,
			Timeout:  settings.RunTimeout(),
		})
		if err != nil {
			return err
		}

		printRun(res)

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := progress.NewService(st, nil, logger)
		runID, unlocked, err := svc.RecordSubmission(cmd.Context(), store.SubmissionRecord{
			UserID:      settings.User,
			Language:    lang,
			TopicID:     topicID,
			Code:        code,
			Status:      string(res.Status),
			Output:      res.Stdout,
			ErrorOutput: res.Stderr,
			DurationMs:  res.Duration.Milliseconds(),
		})
		if err != nil {
			logger.Warn("could not save submission", zap.Error(err))
		} else {
			logger.Debug("submission saved", zap.String("run_id", runID))
		}
		printUnlocked(unlocked)
		return nil
	},
}

func init() {
	runCmd.Flags().String("stdin", "", "Input to feed the program on stdin")
	runCmd.Flags().String("topic", "", "Topic the code belongs to, for progress tracking")
}

// readCode takes the source from the file argument, or from stdin when
// no file is given.
func readCode(args []string) (string, error) {
	if len(args) == 2 {
		raw, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("read source file: %w", err)
		}
		return string(raw), nil
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("no code given: pass a file or pipe source on stdin")
	}
	return string(raw), nil
}

func printRun(res *runner.Result) {
	if res.Stdout != "" {
		fmt.Print(res.Stdout)
		if !strings.HasSuffix(res.Stdout, "\n") {
			fmt.Println()
		}
	}
	if res.Stderr != "" {
		fmt.Fprint(os.Stderr, res.Stderr)
	}

	switch res.Status {
	case runner.StatusOK:
		fmt.Printf("(finished in %s)\n", res.Duration.Round(time.Millisecond))
	case runner.StatusTimeout:
		fmt.Printf("Timed out after %s.\n", res.Duration.Round(time.Millisecond))
	default:
		fmt.Printf("Exited with code %d.\n", res.ExitCode)
	}
}
