package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deebya/codetutor/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate tutorial documents without loading the app",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := settings.ContentDir
		if len(args) == 1 {
			dir = args[0]
		}

		lib, err := content.LoadDir(dir)
		if err != nil {
			return err
		}

		total := 0
		for _, lang := range lib.Languages() {
			total += lib.TopicCount(lang)
		}
		fmt.Printf("OK: %d languages, %d topics\n", len(lib.Languages()), total)
		return nil
	},
}
