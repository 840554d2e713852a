package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deebya/codetutor/internal/content"
	"github.com/deebya/codetutor/internal/store"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [language]",
	Short: "List languages, or a language's topics with your progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := loadLibrary()
		if err != nil {
			return err
		}

		if search, _ := cmd.Flags().GetString("search"); search != "" {
			return printSearch(lib, search)
		}

		if len(args) == 0 {
			for _, lang := range lib.Languages() {
				tut := lib.Tutorial(lang)
				fmt.Printf("%-12s %s (%d topics)\n", lang, tut.Name, len(tut.Topics))
			}
			return nil
		}

		lang := strings.ToLower(args[0])
		tut := lib.Tutorial(lang)
		if tut == nil {
			return fmt.Errorf("unknown language %q (try: codetutor topics)", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return printTopics(cmd.Context(), st, tut, lang)
	},
}

func init() {
	topicsCmd.Flags().String("search", "", "Search topics across all languages")
}

// loadLibrary reads the tutorial documents from the configured content
// directory.
func loadLibrary() (*content.Library, error) {
	lib, err := content.LoadDir(settings.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return lib, nil
}

func printSearch(lib *content.Library, query string) error {
	results := lib.Search(query)
	if len(results) == 0 {
		fmt.Printf("No topics match %q.\n", query)
		return nil
	}
	for _, r := range results {
		fmt.Printf("%s/%s  %s\n", r.Language, r.TopicID, r.Title)
	}
	return nil
}

func printTopics(ctx context.Context, st *store.Store, tut *content.Tutorial, lang string) error {
	records, err := st.ProgressRepo().List(ctx, settings.User, lang)
	if err != nil {
		return fmt.Errorf("list progress: %w", err)
	}
	byTopic := make(map[string]store.ProgressRecord, len(records))
	for _, r := range records {
		byTopic[r.TopicID] = r
	}

	for _, topic := range tut.OrderedTopics() {
		marker := " "
		detail := ""
		if rec, ok := byTopic[topic.ID]; ok {
			marker = "~"
			detail = fmt.Sprintf("  %.0f%%", rec.Completion)
			if rec.Completed {
				marker = "x"
				detail = ""
			}
		}
		fmt.Printf("[%s] %-20s %s%s\n", marker, topic.ID, topic.Title, detail)
	}
	return nil
}
