package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deebya/codetutor/internal/achievements"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked and remaining achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := st.AchievementRepo()
		unlocked, err := repo.List(cmd.Context(), settings.User)
		if err != nil {
			return fmt.Errorf("list achievements: %w", err)
		}
		held, err := repo.UnlockedKeys(cmd.Context(), settings.User)
		if err != nil {
			return fmt.Errorf("load unlocked keys: %w", err)
		}

		if len(unlocked) > 0 {
			fmt.Printf("Unlocked (%d points):\n", achievements.TotalPoints(unlocked))
			for _, a := range unlocked {
				fmt.Printf("  [x] %-18s %s (+%d, %s)\n",
					a.Name, a.Description, a.Points, a.UnlockedAt.Format("2006-01-02"))
			}
			fmt.Println()
		}

		fmt.Println("Still locked:")
		remaining := 0
		for _, def := range achievements.Catalog {
			if held[def.Key] {
				continue
			}
			remaining++
			fmt.Printf("  [ ] %-18s %s (+%d)\n", def.Name, def.Description, def.Points)
		}
		if remaining == 0 {
			fmt.Println("  none! You have them all.")
		}
		return nil
	},
}
