package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ankitadas/tutorbuddy/internal/catalog"
	"github.com/ankitadas/tutorbuddy/internal/chat"
	"github.com/ankitadas/tutorbuddy/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		p := chat.LoadProgress(context.Background(), s.ProgressRepo())

		fmt.Printf("Points:  %d\n", p.TotalPoints)
		fmt.Printf("Streak:  %d day(s)", p.Streak)
		if p.LastVisit != "" {
			fmt.Printf("  (last visit %s)", p.LastVisit)
		}
		fmt.Println()

		fmt.Println()
		fmt.Println("Counters")
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("  %-20s %d\n", "Words learned", p.Stats.WordsLearned)
		fmt.Printf("  %-20s %d\n", "Sentences fixed", p.Stats.SentencesFixed)
		fmt.Printf("  %-20s %d\n", "Stories started", p.Stats.StoriesStarted)
		fmt.Printf("  %-20s %d\n", "Quizzes completed", p.Stats.QuizzesCompleted)
		fmt.Printf("  %-20s %d\n", "Questions asked", p.Stats.QuestionsAsked)

		fmt.Println()
		fmt.Printf("Badges (%d/%d)\n", len(p.Badges), len(catalog.Badges()))
		fmt.Println(strings.Repeat("─", 40))
		for _, b := range catalog.Badges() {
			mark := " "
			if p.HasBadge(b.ID) {
				mark = "✓"
			}
			fmt.Printf("  [%s] %s %s — %s\n", mark, b.Icon, b.Name, b.Description)
		}

		return nil
	},
}
