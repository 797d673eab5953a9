package cmd

import (
	"fmt"
	"strings"

	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show paper history and mistake breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		papers, err := st.Records().Papers(ctx)
		if err != nil {
			return fmt.Errorf("load papers: %w", err)
		}
		if len(papers) == 0 {
			fmt.Println("No papers yet. Run prepdrill to generate one.")
			return nil
		}

		fmt.Println("Paper History")
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("%-12s  %-10s  %5s  %5s  %4s  %s\n",
			"Date", "Status", "Score", "Acc", "Diff", "Mode")
		fmt.Println(strings.Repeat("─", 60))

		byCategory := map[exam.MistakeCategory]int{}
		for _, p := range papers {
			mode := "standard"
			if p.RecoveryMode {
				mode = "recovery"
			}
			acc := "-"
			if p.Status == exam.StatusSubmitted || p.Status == exam.StatusAnalyzed {
				acc = fmt.Sprintf("%d%%", p.Accuracy)
			}
			fmt.Printf("%-12s  %-10s  %5d  %5s  %4d  %s\n",
				p.CreatedAt.Local().Format("2006-01-02"), p.Status, p.Score, acc, p.DifficultyLevel, mode)

			answers, err := st.Records().Answers(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("load answers for %s: %w", p.ID, err)
			}
			for _, a := range answers {
				if !a.Correct && a.MistakeCategory != "" {
					byCategory[a.MistakeCategory]++
				}
			}
		}

		if len(byCategory) > 0 {
			fmt.Println()
			fmt.Println("Mistakes by Category")
			fmt.Println(strings.Repeat("─", 60))
			for _, c := range exam.Categories() {
				if n := byCategory[c]; n > 0 {
					fmt.Printf("%-16s  %d\n", c, n)
				}
			}
		}
		return nil
	},
}
