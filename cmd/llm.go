package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM usage",
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage by purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.EventRepo().LLMUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-24s  %6s  %6s  %10s  %10s  %10s\n",
			"Purpose", "Calls", "Fails", "Input", "Output", "Total")
		fmt.Println(strings.Repeat("─", 72))

		var totalCalls, totalIn, totalOut int
		for _, s := range stats {
			total := s.InputTokens + s.OutputTokens
			fmt.Printf("%-24s  %6d  %6d  %10d  %10d  %10d\n",
				s.Purpose, s.Requests, s.Failures, s.InputTokens, s.OutputTokens, total)
			totalCalls += s.Requests
			totalIn += s.InputTokens
			totalOut += s.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-24s  %6d  %6s  %10d  %10d  %10d\n",
			"TOTAL", totalCalls, "", totalIn, totalOut, totalIn+totalOut)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatsCmd)
}
