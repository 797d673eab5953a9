package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/adityakr/prepdrill/internal/analysis"
	"github.com/adityakr/prepdrill/internal/classify"
	"github.com/adityakr/prepdrill/internal/exam"
	"github.com/adityakr/prepdrill/internal/llm"
	"github.com/adityakr/prepdrill/internal/mentor"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [paper-id]",
	Short: "Run mistake analysis for an unlocked paper",
	Long: `Run the attribution pipeline for a submitted paper and print the result.

Without an argument, the most recent unlocked paper is analyzed. Analysis
stays sealed for 24 hours after submission.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		records := st.Records()

		var target *exam.Paper
		papers, err := records.Papers(ctx)
		if err != nil {
			return fmt.Errorf("load papers: %w", err)
		}
		for i, p := range papers {
			if len(args) == 1 {
				if p.ID == args[0] {
					target = &papers[i]
					break
				}
				continue
			}
			if p.Status == exam.StatusSubmitted || p.Status == exam.StatusAnalyzed {
				target = &papers[i]
				break
			}
		}
		if target == nil {
			if len(args) == 1 {
				return fmt.Errorf("paper %s not found", args[0])
			}
			return fmt.Errorf("no submitted paper to analyze")
		}
		if target.Status == exam.StatusAvailable || target.Status == exam.StatusLocked {
			return fmt.Errorf("paper %s has not been sat yet", target.ID)
		}
		if now := time.Now(); now.Before(target.UnlockedAt) {
			return fmt.Errorf("analysis is sealed until %s", target.UnlockedAt.Local().Format("Jan 2 15:04"))
		}

		pipeline := analysis.New(records, nil, nil)
		profile, err := st.Profiles().Profile(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured; using stored categories only.")
		} else {
			pipeline = analysis.New(records,
				classify.NewClassifier(provider, classify.DefaultConfig()),
				mentor.New(provider, mentor.DefaultConfig()),
			)
		}

		v, err := pipeline.Run(ctx, target.ID, profile, nil)
		if err != nil {
			return err
		}

		fmt.Printf("Paper %s: %d/%d correct (%d%%)\n\n",
			v.Paper.ID, v.Paper.Score, len(v.Questions), v.Paper.Accuracy)
		for _, a := range v.Answers {
			if a.Correct {
				continue
			}
			fmt.Printf("  [%s] question %s", a.MistakeCategory, a.QuestionID)
			if s, ok := v.Suggestions[a.ID]; ok && s.Reasoning != "" {
				fmt.Printf(": %s", s.Reasoning)
			}
			fmt.Println()
		}
		if v.Feedback != nil {
			fmt.Printf("\n%s: %s\n%s\n", v.Feedback.Persona, v.Feedback.Feedback, v.Feedback.Motivation)
			for _, t := range v.Feedback.Plan {
				fmt.Printf("  [%s] %s: %s\n", t.Priority, t.Topic, t.Summary)
			}
		}
		return nil
	},
}
