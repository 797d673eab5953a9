package cmd

import (
	"fmt"

	"github.com/adityakr/prepdrill/internal/llm"
	"github.com/adityakr/prepdrill/internal/papergen"
	"github.com/spf13/cobra"
)

var paperCmd = &cobra.Command{
	Use:   "paper",
	Short: "Generate today's paper without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		recovery, _ := cmd.Flags().GetBool("recovery")
		if difficulty < 1 || difficulty > 5 {
			return fmt.Errorf("difficulty must be between 1 and 5, got %d", difficulty)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		profile, err := st.Profiles().Profile(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("no profile yet; run prepdrill once to enroll")
		}

		gen := papergen.New(provider, st.Records(), papergen.DefaultConfig())
		p, err := gen.Generate(ctx, profile, difficulty, recovery)
		if err != nil {
			return fmt.Errorf("generate paper: %w", err)
		}

		mode := "standard"
		if p.RecoveryMode {
			mode = "recovery"
		}
		fmt.Printf("Paper %s ready: difficulty %d, %s mode. Run prepdrill to sit it.\n",
			p.ID, p.DifficultyLevel, mode)
		return nil
	},
}

func init() {
	paperCmd.Flags().IntP("difficulty", "d", 3, "Difficulty level (1-5)")
	paperCmd.Flags().Bool("recovery", false, "Generate a foundation-focused recovery paper")
}
