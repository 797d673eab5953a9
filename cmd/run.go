package cmd

import (
	"fmt"
	"os"

	"github.com/adityakr/prepdrill/internal/analysis"
	"github.com/adityakr/prepdrill/internal/app"
	"github.com/adityakr/prepdrill/internal/classify"
	"github.com/adityakr/prepdrill/internal/leaderboard"
	"github.com/adityakr/prepdrill/internal/llm"
	"github.com/adityakr/prepdrill/internal/mentor"
	"github.com/adityakr/prepdrill/internal/papergen"
	"github.com/adityakr/prepdrill/internal/screens/home"
	"github.com/adityakr/prepdrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	deps, err := buildDeps(cmd, st)
	if err != nil {
		return err
	}
	return app.Run(deps)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildDeps wires the service graph over an open store. The LLM provider is
// optional; without it paper generation fails loudly and the analysis
// pipeline degrades to stored categories plus placeholder feedback.
func buildDeps(cmd *cobra.Command, st *store.Store) (home.Deps, error) {
	records := st.Records()
	deps := home.Deps{
		Records:  records,
		Profiles: st.Profiles(),
		Board:    leaderboard.NewBoard(records),
		Pipeline: analysis.New(records, nil, nil),
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Paper generation and analysis will be unavailable.")
		return deps, nil
	}

	deps.Generator = papergen.New(provider, records, papergen.DefaultConfig())
	deps.Pipeline = analysis.New(records,
		classify.NewClassifier(provider, classify.DefaultConfig()),
		mentor.New(provider, mentor.DefaultConfig()),
	)
	return deps, nil
}
