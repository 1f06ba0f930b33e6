package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lyneport/tlofgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tlofgen",
	Short: "TLOF configuration tooling",
	Long: "Tlofgen — generate, fine-tune, and query language models for TLOF\n" +
		"(Touchdown and Lift-Off Area) landing pad configurations.",
}

func Execute() error {
	// Credentials commonly live in a local .env during development.
	// A missing file is fine.
	_ = godotenv.Load()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TLOFGEN_DB env var)")

	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(finetuneCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TLOFGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event/run database for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
