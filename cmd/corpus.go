package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyneport/tlofgen/internal/corpus"
	"github.com/lyneport/tlofgen/internal/llm"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Ingest and query the regulation corpus",
}

var corpusIngestCmd = &cobra.Command{
	Use:   "ingest <files...>",
	Short: "Chunk, embed, and store regulation documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		regulator, _ := cmd.Flags().GetString("regulator")
		dsn, _ := cmd.Flags().GetString("dsn")

		cfg := llm.ConfigFromEnv()
		if err := cfg.ValidateEmbedding(); err != nil {
			return err
		}

		embedder, err := llm.NewOpenAIEmbedder(cfg.Embedding)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		vs, err := corpus.OpenPGStore(ctx, dsn)
		if err != nil {
			return err
		}
		defer vs.Close()

		in := &corpus.Ingestor{
			Embedder: embedder,
			Store:    vs,
			Logf: func(format string, args ...any) {
				fmt.Printf(format+"\n", args...)
			},
		}

		n, err := in.IngestFiles(ctx, args, strings.ToLower(regulator))
		if err != nil {
			return err
		}
		fmt.Printf("Stored %d chunks for %s regulations\n", n, regulator)
		return nil
	},
}

var corpusAskCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question over the embedded regulations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topK, _ := cmd.Flags().GetInt("top-k")
		dsn, _ := cmd.Flags().GetString("dsn")
		question := strings.Join(args, " ")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, cfg, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return err
		}
		if err := cfg.ValidateEmbedding(); err != nil {
			return err
		}

		embedder, err := llm.NewOpenAIEmbedder(cfg.Embedding)
		if err != nil {
			return err
		}

		vs, err := corpus.OpenPGStore(ctx, dsn)
		if err != nil {
			return err
		}
		defer vs.Close()

		a := &corpus.Answerer{
			Embedder: embedder,
			Store:    vs,
			Provider: provider,
			TopK:     topK,
		}

		answer, err := a.Ask(ctx, question)
		if err != nil {
			return err
		}

		fmt.Println(answer.Text)
		fmt.Println()
		fmt.Println("Sources:")
		for i, src := range answer.Sources {
			snippet := src.Content
			if len(snippet) > 80 {
				snippet = snippet[:80] + "..."
			}
			fmt.Printf("  [%d] (%.2f) %s\n", i+1, src.Similarity, snippet)
		}
		return nil
	},
}

func init() {
	corpusIngestCmd.Flags().StringP("regulator", "r", "faa", "Regulator code to tag chunks with")
	corpusIngestCmd.Flags().String("dsn", "", "Postgres connection string (overrides SUPABASE_DB_URL)")

	corpusAskCmd.Flags().IntP("top-k", "k", corpus.DefaultTopK, "Number of chunks to retrieve")
	corpusAskCmd.Flags().String("dsn", "", "Postgres connection string (overrides SUPABASE_DB_URL)")

	corpusCmd.AddCommand(corpusIngestCmd)
	corpusCmd.AddCommand(corpusAskCmd)
}
