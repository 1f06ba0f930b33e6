package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyneport/tlofgen/internal/infer"
	"github.com/lyneport/tlofgen/internal/llm"
	"github.com/lyneport/tlofgen/internal/tui"
)

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate a TLOF configuration from a description",
	Long: "Generate a TLOF configuration from a natural language description.\n" +
		"With --in, processes a file of descriptions (one per line) in batch.\n" +
		"With no arguments on a terminal, opens the interactive console.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inFile, _ := cmd.Flags().GetString("in")
		outDir, _ := cmd.Flags().GetString("out-dir")
		savePath, _ := cmd.Flags().GetString("save")
		strict, _ := cmd.Flags().GetBool("strict")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, cfg, err := llm.NewProviderFromEnv(cmd.Context(), s.EventRepo())
		if err != nil {
			return err
		}

		svc := infer.NewService(provider, cfg.FineTuned)
		svc.Strict = strict

		// Batch mode.
		if inFile != "" {
			inputs, err := infer.ReadDescriptions(inFile)
			if err != nil {
				return err
			}
			fmt.Printf("Processing %d descriptions...\n", len(inputs))

			summary, err := svc.Batch(cmd.Context(), inputs, outDir)
			if err != nil {
				return err
			}
			fmt.Printf("Successful: %d\n", summary.Successful)
			fmt.Printf("Failed:     %d\n", summary.Failed)
			fmt.Printf("Outputs in: %s\n", outDir)
			return nil
		}

		// Single description.
		if len(args) == 1 {
			config, _, err := svc.Generate(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			blob, err := json.MarshalIndent(config, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(blob))

			if savePath != "" {
				saved, err := infer.SaveConfiguration(config, savePath)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Saved to %s\n", saved)
			}
			return nil
		}

		// Interactive console needs a terminal.
		if fi, err := os.Stdin.Stat(); err != nil || fi.Mode()&os.ModeCharDevice == 0 {
			return fmt.Errorf("no description given and stdin is not a terminal")
		}
		return tui.Run(svc, provider.ModelID())
	},
}

func init() {
	generateCmd.Flags().String("in", "", "File of descriptions to process in batch")
	generateCmd.Flags().String("out-dir", "batch_outputs", "Directory for batch outputs")
	generateCmd.Flags().String("save", "", "Save the configuration to this path")
	generateCmd.Flags().Bool("strict", false, "Enforce the configuration schema at the provider")
}
