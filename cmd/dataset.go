package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/lyneport/tlofgen/internal/dataset"
)

func randomSeed() uint64 {
	return rand.Uint64()
}

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Generate and validate synthetic training data",
}

var datasetGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic TLOF training dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		split, _ := cmd.Flags().GetFloat64("split")
		seed, _ := cmd.Flags().GetUint64("seed")
		trainOut, _ := cmd.Flags().GetString("out")
		valOut, _ := cmd.Flags().GetString("val-out")

		var g *dataset.Generator
		if seed != 0 {
			g = dataset.NewSeeded(seed)
		} else {
			g = dataset.NewSeeded(randomSeed())
		}

		fmt.Printf("Generating %d training examples...\n", count)
		train, val, err := g.Dataset(count, split)
		if err != nil {
			return err
		}

		if err := dataset.WriteJSONL(trainOut, train); err != nil {
			return err
		}
		fmt.Printf("Wrote %d training examples to %s\n", len(train), trainOut)

		if len(val) > 0 {
			if err := dataset.WriteJSONL(valOut, val); err != nil {
				return err
			}
			fmt.Printf("Wrote %d validation examples to %s\n", len(val), valOut)
		}

		// Re-read what was written so the files themselves are checked.
		for _, path := range []string{trainOut, valOut} {
			if path == valOut && len(val) == 0 {
				continue
			}
			report, err := dataset.CheckFile(path)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d/%d valid (%.1f%%)\n",
				path, report.Valid, report.Total, report.SuccessRate())
			for _, issue := range report.Issues {
				fmt.Println("  " + issue)
			}
		}
		return nil
	},
}

var datasetCheckCmd = &cobra.Command{
	Use:   "check <file.jsonl>",
	Short: "Validate an existing JSONL training file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := dataset.CheckFile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Total:   %d\n", report.Total)
		fmt.Printf("Valid:   %d (%.1f%%)\n", report.Valid, report.SuccessRate())
		if len(report.Issues) > 0 {
			fmt.Printf("Issues:  %d\n", len(report.Issues))
			for _, issue := range report.Issues {
				fmt.Println("  " + issue)
			}
		}
		return nil
	},
}

func init() {
	datasetGenerateCmd.Flags().IntP("count", "n", 1000, "Number of examples to generate")
	datasetGenerateCmd.Flags().Float64P("split", "s", 0.2, "Validation split fraction (0 disables)")
	datasetGenerateCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
	datasetGenerateCmd.Flags().StringP("out", "o", "tlof_training_data.jsonl", "Training output path")
	datasetGenerateCmd.Flags().String("val-out", "tlof_validation_data.jsonl", "Validation output path")

	datasetCmd.AddCommand(datasetGenerateCmd)
	datasetCmd.AddCommand(datasetCheckCmd)
}
