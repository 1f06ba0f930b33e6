package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lyneport/tlofgen/internal/finetune"
	"github.com/lyneport/tlofgen/internal/infer"
	"github.com/lyneport/tlofgen/internal/llm"
	"github.com/lyneport/tlofgen/internal/store"
)

var finetuneCmd = &cobra.Command{
	Use:   "finetune",
	Short: "Fine-tune a model on TLOF training data",
}

var finetuneRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Upload data, train, await completion, and smoke-test the model",
	RunE: func(cmd *cobra.Command, args []string) error {
		training, _ := cmd.Flags().GetString("training")
		validation, _ := cmd.Flags().GetString("validation")
		baseModel, _ := cmd.Flags().GetString("base-model")
		results, _ := cmd.Flags().GetString("results")
		skipTest, _ := cmd.Flags().GetBool("skip-test")

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		client, err := finetune.NewAzureClient(cfg.OpenAI)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		w := &finetune.Workflow{
			Client: client,
			Runs:   s.RunRepo(),
			Logf: func(format string, args ...any) {
				fmt.Printf(format+"\n", args...)
			},
		}

		params := finetune.WorkflowParams{
			TrainingFile:   training,
			ValidationFile: validation,
			BaseModel:      baseModel,
			ResultsPath:    results,
		}

		if !skipTest {
			params.Test = smokeTester(cfg, s)
		}

		result, err := w.Run(cmd.Context(), params)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Fine-tuned model: %s\n", result.ModelName)
		fmt.Printf("Job ID:           %s\n", result.JobID)
		fmt.Printf("Results saved to: %s\n", results)
		fmt.Println()
		fmt.Printf("To use this model, set AZURE_OPENAI_FINETUNED_MODEL_NAME=%s\n", result.ModelName)
		return nil
	},
}

// smokeTester runs smoke-test prompts through the standard provider
// stack against the freshly trained model.
func smokeTester(cfg llm.Config, s *store.Store) finetune.Tester {
	return func(ctx context.Context, model, prompt string) (string, error) {
		testCfg := cfg
		testCfg.OpenAI.Model = model
		testCfg.FineTuned = true

		provider, err := llm.NewProvider(ctx, testCfg, s.EventRepo())
		if err != nil {
			return "", err
		}

		svc := infer.NewService(provider, true)
		_, raw, err := svc.Generate(ctx, prompt)
		if err != nil && raw == "" {
			return "", err
		}
		return raw, nil
	}
}

var finetuneJobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List recorded fine-tuning jobs, refreshing their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		runs, err := s.RunRepo().ListRuns(ctx)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No fine-tuning jobs recorded.")
			return nil
		}

		cfg := llm.ConfigFromEnv()
		var client finetune.Client
		if azure, err := finetune.NewAzureClient(cfg.OpenAI); err == nil {
			client = azure
		}

		fmt.Printf("%-24s  %-16s  %-12s  %s\n", "Job ID", "Base Model", "Status", "Fine-tuned Model")
		fmt.Println(strings.Repeat("─", 90))

		for _, run := range runs {
			status := run.Status
			model := run.FineTunedModel

			// Refresh non-terminal jobs when credentials allow.
			if client != nil && !finetune.Terminal(status) {
				if job, err := client.GetJob(ctx, run.JobID); err == nil {
					status = job.Status
					model = job.FineTunedModel
					_ = s.RunRepo().UpdateRunStatus(ctx, run.JobID, status, model)
				}
			}

			fmt.Printf("%-24s  %-16s  %-12s  %s\n", run.JobID, run.BaseModel, status, model)
		}
		return nil
	},
}

var finetuneFilesCmd = &cobra.Command{
	Use:   "files",
	Short: "List files uploaded to the fine-tuning service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}
		client, err := finetune.NewAzureClient(cfg.OpenAI)
		if err != nil {
			return err
		}

		files, err := client.ListFiles(cmd.Context())
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Println("No files uploaded.")
			return nil
		}

		fmt.Printf("%-28s  %-32s  %-12s  %s\n", "ID", "Name", "Purpose", "Bytes")
		fmt.Println(strings.Repeat("─", 90))
		for _, f := range files {
			fmt.Printf("%-28s  %-32s  %-12s  %d\n", f.ID, f.Name, f.Purpose, f.Bytes)
		}
		return nil
	},
}

func init() {
	finetuneRunCmd.Flags().String("training", "tlof_training_data.jsonl", "Training JSONL path")
	finetuneRunCmd.Flags().String("validation", "tlof_validation_data.jsonl", "Validation JSONL path (skipped when missing)")
	finetuneRunCmd.Flags().String("base-model", "gpt-3.5-turbo", "Base model to fine-tune")
	finetuneRunCmd.Flags().String("results", "fine_tuning_results.json", "Results summary path")
	finetuneRunCmd.Flags().Bool("skip-test", false, "Skip the post-training smoke test")

	finetuneCmd.AddCommand(finetuneRunCmd)
	finetuneCmd.AddCommand(finetuneJobsCmd)
	finetuneCmd.AddCommand(finetuneFilesCmd)
}
