package finetune

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lyneport/tlofgen/internal/store"
	"github.com/lyneport/tlofgen/internal/tlof"
)

// SmokeTestPrompts are the standard prompts used to exercise a freshly
// fine-tuned model before it goes into use.
var SmokeTestPrompts = []string{
	"Generate a rectangular TLOF for a helicopter with 25m x 30m dimensions, elevation 10m, and blue 'H' landing marker.",
	"Create a circular landing pad for an eVTOL with 20m diameter, white perimeter lighting, and safety area.",
	"Design a polygon TLOF for a tiltrotor aircraft with 6 sides, 35m width, red 'V' marker, and dashed markings.",
	"Build a simple rectangular TLOF for a drone with 8m x 8m dimensions at ground level.",
}

// Tester runs one smoke-test prompt against a named model and returns
// the raw completion text.
type Tester func(ctx context.Context, model, prompt string) (string, error)

// WorkflowParams configures a full fine-tuning run.
type WorkflowParams struct {
	TrainingFile   string
	ValidationFile string // optional, skipped when missing
	BaseModel      string

	Hyperparameters Hyperparameters
	Await           AwaitConfig

	// ResultsPath is where the run summary JSON is written.
	// Default: "fine_tuning_results.json".
	ResultsPath string

	// Test runs the post-training smoke test. Skipped when nil.
	Test Tester
}

// TestResult records one smoke-test exchange.
type TestResult struct {
	Prompt    string `json:"prompt"`
	Response  string `json:"response"`
	Success   bool   `json:"success"`
	ValidJSON bool   `json:"valid_json"`
}

// Result summarizes a completed fine-tuning run.
type Result struct {
	ModelName       string          `json:"model_name"`
	JobID           string          `json:"job_id"`
	BaseModel       string          `json:"base_model"`
	Hyperparameters Hyperparameters `json:"hyperparameters"`
	TestResults     []TestResult    `json:"test_results,omitempty"`
	Timestamp       int64           `json:"timestamp"`
}

// Workflow runs the end-to-end fine-tuning sequence: upload files,
// create the job, await completion, smoke-test the model, and write a
// results summary. Created jobs are recorded in Runs when set.
type Workflow struct {
	Client Client
	Runs   store.RunRepo

	// Logf reports progress. Defaults to a no-op.
	Logf func(format string, args ...any)
}

func (w *Workflow) logf(format string, args ...any) {
	if w.Logf != nil {
		w.Logf(format, args...)
	}
}

// Run executes the workflow and returns the run summary.
func (w *Workflow) Run(ctx context.Context, params WorkflowParams) (*Result, error) {
	if params.BaseModel == "" {
		params.BaseModel = "gpt-3.5-turbo"
	}
	if params.Hyperparameters == (Hyperparameters{}) {
		params.Hyperparameters = DefaultHyperparameters()
	}
	if params.ResultsPath == "" {
		params.ResultsPath = "fine_tuning_results.json"
	}

	w.logf("uploading training data: %s", params.TrainingFile)
	trainFile, err := w.Client.UploadFile(ctx, params.TrainingFile)
	if err != nil {
		return nil, fmt.Errorf("upload training file: %w", err)
	}

	var validationID string
	if params.ValidationFile != "" {
		if _, err := os.Stat(params.ValidationFile); err == nil {
			w.logf("uploading validation data: %s", params.ValidationFile)
			valFile, err := w.Client.UploadFile(ctx, params.ValidationFile)
			if err != nil {
				return nil, fmt.Errorf("upload validation file: %w", err)
			}
			validationID = valFile.ID
		} else {
			w.logf("no validation file found, proceeding without validation")
		}
	}

	w.logf("creating fine-tuning job on %s", params.BaseModel)
	job, err := w.Client.CreateJob(ctx, JobRequest{
		BaseModel:        params.BaseModel,
		TrainingFileID:   trainFile.ID,
		ValidationFileID: validationID,
		Hyperparameters:  params.Hyperparameters,
	})
	if err != nil {
		return nil, err
	}
	w.logf("job %s created, status %s", job.ID, job.Status)

	if w.Runs != nil {
		err := w.Runs.SaveRun(ctx, store.FinetuneRun{
			JobID:          job.ID,
			BaseModel:      params.BaseModel,
			TrainingFile:   trainFile.ID,
			ValidationFile: validationID,
			Status:         job.Status,
		})
		if err != nil {
			w.logf("warning: record run: %v", err)
		}
	}

	await := params.Await
	lastStatus := job.Status
	prevOnPoll := await.OnPoll
	await.OnPoll = func(j *Job) {
		if j.Status != lastStatus {
			w.logf("status: %s", j.Status)
			lastStatus = j.Status
		}
		if prevOnPoll != nil {
			prevOnPoll(j)
		}
	}

	w.logf("awaiting completion of job %s", job.ID)
	modelName, err := Await(ctx, w.Client, job.ID, await)

	if w.Runs != nil {
		if uerr := w.Runs.UpdateRunStatus(ctx, job.ID, lastStatus, modelName); uerr != nil {
			w.logf("warning: update run: %v", uerr)
		}
	}
	if err != nil {
		return nil, err
	}
	w.logf("fine-tuned model: %s", modelName)

	result := &Result{
		ModelName:       modelName,
		JobID:           job.ID,
		BaseModel:       params.BaseModel,
		Hyperparameters: params.Hyperparameters,
		Timestamp:       time.Now().Unix(),
	}

	if params.Test != nil {
		result.TestResults = w.smokeTest(ctx, modelName, params.Test)
	}

	if err := writeResults(params.ResultsPath, result); err != nil {
		return result, err
	}
	w.logf("results saved to %s", params.ResultsPath)

	return result, nil
}

func (w *Workflow) smokeTest(ctx context.Context, model string, test Tester) []TestResult {
	results := make([]TestResult, 0, len(SmokeTestPrompts))
	for i, prompt := range SmokeTestPrompts {
		w.logf("test %d/%d", i+1, len(SmokeTestPrompts))

		text, err := test(ctx, model, prompt)
		if err != nil {
			results = append(results, TestResult{
				Prompt:   prompt,
				Response: fmt.Sprintf("Error: %v", err),
			})
			continue
		}

		_, exErr := tlof.Extract(text)
		results = append(results, TestResult{
			Prompt:    prompt,
			Response:  text,
			Success:   true,
			ValidJSON: exErr == nil,
		})
	}
	return results
}

func writeResults(path string, result *Result) error {
	blob, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
