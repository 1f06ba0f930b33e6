package finetune

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkflow_Run(t *testing.T) {
	dir := t.TempDir()
	training := filepath.Join(dir, "train.jsonl")
	require.NoError(t, os.WriteFile(training, []byte(`{"messages":[]}`+"\n"), 0o644))

	client := &fakeClient{states: []Job{
		{Status: StatusRunning},
		{Status: StatusSucceeded, FineTunedModel: "ft:gpt-35-turbo::abc"},
	}}

	resultsPath := filepath.Join(dir, "results.json")
	w := &Workflow{Client: client}

	result, err := w.Run(context.Background(), WorkflowParams{
		TrainingFile: training,
		BaseModel:    "gpt-35-turbo",
		Await:        fastAwait(),
		ResultsPath:  resultsPath,
		Test: func(ctx context.Context, model, prompt string) (string, error) {
			return `{"TLOF":[{"position":[0,0],"dimensions":{}}]}`, nil
		},
	})
	require.NoError(t, err)
	require.Equal(t, "ft:gpt-35-turbo::abc", result.ModelName)
	require.Equal(t, "ftjob-1", result.JobID)
	require.Len(t, result.TestResults, len(SmokeTestPrompts))
	for _, tr := range result.TestResults {
		require.True(t, tr.Success)
		require.True(t, tr.ValidJSON)
	}

	require.Len(t, client.uploaded, 1, "no validation file given")
	require.Len(t, client.created, 1)
	require.Equal(t, DefaultHyperparameters(), client.created[0].Hyperparameters)

	blob, err := os.ReadFile(resultsPath)
	require.NoError(t, err)
	var saved Result
	require.NoError(t, json.Unmarshal(blob, &saved))
	require.Equal(t, result.ModelName, saved.ModelName)
}

func TestWorkflow_UploadsValidationFile(t *testing.T) {
	dir := t.TempDir()
	training := filepath.Join(dir, "train.jsonl")
	validation := filepath.Join(dir, "val.jsonl")
	require.NoError(t, os.WriteFile(training, []byte("{}\n"), 0o644))
	require.NoError(t, os.WriteFile(validation, []byte("{}\n"), 0o644))

	client := &fakeClient{states: []Job{
		{Status: StatusSucceeded, FineTunedModel: "ft:x"},
	}}

	w := &Workflow{Client: client}
	_, err := w.Run(context.Background(), WorkflowParams{
		TrainingFile:   training,
		ValidationFile: validation,
		Await:          fastAwait(),
		ResultsPath:    filepath.Join(dir, "results.json"),
	})
	require.NoError(t, err)
	require.Len(t, client.uploaded, 2)
	require.Equal(t, "file-"+validation, client.created[0].ValidationFileID)
}

func TestWorkflow_MissingValidationFileSkipped(t *testing.T) {
	dir := t.TempDir()
	training := filepath.Join(dir, "train.jsonl")
	require.NoError(t, os.WriteFile(training, []byte("{}\n"), 0o644))

	client := &fakeClient{states: []Job{
		{Status: StatusSucceeded, FineTunedModel: "ft:x"},
	}}

	w := &Workflow{Client: client}
	_, err := w.Run(context.Background(), WorkflowParams{
		TrainingFile:   training,
		ValidationFile: filepath.Join(dir, "nope.jsonl"),
		Await:          fastAwait(),
		ResultsPath:    filepath.Join(dir, "results.json"),
	})
	require.NoError(t, err)
	require.Len(t, client.uploaded, 1)
	require.Empty(t, client.created[0].ValidationFileID)
}

func TestWorkflow_InvalidSmokeTestResponse(t *testing.T) {
	dir := t.TempDir()
	training := filepath.Join(dir, "train.jsonl")
	require.NoError(t, os.WriteFile(training, []byte("{}\n"), 0o644))

	client := &fakeClient{states: []Job{
		{Status: StatusSucceeded, FineTunedModel: "ft:x"},
	}}

	w := &Workflow{Client: client}
	result, err := w.Run(context.Background(), WorkflowParams{
		TrainingFile: training,
		Await:        fastAwait(),
		ResultsPath:  filepath.Join(dir, "results.json"),
		Test: func(ctx context.Context, model, prompt string) (string, error) {
			return "I cannot produce a configuration.", nil
		},
	})
	require.NoError(t, err)
	for _, tr := range result.TestResults {
		require.True(t, tr.Success)
		require.False(t, tr.ValidJSON)
	}
}
