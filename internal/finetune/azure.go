package finetune

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lyneport/tlofgen/internal/llm"
)

// AzureClient implements Client on the OpenAI SDK, targeting an Azure
// OpenAI resource when an endpoint is configured.
type AzureClient struct {
	client *openai.Client
}

// NewAzureClient creates a fine-tuning client from LLM configuration.
// Deployment mapping is deliberately not applied: fine-tuning endpoints
// address base models, not deployments.
func NewAzureClient(cfg llm.OpenAIConfig) (*AzureClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	var config openai.ClientConfig
	if cfg.AzureEndpoint != "" {
		config = openai.DefaultAzureConfig(cfg.APIKey, cfg.AzureEndpoint)
		if cfg.AzureAPIVersion != "" {
			config.APIVersion = cfg.AzureAPIVersion
		}
	} else {
		config = openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			config.BaseURL = cfg.BaseURL
		}
	}

	return &AzureClient{client: openai.NewClientWithConfig(config)}, nil
}

func (c *AzureClient) UploadFile(ctx context.Context, path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxTrainingFileSize {
		return nil, fmt.Errorf("%s is %d bytes, over the %d byte limit",
			path, info.Size(), MaxTrainingFileSize)
	}

	f, err := c.client.CreateFile(ctx, openai.FileRequest{
		FileName: filepath.Base(path),
		FilePath: path,
		Purpose:  "fine-tune",
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", path, err)
	}
	return fileFromAPI(f), nil
}

func (c *AzureClient) ListFiles(ctx context.Context) ([]File, error) {
	resp, err := c.client.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	files := make([]File, 0, len(resp.Files))
	for _, f := range resp.Files {
		files = append(files, *fileFromAPI(f))
	}
	return files, nil
}

func (c *AzureClient) DeleteFile(ctx context.Context, fileID string) error {
	if err := c.client.DeleteFile(ctx, fileID); err != nil {
		return fmt.Errorf("delete file %s: %w", fileID, err)
	}
	return nil
}

func (c *AzureClient) CreateJob(ctx context.Context, req JobRequest) (*Job, error) {
	hp := req.Hyperparameters
	if hp == (Hyperparameters{}) {
		hp = DefaultHyperparameters()
	}

	job, err := c.client.CreateFineTuningJob(ctx, openai.FineTuningJobRequest{
		Model:          req.BaseModel,
		TrainingFile:   req.TrainingFileID,
		ValidationFile: req.ValidationFileID,
		Suffix:         req.Suffix,
		Hyperparameters: &openai.Hyperparameters{
			Epochs:                 hp.Epochs,
			BatchSize:              hp.BatchSize,
			LearningRateMultiplier: hp.LRMultiplier,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create fine-tuning job: %w", err)
	}
	return jobFromAPI(job), nil
}

func (c *AzureClient) GetJob(ctx context.Context, jobID string) (*Job, error) {
	job, err := c.client.RetrieveFineTuningJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("retrieve job %s: %w", jobID, err)
	}
	return jobFromAPI(job), nil
}

func (c *AzureClient) CancelJob(ctx context.Context, jobID string) (*Job, error) {
	job, err := c.client.CancelFineTuningJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("cancel job %s: %w", jobID, err)
	}
	return jobFromAPI(job), nil
}

func fileFromAPI(f openai.File) *File {
	return &File{
		ID:      f.ID,
		Name:    f.FileName,
		Bytes:   f.Bytes,
		Purpose: f.Purpose,
		Status:  f.Status,
	}
}

func jobFromAPI(j openai.FineTuningJob) *Job {
	job := &Job{
		ID:             j.ID,
		BaseModel:      j.Model,
		Status:         j.Status,
		FineTunedModel: j.FineTunedModel,
		TrainedTokens:  j.TrainedTokens,
	}
	return job
}
