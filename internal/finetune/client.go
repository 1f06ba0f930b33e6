package finetune

import "context"

// MaxTrainingFileSize is the upload cap enforced by the fine-tuning
// service for training files.
const MaxTrainingFileSize = 100 * 1024 * 1024

// Default hyperparameters for TLOF fine-tuning runs.
const (
	DefaultEpochs       = 3
	DefaultBatchSize    = 1
	DefaultLRMultiplier = 0.1
)

// Job statuses reported by the fine-tuning service.
const (
	StatusPending    = "pending"
	StatusQueued     = "queued"
	StatusValidating = "validating_files"
	StatusRunning    = "running"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusCancelled  = "cancelled"
)

// Terminal reports whether a job status is final.
func Terminal(status string) bool {
	switch status {
	case StatusSucceeded, StatusFailed, StatusCancelled:
		return true
	}
	return false
}

// File is an uploaded training or validation file.
type File struct {
	ID      string
	Name    string
	Bytes   int
	Purpose string
	Status  string
}

// Hyperparameters configures a fine-tuning job.
type Hyperparameters struct {
	Epochs       int
	BatchSize    int
	LRMultiplier float64
}

// DefaultHyperparameters returns the standard TLOF training settings.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		Epochs:       DefaultEpochs,
		BatchSize:    DefaultBatchSize,
		LRMultiplier: DefaultLRMultiplier,
	}
}

// JobRequest describes a fine-tuning job to create.
type JobRequest struct {
	BaseModel        string
	TrainingFileID   string
	ValidationFileID string // optional
	Hyperparameters  Hyperparameters
	Suffix           string // optional model name suffix
}

// Job is the remote service's view of a fine-tuning job.
type Job struct {
	ID             string
	BaseModel      string
	Status         string
	FineTunedModel string // set once succeeded
	TrainedTokens  int
	Error          string // set on failure
}

// Client is the remote fine-tuning service surface the workflow needs.
type Client interface {
	// UploadFile uploads a JSONL training file and returns its file ID.
	// Files over MaxTrainingFileSize are rejected before upload.
	UploadFile(ctx context.Context, path string) (*File, error)

	// ListFiles returns all files owned by the account.
	ListFiles(ctx context.Context) ([]File, error)

	// DeleteFile removes an uploaded file.
	DeleteFile(ctx context.Context, fileID string) error

	// CreateJob starts a fine-tuning job.
	CreateJob(ctx context.Context, req JobRequest) (*Job, error)

	// GetJob fetches the current state of a job.
	GetJob(ctx context.Context, jobID string) (*Job, error)

	// CancelJob requests cancellation of a running job.
	CancelJob(ctx context.Context, jobID string) (*Job, error)
}
