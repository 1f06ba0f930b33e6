package finetune

import (
	"context"
	"fmt"
	"math"
	"time"
)

// AwaitConfig controls polling while waiting for a job to finish.
type AwaitConfig struct {
	// InitialInterval is the wait before the second poll. Default: 10s.
	InitialInterval time.Duration

	// MaxInterval caps the backoff. Default: 2m.
	MaxInterval time.Duration

	// Multiplier grows the interval each poll. Default: 1.5.
	Multiplier float64

	// Timeout bounds the whole wait. Default: 4h.
	Timeout time.Duration

	// OnPoll, when set, is called after each poll with the job state.
	OnPoll func(job *Job)
}

func (c AwaitConfig) withDefaults() AwaitConfig {
	if c.InitialInterval <= 0 {
		c.InitialInterval = 10 * time.Second
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 2 * time.Minute
	}
	if c.Multiplier <= 1 {
		c.Multiplier = 1.5
	}
	if c.Timeout <= 0 {
		c.Timeout = 4 * time.Hour
	}
	return c
}

// ErrJobFailed reports a job that reached a terminal non-success state.
type ErrJobFailed struct {
	JobID  string
	Status string
	Reason string
}

func (e *ErrJobFailed) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fine-tuning job %s %s: %s", e.JobID, e.Status, e.Reason)
	}
	return fmt.Sprintf("fine-tuning job %s %s", e.JobID, e.Status)
}

// Await polls a job until it reaches a terminal state. It returns the
// fine-tuned model name on success, an ErrJobFailed on failed or
// cancelled jobs, and the context error when cancelled or timed out.
// Polls back off exponentially from InitialInterval up to MaxInterval.
func Await(ctx context.Context, client Client, jobID string, cfg AwaitConfig) (string, error) {
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	for attempt := 0; ; attempt++ {
		job, err := client.GetJob(ctx, jobID)
		if err != nil {
			return "", err
		}
		if cfg.OnPoll != nil {
			cfg.OnPoll(job)
		}

		switch job.Status {
		case StatusSucceeded:
			if job.FineTunedModel == "" {
				return "", &ErrJobFailed{
					JobID:  jobID,
					Status: job.Status,
					Reason: "no fine-tuned model name reported",
				}
			}
			return job.FineTunedModel, nil
		case StatusFailed, StatusCancelled:
			return "", &ErrJobFailed{JobID: jobID, Status: job.Status, Reason: job.Error}
		}

		wait := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt))
		if wait > float64(cfg.MaxInterval) {
			wait = float64(cfg.MaxInterval)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(wait)):
		}
	}
}
