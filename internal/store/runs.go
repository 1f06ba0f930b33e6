package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// FinetuneRun is a locally recorded fine-tuning job. The remote service
// owns the job; this record lets the CLI list and refresh runs it
// started without a remote list endpoint.
type FinetuneRun struct {
	JobID          string
	BaseModel      string
	TrainingFile   string
	ValidationFile string
	Status         string
	FineTunedModel string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RunRepo manages fine-tuning run records.
type RunRepo interface {
	// SaveRun inserts a new run record.
	SaveRun(ctx context.Context, run FinetuneRun) error

	// UpdateRunStatus updates status and fine-tuned model for a job.
	UpdateRunStatus(ctx context.Context, jobID, status, fineTunedModel string) error

	// ListRuns returns all recorded runs, newest first.
	ListRuns(ctx context.Context) ([]FinetuneRun, error)

	// GetRun returns one run by job ID, or nil if not found.
	GetRun(ctx context.Context, jobID string) (*FinetuneRun, error)
}

type runRepo struct {
	db *sql.DB
}

func (r *runRepo) SaveRun(ctx context.Context, run FinetuneRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO finetune_runs
			(job_id, base_model, training_file, validation_file, status, fine_tuned_model)
		VALUES (?, ?, ?, ?, ?, ?)`,
		run.JobID, run.BaseModel, run.TrainingFile, run.ValidationFile,
		run.Status, run.FineTunedModel)
	if err != nil {
		return fmt.Errorf("insert finetune run: %w", err)
	}
	return nil
}

func (r *runRepo) UpdateRunStatus(ctx context.Context, jobID, status, fineTunedModel string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE finetune_runs
		SET status = ?, fine_tuned_model = ?,
		    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE job_id = ?`,
		status, fineTunedModel, jobID)
	if err != nil {
		return fmt.Errorf("update finetune run %s: %w", jobID, err)
	}
	return nil
}

const runColumns = `job_id, base_model, training_file, validation_file,
	status, fine_tuned_model, created_at, updated_at`

func (r *runRepo) ListRuns(ctx context.Context) ([]FinetuneRun, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+runColumns+" FROM finetune_runs ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("query finetune runs: %w", err)
	}
	defer rows.Close()

	var runs []FinetuneRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (r *runRepo) GetRun(ctx context.Context, jobID string) (*FinetuneRun, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+runColumns+" FROM finetune_runs WHERE job_id = ?", jobID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return run, err
}

func scanRun(s scanner) (*FinetuneRun, error) {
	var run FinetuneRun
	var created, updated string
	err := s.Scan(&run.JobID, &run.BaseModel, &run.TrainingFile,
		&run.ValidationFile, &run.Status, &run.FineTunedModel,
		&created, &updated)
	if err != nil {
		return nil, err
	}
	if t, perr := time.Parse("2006-01-02T15:04:05.999Z", created); perr == nil {
		run.CreatedAt = t
	}
	if t, perr := time.Parse("2006-01-02T15:04:05.999Z", updated); perr == nil {
		run.UpdatedAt = t
	}
	return &run, nil
}
