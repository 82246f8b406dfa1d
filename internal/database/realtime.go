package database

import (
	"context"
	"fmt"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"github.com/sahatech/clinic-seed/internal/config"
	"github.com/sahatech/clinic-seed/internal/models"
)

const seedRunsPath = "seedRuns"

// InitRealtime opens the project's Realtime Database
func InitRealtime(ctx context.Context, cfg config.Firebase) (*db.Client, error) {
	if cfg.DatabaseURL == "" {
		return nil, ErrRealtimeDisabled
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		DatabaseURL:   cfg.DatabaseURL,
		StorageBucket: cfg.StorageBucket,
	}, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to realtime database: %w", err)
	}
	return client, nil
}

// RealtimeRecorder keeps run summaries under seedRuns/<runId>
type RealtimeRecorder struct {
	client *db.Client
}

func NewRealtimeRecorder(client *db.Client) *RealtimeRecorder {
	return &RealtimeRecorder{client: client}
}

func (r *RealtimeRecorder) RecordRun(ctx context.Context, run models.SeedRun) error {
	if err := r.client.NewRef(seedRunsPath+"/"+run.RunID).Set(ctx, run); err != nil {
		return fmt.Errorf("record run %s: %w", run.RunID, err)
	}
	return nil
}

// MemoryRecorder keeps run summaries in memory
type MemoryRecorder struct {
	mu   sync.Mutex
	runs []models.SeedRun
}

func (r *MemoryRecorder) RecordRun(ctx context.Context, run models.SeedRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
	return nil
}

// Runs returns the recorded summaries in order
func (r *MemoryRecorder) Runs() []models.SeedRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SeedRun(nil), r.runs...)
}
