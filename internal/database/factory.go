package database

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"firebase.google.com/go/v4/db"
	"github.com/sahatech/clinic-seed/internal/config"
	"github.com/sahatech/clinic-seed/internal/seed"
	"go.uber.org/zap"
)

type Backend string

const (
	Firestore Backend = "firestore"
	Memory    Backend = "memory"
)

type Database struct {
	Type            Backend
	Store           seed.DocumentStore
	FirestoreClient *firestore.Client
	MemoryStore     *MemoryStore
	RealtimeClient  *db.Client
	memoryRecorder  *MemoryRecorder
}

// InitDatabase opens the document store for the chosen backend.
// The realtime database is opened alongside Firestore when a database URL is configured.
func InitDatabase(ctx context.Context, cfg *config.Config, backend Backend, log *zap.Logger) (*Database, error) {
	d := &Database{Type: backend}

	switch backend {
	case Memory:
		d.MemoryStore = NewMemoryStore()
		d.Store = d.MemoryStore
		d.memoryRecorder = &MemoryRecorder{}
		log.Info("Using in-memory document store")
	case Firestore:
		fallthrough
	default:
		d.Type = Firestore
		client, err := InitFirestore(ctx, cfg.Firebase, log)
		if err != nil {
			return nil, err
		}
		d.FirestoreClient = client
		d.Store = NewFirestoreStore(client)

		rt, err := InitRealtime(ctx, cfg.Firebase)
		switch {
		case errors.Is(err, ErrRealtimeDisabled):
			log.Info("Realtime database not configured")
		case err != nil:
			client.Close()
			return nil, err
		default:
			d.RealtimeClient = rt
			log.Info("Realtime database handle ready", zap.String("url", cfg.Firebase.DatabaseURL))
		}
	}

	return d, nil
}

// Recorder returns where run summaries go, or nil when there is nowhere to keep them
func (d *Database) Recorder() seed.RunRecorder {
	if d.memoryRecorder != nil {
		return d.memoryRecorder
	}
	if d.RealtimeClient != nil {
		return NewRealtimeRecorder(d.RealtimeClient)
	}
	return nil
}

// Close closes the active database connection
func (d *Database) Close() error {
	if d.FirestoreClient != nil {
		return d.FirestoreClient.Close()
	}
	return nil
}
