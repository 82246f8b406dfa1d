package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/sahatech/clinic-seed/internal/config"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// clientOptions returns the credentials to use for server-side Google clients.
// Without a credentials file, application default credentials apply
// (and FIRESTORE_EMULATOR_HOST is honoured by the Firestore client).
func clientOptions(cfg config.Firebase) []option.ClientOption {
	if cfg.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile)}
}

// InitFirestore initializes the Firestore client for the configured project and database
func InitFirestore(ctx context.Context, cfg config.Firebase, log *zap.Logger) (*firestore.Client, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("%w: NEXT_PUBLIC_FIREBASE_PROJECT_ID", config.ErrMissingSetting)
	}
	databaseID := cfg.DatabaseID
	if databaseID == "" {
		databaseID = config.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, cfg.ProjectID, databaseID, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("connect to firestore: %w", err)
	}

	log.Info("Connected to Firestore",
		zap.String("project", cfg.ProjectID), zap.String("database", databaseID))
	return client, nil
}
