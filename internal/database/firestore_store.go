package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/sahatech/clinic-seed/internal/seed"
	"google.golang.org/api/iterator"
)

// FirestoreStore writes seed documents to Firestore
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Set replaces the document at collection/id
func (s *FirestoreStore) Set(ctx context.Context, collection, id string, data interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Merge updates only the given fields, leaving the rest of the document untouched
func (s *FirestoreStore) Merge(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("merge %s/%s: %w", collection, id, err)
	}
	return nil
}

// Count walks the collection's document references
func (s *FirestoreStore) Count(ctx context.Context, collection string) (int, error) {
	iter := s.client.Collection(collection).Select().Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return count, fmt.Errorf("count %s: %w", collection, err)
		}
		count++
	}
	return count, nil
}

// NewBatch starts a write batch; document ids are generated client-side
func (s *FirestoreStore) NewBatch() seed.Batch {
	return &firestoreBatch{client: s.client, batch: s.client.Batch()}
}

type firestoreBatch struct {
	client *firestore.Client
	batch  *firestore.WriteBatch
	n      int
}

func (b *firestoreBatch) Create(collection string, data interface{}) string {
	ref := b.client.Collection(collection).NewDoc()
	b.batch.Set(ref, data)
	b.n++
	return ref.ID
}

func (b *firestoreBatch) Len() int {
	return b.n
}

// Commit writes the batch. Firestore rejects empty batches, so those are a no-op.
func (b *firestoreBatch) Commit(ctx context.Context) error {
	if b.n == 0 {
		return nil
	}
	if _, err := b.batch.Commit(ctx); err != nil {
		return err
	}
	return nil
}
