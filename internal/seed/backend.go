package seed

import (
	"context"
	"errors"
)

// ErrEmailExists is returned by an AccountService when the email is already registered
var ErrEmailExists = errors.New("email already in use")

// AccountService creates and authenticates email/password accounts
type AccountService interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

// DocumentStore is the subset of the document database the seeder writes through
type DocumentStore interface {
	// Set replaces the document at collection/id
	Set(ctx context.Context, collection, id string, data interface{}) error
	// Merge writes only the given fields, nested maps are merged key by key
	Merge(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Count returns the number of documents in a collection
	Count(ctx context.Context, collection string) (int, error)
	NewBatch() Batch
}

// Batch collects writes that are committed atomically
type Batch interface {
	// Create queues a new document and returns its generated id
	Create(collection string, data interface{}) string
	Len() int
	Commit(ctx context.Context) error
}
