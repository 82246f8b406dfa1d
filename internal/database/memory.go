package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/sahatech/clinic-seed/internal/seed"
)

// MemoryStore is an in-process document store used for dry runs and tests.
// Documents are kept as JSON-shaped maps, so field names follow the json tags.
type MemoryStore struct {
	mu     sync.Mutex
	docs   map[string]map[string]map[string]interface{}
	nextID int
	// FailCommit, when set, is returned by the next batch commit instead of writing
	FailCommit error
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]map[string]interface{})}
}

// Set replaces the document at collection/id
func (m *MemoryStore) Set(ctx context.Context, collection, id string, data interface{}) error {
	fields, err := toFields(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collection(collection)[id] = fields
	return nil
}

// Merge writes the given fields onto the document, creating it if needed
func (m *MemoryStore) Merge(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	patch, err := toFields(fields)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	col := m.collection(collection)
	doc, ok := col[id]
	if !ok {
		doc = make(map[string]interface{})
		col[id] = doc
	}
	mergeFields(doc, patch)
	return nil
}

// Count returns the number of documents in a collection
func (m *MemoryStore) Count(ctx context.Context, collection string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[collection]), nil
}

// NewBatch starts a batch whose writes become visible together on commit
func (m *MemoryStore) NewBatch() seed.Batch {
	return &memoryBatch{store: m}
}

// Get decodes the document at collection/id into dst
func (m *MemoryStore) Get(collection, id string, dst interface{}) error {
	m.mu.Lock()
	doc, ok := m.docs[collection][id]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// IDs returns the document ids of a collection in sorted order
func (m *MemoryStore) IDs(collection string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.docs[collection]))
	for id := range m.docs[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (m *MemoryStore) collection(name string) map[string]map[string]interface{} {
	col, ok := m.docs[name]
	if !ok {
		col = make(map[string]map[string]interface{})
		m.docs[name] = col
	}
	return col
}

func (m *MemoryStore) newID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	return fmt.Sprintf("doc%06d", m.nextID)
}

type memoryWrite struct {
	collection string
	id         string
	data       interface{}
}

type memoryBatch struct {
	store  *MemoryStore
	writes []memoryWrite
}

func (b *memoryBatch) Create(collection string, data interface{}) string {
	id := b.store.newID()
	b.writes = append(b.writes, memoryWrite{collection: collection, id: id, data: data})
	return id
}

func (b *memoryBatch) Len() int {
	return len(b.writes)
}

func (b *memoryBatch) Commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	staged := make([]map[string]interface{}, len(b.writes))
	for i, w := range b.writes {
		fields, err := toFields(w.data)
		if err != nil {
			return err
		}
		staged[i] = fields
	}

	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	if err := b.store.FailCommit; err != nil {
		b.store.FailCommit = nil
		return err
	}
	for i, w := range b.writes {
		b.store.collection(w.collection)[w.id] = staged[i]
	}
	return nil
}

func toFields(data interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("document must be an object: %w", err)
	}
	return fields, nil
}

// mergeFields copies patch onto doc, descending into nested maps like a Firestore merge-all write
func mergeFields(doc, patch map[string]interface{}) {
	for k, v := range patch {
		nested, ok := v.(map[string]interface{})
		if !ok {
			doc[k] = v
			continue
		}
		existing, ok := doc[k].(map[string]interface{})
		if !ok {
			existing = make(map[string]interface{})
			doc[k] = existing
		}
		mergeFields(existing, nested)
	}
}
