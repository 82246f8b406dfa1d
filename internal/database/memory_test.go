package database

import (
	"context"
	"errors"
	"testing"

	"github.com/sahatech/clinic-seed/internal/config"
	"github.com/sahatech/clinic-seed/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemoryStoreSetAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, models.CollectionUsers, "u1", models.UserProfile{
		Name:  "فاطمة الزهراء",
		Email: "receptionist@sahatech.com",
		Role:  models.RoleReceptionist,
	}))

	var got models.UserProfile
	require.NoError(t, store.Get(models.CollectionUsers, "u1", &got))
	assert.Equal(t, models.RoleReceptionist, got.Role)
	assert.Empty(t, got.Contacts)

	err := store.Get(models.CollectionUsers, "missing", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMergeKeepsExistingFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "users", "u1", map[string]interface{}{
		"name":     "old",
		"email":    "a@b.c",
		"contacts": map[string]interface{}{"u2": true},
	}))

	require.NoError(t, store.Merge(ctx, "users", "u1", map[string]interface{}{
		"name":     "new",
		"contacts": map[string]interface{}{"u3": true},
	}))

	var got models.UserProfile
	require.NoError(t, store.Get("users", "u1", &got))
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "a@b.c", got.Email)
	assert.Equal(t, map[string]bool{"u2": true, "u3": true}, got.Contacts)
}

func TestMemoryStoreMergeCreatesDocument(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Merge(context.Background(), "users", "u9", map[string]interface{}{"role": "admin"}))

	n, err := store.Count(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMemoryBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	batch := store.NewBatch()
	a := batch.Create(models.CollectionDoctors, models.Doctor{Name: "a"})
	b := batch.Create(models.CollectionPatients, models.Patient{Name: "b"})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, batch.Len())

	n, _ := store.Count(ctx, models.CollectionDoctors)
	assert.Zero(t, n, "writes must not be visible before commit")

	require.NoError(t, batch.Commit(ctx))
	assert.Equal(t, []string{a}, store.IDs(models.CollectionDoctors))
	assert.Equal(t, []string{b}, store.IDs(models.CollectionPatients))
}

func TestMemoryBatchCommitFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.FailCommit = errors.New("unavailable")

	batch := store.NewBatch()
	batch.Create(models.CollectionDoctors, models.Doctor{Name: "a"})
	require.Error(t, batch.Commit(ctx))
	assert.Empty(t, store.IDs(models.CollectionDoctors))

	// the injected failure is one-shot
	batch = store.NewBatch()
	batch.Create(models.CollectionDoctors, models.Doctor{Name: "a"})
	require.NoError(t, batch.Commit(ctx))
	assert.Len(t, store.IDs(models.CollectionDoctors), 1)
}

func TestMemoryRecorder(t *testing.T) {
	rec := &MemoryRecorder{}
	require.NoError(t, rec.RecordRun(context.Background(), models.SeedRun{RunID: "r1", Doctors: 3}))

	runs := rec.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].Doctors)
}

func TestInitDatabaseMemory(t *testing.T) {
	d, err := InitDatabase(context.Background(), nil, Memory, zap.NewNop())
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, Memory, d.Type)
	assert.Same(t, d.MemoryStore, d.Store)
	assert.NotNil(t, d.Recorder())
}

func TestInitRealtimeDisabledWithoutURL(t *testing.T) {
	_, err := InitRealtime(context.Background(), config.Firebase{ProjectID: "clinic-dev"})
	assert.ErrorIs(t, err, ErrRealtimeDisabled)
}
