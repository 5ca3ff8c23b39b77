package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvsrweb/internal/config"
	"hvsrweb/internal/model"
)

func newTestStore(ttl time.Duration, maxEntries int) *MemoryStore {
	return NewMemoryStore(config.SessionConfig{TTL: ttl, MaxEntries: maxEntries})
}

func TestMemoryStore_RecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute, 8)

	rec := &model.Record{
		ID:       "rec-1",
		Filename: "UT.STN11.A2_C150.miniseed",
		Format:   model.FormatMiniSEED,
		Data:     []byte{0x30, 0x30, 0x30},
	}
	require.NoError(t, store.PutRecord(ctx, rec))

	got, err := store.Record(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	_, err = store.Record(ctx, "rec-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CalculationRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute, 8)

	calc := &model.Calculation{
		ID:       "calc-1",
		Settings: model.DefaultSettings(),
		Result:   &model.Result{Frequency: []float64{0.2, 1, 20}},
	}
	require.NoError(t, store.PutCalculation(ctx, calc))

	got, err := store.Calculation(ctx, "calc-1")
	require.NoError(t, err)
	assert.Equal(t, calc, got)

	_, err = store.Calculation(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(20*time.Millisecond, 8)

	require.NoError(t, store.PutRecord(ctx, &model.Record{ID: "short-lived"}))

	_, err := store.Record(ctx, "short-lived")
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	_, err = store.Record(ctx, "short-lived")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_CapacityBound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute, 2)

	require.NoError(t, store.PutRecord(ctx, &model.Record{ID: "a"}))
	require.NoError(t, store.PutRecord(ctx, &model.Record{ID: "b"}))

	err := store.PutRecord(ctx, &model.Record{ID: "c"})
	assert.ErrorIs(t, err, ErrFull)

	// Overwriting a held key must not count against capacity.
	assert.NoError(t, store.PutRecord(ctx, &model.Record{ID: "a", Filename: "replaced"}))

	// Capacity frees up once entries expire or are deleted.
	require.NoError(t, store.DeleteRecord(ctx, "b"))
	assert.NoError(t, store.PutRecord(ctx, &model.Record{ID: "c"}))
}

func TestMemoryStore_CapacityReclaimsExpired(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(10*time.Millisecond, 1)

	require.NoError(t, store.PutRecord(ctx, &model.Record{ID: "a"}))
	time.Sleep(20 * time.Millisecond)

	// "a" is expired but unswept; the put must still succeed.
	assert.NoError(t, store.PutRecord(ctx, &model.Record{ID: "b"}))
}

func TestMemoryStore_Unbounded(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute, 0)

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		assert.NoError(t, store.PutRecord(ctx, &model.Record{ID: id}))
	}
}

func TestMemoryStore_RecordsAndCalculationsAreSeparate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(time.Minute, 4)

	require.NoError(t, store.PutRecord(ctx, &model.Record{ID: "shared-id"}))

	_, err := store.Calculation(ctx, "shared-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
