package history

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotizaexport/cotizaexport/internal/quote"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(client, slog.Default(), DefaultLimit)
}

func entryWithID(id int64) Entry {
	return Entry{
		ID: id,
		FormData: quote.ShipmentRequest{
			Product:    fmt.Sprintf("producto-%d", id),
			TariffCode: "0804.40.00.00",
			Incoterms:  []quote.Incoterm{quote.IncotermFOB},
		},
		Result: quote.QuotationReport{
			Quotations: []quote.QuotationRow{{Incoterm: quote.IncotermFOB, Freight: quote.FreightMaritime, TotalCost: float64(id)}},
		},
	}
}

func TestRecordCapsAtTwentyNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := int64(1); i <= 21; i++ {
		store.Record(ctx, "client-1", entryWithID(i))
	}

	entries := store.List(ctx, "client-1")
	require.Len(t, entries, 20)
	assert.Equal(t, int64(21), entries[0].ID)
	assert.Equal(t, int64(2), entries[19].ID)

	// Entry 1 was evicted.
	for _, e := range entries {
		assert.NotEqual(t, int64(1), e.ID)
	}
}

func TestListEmptyWhenNothingRecorded(t *testing.T) {
	store := newTestStore(t)

	entries := store.List(context.Background(), "client-1")
	assert.Empty(t, entries)
}

func TestListIsPerClient(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Record(ctx, "client-1", entryWithID(1))
	store.Record(ctx, "client-2", entryWithID(2))

	require.Len(t, store.List(ctx, "client-1"), 1)
	require.Len(t, store.List(ctx, "client-2"), 1)
	assert.Equal(t, int64(1), store.List(ctx, "client-1")[0].ID)
}

func TestClearEmptiesTheStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Record(ctx, "client-1", entryWithID(1))
	store.Record(ctx, "client-1", entryWithID(2))
	store.Clear(ctx, "client-1")

	assert.Empty(t, store.List(ctx, "client-1"))
}

func TestRecordSurvivesStorageOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(client, slog.Default(), DefaultLimit)
	mr.Close()

	// Must log and swallow, never panic or error out.
	store.Record(context.Background(), "client-1", entryWithID(1))
	assert.Empty(t, store.List(context.Background(), "client-1"))
	store.Clear(context.Background(), "client-1")
}

func TestRoundTripPreservesEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := entryWithID(7)
	store.Record(ctx, "client-1", in)

	entries := store.List(ctx, "client-1")
	require.Len(t, entries, 1)
	assert.Equal(t, in, entries[0])
}
