package history

import (
	"context"

	"github.com/cotizaexport/cotizaexport/internal/quote"
)

// Recorder adapts Store to the quotation service's recording hook.
type Recorder struct {
	store *Store
}

// NewRecorder constructs the adapter.
func NewRecorder(store *Store) Recorder {
	return Recorder{store: store}
}

// Record stores one successful result; failures stay inside the store.
func (r Recorder) Record(ctx context.Context, clientID string, id int64, req quote.ShipmentRequest, report quote.QuotationReport) {
	r.store.Record(ctx, clientID, Entry{ID: id, FormData: req, Result: report})
}
