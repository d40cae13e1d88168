// Package history keeps the most recent quotation results per client.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/cotizaexport/cotizaexport/internal/quote"
)

// DefaultLimit caps the stored sequence; oldest entries are evicted.
const DefaultLimit = 20

// Entry pairs an originating request with its report. ID is the creation
// timestamp in milliseconds.
type Entry struct {
	ID       int64                 `json:"id"`
	FormData quote.ShipmentRequest `json:"formData"`
	Result   quote.QuotationReport `json:"result"`
}

// Store persists entries in a per-client Redis list, newest first.
// Persistence failures are logged and swallowed so a storage outage never
// fails the quotation flow.
type Store struct {
	client *redis.Client
	logger *slog.Logger
	limit  int64
}

// NewStore constructs the store. A non-positive limit falls back to
// DefaultLimit.
func NewStore(client *redis.Client, logger *slog.Logger, limit int64) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{client: client, logger: logger, limit: limit}
}

func key(clientID string) string {
	return fmt.Sprintf("history:%s", clientID)
}

// Record prepends entry and truncates the list to the limit.
func (s *Store) Record(ctx context.Context, clientID string, entry Entry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("marshal history entry", slog.Any("error", err))
		return
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key(clientID), payload)
	pipe.LTrim(ctx, key(clientID), 0, s.limit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("persist history entry", slog.Any("error", err))
	}
}

// List returns the stored sequence, newest first. Storage failures
// degrade to an empty list.
func (s *Store) List(ctx context.Context, clientID string) []Entry {
	raw, err := s.client.LRange(ctx, key(clientID), 0, s.limit-1).Result()
	if err != nil && err != redis.Nil {
		s.logger.Error("read history", slog.Any("error", err))
		return []Entry{}
	}
	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			s.logger.Error("decode history entry", slog.Any("error", err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Clear empties the client's history.
func (s *Store) Clear(ctx context.Context, clientID string) {
	if err := s.client.Del(ctx, key(clientID)).Err(); err != nil {
		s.logger.Error("clear history", slog.Any("error", err))
	}
}
