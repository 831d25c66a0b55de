package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/kvstore"
)

// Slot binds one typed in-memory value to a key in the durable store. Reads
// that find nothing, or find a snapshot that no longer decodes, fall back to
// the initial value; writes are best-effort. A failed write leaves the
// in-memory value in place, so memory and disk can diverge until the next
// successful write. Slots carry no lock of their own: the owning Store
// serializes every mutation.
type Slot[T any] struct {
	key    string
	kv     kvstore.Store
	logger zerolog.Logger
	value  T
}

// BindSlot loads the previously persisted value for key, or falls back to
// initial when the key is absent or its snapshot is corrupt.
func BindSlot[T any](ctx context.Context, kv kvstore.Store, key string, initial T, logger zerolog.Logger) *Slot[T] {
	slot := &Slot[T]{
		key:    key,
		kv:     kv,
		logger: logger.With().Str("slot", key).Logger(),
		value:  initial,
	}

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		slot.logger.Warn().Err(err).Msg("durable read failed, using default value")
		return slot
	}
	if !ok {
		return slot
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		slot.logger.Warn().Err(err).Msg("snapshot is corrupt, using default value")
		return slot
	}

	slot.value = decoded
	return slot
}

// Get returns the current in-memory value.
func (s *Slot[T]) Get() T {
	return s.value
}

// Replace swaps in the new value and synchronously persists it.
func (s *Slot[T]) Replace(ctx context.Context, value T) {
	s.value = value

	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to serialize snapshot")
		return
	}

	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist snapshot")
	}
}

// Update applies fn to the current value and replaces it with the result.
func (s *Slot[T]) Update(ctx context.Context, fn func(T) T) T {
	next := fn(s.value)
	s.Replace(ctx, next)
	return next
}
