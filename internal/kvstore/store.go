package kvstore

import "context"

// Store is the durable string-keyed persistence boundary behind the portal
// state. Values are serialized collection snapshots. Implementations must
// treat a missing key as (value="", ok=false, err=nil) so callers can fall
// back to their defaults.
type Store interface {
	// Get returns the value stored under key, or ok=false when absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
