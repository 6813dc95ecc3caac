package output

import "context"

// PreferenceStore is a durable key -> string store for per-visitor UI
// preferences. The resolver writes the chosen locale under a fixed key and
// reads it back during detection.
type PreferenceStore interface {
	// Get returns the stored value for key, or ok=false when absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
