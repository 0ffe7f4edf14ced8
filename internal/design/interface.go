package design

import "context"

// Loader is the interface for a format-specific document loader.
type Loader interface {
	// Load reads every document found under the given paths and translates
	// them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) ([]Document, error)
}
