// Package server exposes a built connectivity graph over a read-only HTTP
// API. The graph is immutable once built, so handlers read it without
// locking.
package server
