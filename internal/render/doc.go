// Package render turns a built connectivity graph into output: a serializable
// Snapshot shared with the HTTP API, and tree, JSON and summary writers for
// the command line.
package render
