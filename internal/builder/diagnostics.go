package builder

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies an absorbed build failure.
type DiagnosticKind int

const (
	// MissingDocument: a referenced document is not in the repository.
	MissingDocument DiagnosticKind = iota + 1
	// WrongDocumentKind: a reference resolved to a document of another kind.
	WrongDocumentKind
	// UnresolvedStart: an interconnection's start interface does not exist.
	UnresolvedStart
	// UnresolvedTarget: an interconnection target does not exist.
	UnresolvedTarget
	// UnresolvedChannel: a channel names an interface the component lacks.
	UnresolvedChannel
	// AmbiguousView: several views and no configuration override.
	AmbiguousView
	// UnknownView: the configuration selects a view the component lacks.
	UnknownView
	// MissingInstantiation: a view names an instantiation the component lacks.
	MissingInstantiation
	// CyclicHierarchy: descending would re-enter a (component, view) pair.
	CyclicHierarchy
	// DepthLimit: descending would exceed the configured depth.
	DepthLimit
	// MissingRemapAddress: a mirrored-slave interface declares no remap address.
	MissingRemapAddress
	// DuplicateInterface: an (instance, interface) name pair is registered twice.
	DuplicateInterface
	// DuplicateIdentifier: two memory items share an identifier.
	DuplicateIdentifier
	// DimensionLimit: a register array was truncated to the configured size.
	DimensionLimit
)

var kindNames = map[DiagnosticKind]string{
	MissingDocument:      "MissingDocument",
	WrongDocumentKind:    "WrongDocumentKind",
	UnresolvedStart:      "UnresolvedStart",
	UnresolvedTarget:     "UnresolvedTarget",
	UnresolvedChannel:    "UnresolvedChannel",
	AmbiguousView:        "AmbiguousView",
	UnknownView:          "UnknownView",
	MissingInstantiation: "MissingInstantiation",
	CyclicHierarchy:      "CyclicHierarchy",
	DepthLimit:           "DepthLimit",
	MissingRemapAddress:  "MissingRemapAddress",
	DuplicateInterface:   "DuplicateInterface",
	DuplicateIdentifier:  "DuplicateIdentifier",
	DimensionLimit:       "DimensionLimit",
}

func (k DiagnosticKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k DiagnosticKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Diagnostic describes one absorbed failure.
type Diagnostic struct {
	Kind DiagnosticKind
	// Path is the slash-separated instance path of the level the failure
	// occurred at; empty for the top design.
	Path string
	// Subject names the element that was skipped.
	Subject string
	Message string
}

func (d Diagnostic) String() string {
	path := d.Path
	if path == "" {
		path = "<top>"
	}
	return fmt.Sprintf("%s at %s: %s: %s", d.Kind, path, d.Subject, d.Message)
}

// Diagnostics is the ordered list of failures absorbed by one build.
type Diagnostics []Diagnostic

// OfKind returns the diagnostics of the given kind.
func (ds Diagnostics) OfKind(kind DiagnosticKind) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Has reports whether any diagnostic of the given kind was recorded.
func (ds Diagnostics) Has(kind DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func (ds Diagnostics) String() string {
	lines := make([]string, 0, len(ds))
	for _, d := range ds {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}
