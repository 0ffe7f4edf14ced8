package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/ctxlog"
	"github.com/specialistvlad/memgridgo/internal/dag"
	"github.com/specialistvlad/memgridgo/internal/design"
)

// buildState is owned by a single Build call.
type buildState struct {
	*Locator
	logger *slog.Logger
	graph  *connectivity.Graph
	guard  *dag.Graph
	diags  Diagnostics
}

// placed is an instance materialized at some level, with the bookkeeping the
// later passes need.
type placed struct {
	id        connectivity.InstanceID
	name      string
	component *design.Component
	view      *design.View
	// ifaces indexes this placement's own interfaces by name.
	ifaces map[string]connectivity.InterfaceID
}

// level is one design being expanded.
type level struct {
	design *design.Design
	config *design.Configuration
	path   string
	depth  int
	// key is this level's vertex in the hierarchy guard.
	key string
	// top is the enclosing instance, nil for the top design.
	top *placed
	// instances indexes the placements of this level by instance name.
	instances map[string]*placed
	order     []*placed
}

// Build walks des and returns the resulting graph together with every
// failure that was absorbed on the way. cfg may be nil. A nil design yields
// an empty graph.
func (l *Locator) Build(ctx context.Context, des *design.Design, cfg *design.Configuration) (*connectivity.Graph, Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	s := &buildState{
		Locator: l,
		logger:  logger,
		graph:   connectivity.NewGraph(),
		guard:   dag.New(),
	}

	if des == nil {
		logger.Debug("Build: no design given, returning empty graph.")
		return s.graph, nil
	}

	logger.Debug("Build: starting.", "design", des.VLNV.String(), "max_depth", l.maxDepth)
	root := &level{
		design: des,
		config: cfg,
		key:    "design:" + des.VLNV.String(),
	}
	s.guard.AddNode(root.key)
	s.expand(ctx, root)

	logger.Info("Build: graph construction complete.",
		"design", des.VLNV.String(),
		"instances", len(s.graph.Instances()),
		"interfaces", len(s.graph.Interfaces()),
		"connections", len(s.graph.Connections()),
		"diagnostics", len(s.diags),
	)
	return s.graph, s.diags
}

// expand runs the three passes for one level.
func (s *buildState) expand(ctx context.Context, lv *level) {
	logger := s.logger.With("path", displayPath(lv.path), "design", lv.design.VLNV.String())

	logger.Debug("Starting instance creation pass.", "instance_count", len(lv.design.ComponentInstances))
	s.createInstances(ctx, lv)
	logger.Debug("Finished instance creation pass.", "placed", len(lv.order))

	logger.Debug("Starting interconnection pass.", "interconnection_count", len(lv.design.Interconnections))
	s.linkInterconnections(lv)
	logger.Debug("Finished interconnection pass.")

	s.descend(ctx, lv)
}

func (s *buildState) report(lv *level, kind DiagnosticKind, subject, format string, args ...any) {
	d := Diagnostic{
		Kind:    kind,
		Path:    lv.path,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
	s.diags = append(s.diags, d)
	s.logger.Warn("Build: "+d.Message, "kind", kind.String(), "path", displayPath(lv.path), "subject", subject)
}

func displayPath(path string) string {
	if path == "" {
		return "<top>"
	}
	return path
}

func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
