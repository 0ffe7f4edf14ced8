package builder

import (
	"context"

	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/vlnv"
)

// descend is the third pass: recurse into every instance whose active view
// is hierarchical.
func (s *buildState) descend(ctx context.Context, lv *level) {
	for _, p := range lv.order {
		if p.view == nil || !p.view.IsHierarchical() {
			continue
		}

		nestedConfig := s.nestedConfiguration(ctx, lv, p)
		nestedDesign := s.nestedDesign(ctx, lv, p, nestedConfig)
		if nestedDesign == nil {
			continue
		}

		if lv.depth+1 > s.maxDepth {
			s.report(lv, DepthLimit, p.name, "descending into %s would exceed the maximum depth of %d", nestedDesign.VLNV, s.maxDepth)
			continue
		}

		key := p.component.VLNV.String() + "#" + p.view.Name
		if !s.enter(lv, p, key) {
			continue
		}

		s.logger.Debug("Descending into nested design.",
			"path", displayPath(childPath(lv.path, p.name)),
			"design", nestedDesign.VLNV.String(),
			"depth", lv.depth+1,
		)
		s.expand(ctx, &level{
			design: nestedDesign,
			config: nestedConfig,
			path:   childPath(lv.path, p.name),
			depth:  lv.depth + 1,
			key:    key,
			top:    p,
		})
	}
}

// enter records the parent to child edge in the hierarchy guard. It refuses
// the descent when the edge would make the guard cyclic.
func (s *buildState) enter(lv *level, p *placed, key string) bool {
	if s.guard.HasNode(key) {
		if parents, err := s.guard.Parents(key); err == nil && len(parents) > 0 {
			s.logger.Debug("Expanding shared subtree again.",
				"path", displayPath(childPath(lv.path, p.name)),
				"key", key,
				"entered_from", parents,
			)
		}
	}
	s.guard.AddNode(key)
	if err := s.guard.AddEdge(lv.key, key); err != nil {
		s.report(lv, CyclicHierarchy, p.name, "%s instantiates itself through view %s", p.component.VLNV, p.view.Name)
		return false
	}
	if err := s.guard.DetectCycles(); err != nil {
		s.guard.RemoveEdge(lv.key, key)
		s.report(lv, CyclicHierarchy, p.name, "hierarchy loops back: %s", err)
		return false
	}
	return true
}

// nestedConfiguration resolves the design configuration referenced by the
// view's design configuration instantiation, if any.
func (s *buildState) nestedConfiguration(ctx context.Context, lv *level, p *placed) *design.Configuration {
	ref := p.view.DesignConfigurationInstantiationRef
	if ref == "" {
		return nil
	}
	dci, ok := p.component.DesignConfigurationInstantiation(ref)
	if !ok {
		s.report(lv, MissingInstantiation, p.name, "view %s references unknown design configuration instantiation %q", p.view.Name, ref)
		return nil
	}

	doc, ok := s.fetch(ctx, lv, p.name, dci.DesignConfigurationRef)
	if !ok {
		return nil
	}
	cfg, ok := design.AsConfiguration(doc)
	if !ok {
		s.report(lv, WrongDocumentKind, p.name, "%s is a %s, not a design configuration", dci.DesignConfigurationRef, doc.Kind())
		return nil
	}
	return cfg
}

// nestedDesign resolves the design a hierarchical view expands to: the
// view's design instantiation, else the design the nested configuration
// points at.
func (s *buildState) nestedDesign(ctx context.Context, lv *level, p *placed, cfg *design.Configuration) *design.Design {
	var ref vlnv.VLNV
	switch {
	case p.view.DesignInstantiationRef != "":
		di, ok := p.component.DesignInstantiation(p.view.DesignInstantiationRef)
		if !ok {
			s.report(lv, MissingInstantiation, p.name, "view %s references unknown design instantiation %q", p.view.Name, p.view.DesignInstantiationRef)
			return nil
		}
		ref = di.DesignRef
	case cfg != nil && !cfg.DesignRef.IsZero():
		ref = cfg.DesignRef
	default:
		return nil
	}

	doc, ok := s.fetch(ctx, lv, p.name, ref)
	if !ok {
		return nil
	}
	des, ok := design.AsDesign(doc)
	if !ok {
		s.report(lv, WrongDocumentKind, p.name, "%s is a %s, not a design", ref, doc.Kind())
		return nil
	}
	return des
}

func (s *buildState) fetch(ctx context.Context, lv *level, subject string, ref vlnv.VLNV) (design.Document, bool) {
	doc, ok := s.lib.Document(ctx, ref)
	if !ok || doc == nil {
		s.report(lv, MissingDocument, subject, "document %s not found", ref)
		return nil, false
	}
	return doc, true
}
