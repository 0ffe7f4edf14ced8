package builder

import (
	"context"

	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/design"
)

// createInstances is the first pass: place every component instance of the
// level along with its memories, interfaces and channel edges.
func (s *buildState) createInstances(ctx context.Context, lv *level) {
	lv.instances = make(map[string]*placed, len(lv.design.ComponentInstances))

	for _, inst := range lv.design.ComponentInstances {
		doc, ok := s.fetch(ctx, lv, inst.Name, inst.ComponentRef)
		if !ok {
			continue
		}
		comp, ok := design.AsComponent(doc)
		if !ok {
			s.report(lv, WrongDocumentKind, inst.Name, "%s is a %s, not a component", inst.ComponentRef, doc.Kind())
			continue
		}

		view := s.activeView(lv, inst.Name, comp)
		node := &connectivity.Component{
			Name:     inst.Name,
			UUID:     inst.UUID,
			VLNV:     comp.VLNV.String(),
			Memories: s.memories(lv, inst, comp),
		}
		if view != nil {
			node.ActiveView = view.Name
		}

		id, dups := s.graph.AddInstance(node)
		for _, ident := range dups {
			s.report(lv, DuplicateIdentifier, inst.Name, "memory identifier %s is already in use", ident)
		}

		p := &placed{
			id:        id,
			name:      inst.Name,
			component: comp,
			view:      view,
			ifaces:    make(map[string]connectivity.InterfaceID, len(comp.BusInterfaces)),
		}
		s.createInterfaces(lv, p, node)
		s.linkChannels(lv, p)

		if _, exists := lv.instances[inst.Name]; !exists {
			lv.instances[inst.Name] = p
		}
		lv.order = append(lv.order, p)
		s.logger.Debug("Placed component instance.",
			"path", displayPath(childPath(lv.path, inst.Name)),
			"component", node.VLNV,
			"view", node.ActiveView,
			"interfaces", len(p.ifaces),
		)
	}
}

// activeView picks the configuration's override, else the only view.
func (s *buildState) activeView(lv *level, instance string, comp *design.Component) *design.View {
	if name := lv.config.ActiveView(instance); name != "" {
		v, ok := comp.View(name)
		if !ok {
			s.report(lv, UnknownView, instance, "configuration selects view %q which %s does not declare", name, comp.VLNV)
			return nil
		}
		return v
	}

	switch len(comp.Views) {
	case 0:
		return nil
	case 1:
		return comp.Views[0]
	default:
		s.report(lv, AmbiguousView, instance, "%s declares %d views and none is selected", comp.VLNV, len(comp.Views))
		return nil
	}
}
