package builder

import "github.com/specialistvlad/memgridgo/internal/connectivity"

// linkInterconnections is the second pass: join each interconnection's start
// interface to its targets. A target that does not resolve is skipped; an
// unresolved start drops the whole interconnection.
func (s *buildState) linkInterconnections(lv *level) {
	for _, ic := range lv.design.Interconnections {
		start, ok := lv.lookup(ic.Start.ComponentRef, ic.Start.BusRef)
		if !ok {
			s.report(lv, UnresolvedStart, ic.Name, "start interface %s.%s does not exist", ic.Start.ComponentRef, ic.Start.BusRef)
			continue
		}

		for _, ai := range ic.ActiveInterfaces {
			target, ok := lv.lookup(ai.ComponentRef, ai.BusRef)
			if !ok {
				s.report(lv, UnresolvedTarget, ic.Name, "active interface %s.%s does not exist", ai.ComponentRef, ai.BusRef)
				continue
			}
			s.graph.Connect(ic.Name, start, target)
		}

		for _, hi := range ic.HierInterfaces {
			if lv.top == nil {
				s.report(lv, UnresolvedTarget, ic.Name, "hierarchical interface %s has no enclosing instance", hi.BusRef)
				continue
			}
			target, ok := lv.top.ifaces[hi.BusRef]
			if !ok {
				s.report(lv, UnresolvedTarget, ic.Name, "hierarchical interface %s.%s does not exist", lv.top.name, hi.BusRef)
				continue
			}
			s.graph.Connect(ic.Name, start, target)
		}
	}
}

func (lv *level) lookup(instance, bus string) (connectivity.InterfaceID, bool) {
	p, ok := lv.instances[instance]
	if !ok {
		return 0, false
	}
	id, ok := p.ifaces[bus]
	return id, ok
}
