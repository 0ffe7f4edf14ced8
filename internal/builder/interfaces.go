package builder

import (
	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/design"
)

// createInterfaces materializes the bus interfaces of a placed instance and
// links each to the memory it references.
func (s *buildState) createInterfaces(lv *level, p *placed, node *connectivity.Component) {
	for _, bi := range p.component.BusInterfaces {
		iface := &connectivity.Interface{
			Name:     bi.Name,
			Mode:     bi.Mode,
			Instance: p.id,
			Memory:   linkedMemory(node, bi),
		}

		switch bi.Mode {
		case design.ModeMaster:
			iface.BaseAddress = bi.BaseAddress
		case design.ModeMirroredSlave:
			if len(bi.RemapAddresses) == 0 {
				s.report(lv, MissingRemapAddress, p.name+"."+bi.Name, "mirrored-slave interface declares no remap address")
			} else {
				iface.RemapAddress = bi.RemapAddresses[0]
			}
		}

		id, fresh := s.graph.AddInterface(iface)
		if !fresh {
			s.report(lv, DuplicateInterface, p.name+"."+bi.Name, "interface name already registered for instance %s", p.name)
		}
		if _, exists := p.ifaces[bi.Name]; !exists {
			p.ifaces[bi.Name] = id
		}
	}
}

// linkedMemory returns the identifier of the top-level item the interface
// references: its address space if it names one, else its memory map. The
// item must exist on the instance with the matching kind.
func linkedMemory(node *connectivity.Component, bi *design.BusInterface) string {
	name, typ := bi.MemoryMapRef, connectivity.MemoryMapItem
	if bi.AddressSpaceRef != "" {
		name, typ = bi.AddressSpaceRef, connectivity.AddressSpaceItem
	}
	if name == "" {
		return ""
	}
	if item, ok := node.Memory(name, typ); ok {
		return item.Identifier
	}
	return ""
}
