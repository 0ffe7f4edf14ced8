package connectivity

import "github.com/specialistvlad/memgridgo/internal/design"

// InstanceID indexes a Component in its Graph.
type InstanceID int

// InterfaceID indexes an Interface in its Graph.
type InterfaceID int

// Component is one placed component instance.
type Component struct {
	Name       string
	UUID       string
	VLNV       string
	ActiveView string
	// Memories holds the top-level memory items: address spaces first, then
	// memory maps, in declaration order.
	Memories []*MemoryItem
}

// Memory returns the top-level memory item with the given name and type.
func (c *Component) Memory(name string, typ ItemType) (*MemoryItem, bool) {
	for _, m := range c.Memories {
		if m.Name == name && m.Type == typ {
			return m, true
		}
	}
	return nil, false
}

// Interface is one bus interface of a placed instance.
type Interface struct {
	Name string
	Mode design.InterfaceMode
	// BaseAddress is set for master interfaces only, verbatim.
	BaseAddress string
	// RemapAddress is set for mirrored-slave interfaces only, verbatim.
	RemapAddress string

	Instance InstanceID
	// Memory is the identifier of the connected memory item, or empty.
	Memory string
}

// Connection is a directed edge between two interfaces.
type Connection struct {
	Name string
	From InterfaceID
	To   InterfaceID
}
