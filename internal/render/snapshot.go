package render

import (
	"github.com/specialistvlad/memgridgo/internal/builder"
	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/design"
)

// Snapshot is a name-resolved copy of a graph and the diagnostics of the
// build that produced it.
type Snapshot struct {
	Design      string       `json:"design"`
	Instances   []Instance   `json:"instances"`
	Interfaces  []Interface  `json:"interfaces"`
	Connections []Connection `json:"connections"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

type Instance struct {
	Name       string    `json:"name"`
	UUID       string    `json:"uuid,omitempty"`
	VLNV       string    `json:"vlnv"`
	ActiveView string    `json:"activeView,omitempty"`
	Memories   []*Memory `json:"memories,omitempty"`
}

type Memory struct {
	Name       string                `json:"name"`
	Identifier string                `json:"identifier"`
	Type       connectivity.ItemType `json:"type"`
	Address    string                `json:"address,omitempty"`
	Range      string                `json:"range,omitempty"`
	Width      string                `json:"width,omitempty"`
	Size       string                `json:"size,omitempty"`
	Offset     string                `json:"offset,omitempty"`
	Children   []*Memory             `json:"children,omitempty"`
}

type Interface struct {
	Instance     string               `json:"instance"`
	Name         string               `json:"name"`
	Mode         design.InterfaceMode `json:"mode"`
	BaseAddress  string               `json:"baseAddress,omitempty"`
	RemapAddress string               `json:"remapAddress,omitempty"`
	Memory       string               `json:"memory,omitempty"`

	owner connectivity.InstanceID
}

// Connection names its endpoints as "instance.interface".
type Connection struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

type Diagnostic struct {
	Kind    builder.DiagnosticKind `json:"kind"`
	Path    string                 `json:"path,omitempty"`
	Subject string                 `json:"subject,omitempty"`
	Message string                 `json:"message"`
}

// NewSnapshot copies g and diags into a Snapshot. Slices are never nil so
// that empty collections encode as [].
func NewSnapshot(designName string, g *connectivity.Graph, diags builder.Diagnostics) *Snapshot {
	s := &Snapshot{
		Design:      designName,
		Instances:   make([]Instance, 0, len(g.Instances())),
		Interfaces:  make([]Interface, 0, len(g.Interfaces())),
		Connections: Connections(g, g.Connections()),
		Diagnostics: make([]Diagnostic, 0, len(diags)),
	}
	for _, c := range g.Instances() {
		inst := Instance{
			Name:       c.Name,
			UUID:       c.UUID,
			VLNV:       c.VLNV,
			ActiveView: c.ActiveView,
		}
		for _, m := range c.Memories {
			inst.Memories = append(inst.Memories, NewMemory(m))
		}
		s.Instances = append(s.Instances, inst)
	}
	for _, iface := range g.Interfaces() {
		s.Interfaces = append(s.Interfaces, NewInterface(g, iface))
	}
	for _, d := range diags {
		s.Diagnostics = append(s.Diagnostics, Diagnostic{
			Kind:    d.Kind,
			Path:    d.Path,
			Subject: d.Subject,
			Message: d.Message,
		})
	}
	return s
}

// NewMemory copies a memory item and its descendants.
func NewMemory(item *connectivity.MemoryItem) *Memory {
	if item == nil {
		return nil
	}
	m := &Memory{
		Name:       item.Name,
		Identifier: item.Identifier,
		Type:       item.Type,
		Address:    item.Address,
		Range:      item.Range,
		Width:      item.Width,
		Size:       item.Size,
		Offset:     item.Offset,
	}
	for _, child := range item.Children {
		m.Children = append(m.Children, NewMemory(child))
	}
	return m
}

func NewInterface(g *connectivity.Graph, iface *connectivity.Interface) Interface {
	return Interface{
		Instance:     g.InstanceOf(iface).Name,
		Name:         iface.Name,
		Mode:         iface.Mode,
		BaseAddress:  iface.BaseAddress,
		RemapAddress: iface.RemapAddress,
		Memory:       iface.Memory,
		owner:        iface.Instance,
	}
}

// Connections resolves the endpoints of conns against g.
func Connections(g *connectivity.Graph, conns []connectivity.Connection) []Connection {
	out := make([]Connection, 0, len(conns))
	for _, c := range conns {
		out = append(out, Connection{
			Name: c.Name,
			From: endpoint(g, c.From),
			To:   endpoint(g, c.To),
		})
	}
	return out
}

func endpoint(g *connectivity.Graph, id connectivity.InterfaceID) string {
	iface := g.InterfaceAt(id)
	return g.InstanceOf(iface).Name + "." + iface.Name
}

// MemoryItemCount counts every memory item below every instance.
func (s *Snapshot) MemoryItemCount() int {
	n := 0
	var count func(*Memory)
	count = func(m *Memory) {
		n++
		for _, c := range m.Children {
			count(c)
		}
	}
	for _, inst := range s.Instances {
		for _, m := range inst.Memories {
			count(m)
		}
	}
	return n
}
