package connectivity

import "fmt"

// ItemType classifies a MemoryItem.
type ItemType int

const (
	AddressSpaceItem ItemType = iota + 1
	MemoryMapItem
	AddressBlockItem
	RegisterItem
	FieldItem
)

var itemTypeNames = map[ItemType]string{
	AddressSpaceItem: "addressSpace",
	MemoryMapItem:    "memoryMap",
	AddressBlockItem: "addressBlock",
	RegisterItem:     "register",
	FieldItem:        "field",
}

// String returns the canonical type name.
func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (t ItemType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ItemType) UnmarshalText(text []byte) error {
	for typ, name := range itemTypeNames {
		if name == string(text) {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown memory item type %q", text)
}

// MemoryItem is one node of a memory tree. Numeric attributes are decimal
// text; attributes that do not apply to the item type are empty.
//
// A child's Identifier is its parent's Identifier plus a dot-separated
// suffix. Register and field addresses are absolute; a field's Offset is its
// bit position inside the addressable unit at Address.
type MemoryItem struct {
	Name       string
	Identifier string
	Type       ItemType

	Address string
	Range   string
	Width   string
	Size    string
	Offset  string

	Children []*MemoryItem
}

// Walk visits the item and all of its descendants depth first, parents
// before children.
func (m *MemoryItem) Walk(fn func(*MemoryItem)) {
	if m == nil {
		return
	}
	fn(m)
	for _, child := range m.Children {
		child.Walk(fn)
	}
}

// Child returns the first direct child with the given name.
func (m *MemoryItem) Child(name string) (*MemoryItem, bool) {
	for _, c := range m.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
