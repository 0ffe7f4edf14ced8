package builder

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/design"
)

// defaultAddressUnitBits applies when a memory map's unit resolves to 0.
const defaultAddressUnitBits = 8

// addressSpaceTag prefixes the last identifier segment of an address space
// so that a space never shares an identifier with a map of the same name.
const addressSpaceTag = "space:"

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

// memoryRoot is the identifier prefix shared by every top-level memory item
// of an instance: the component VLNV with periods for colons, then the
// instance uuid and name.
func memoryRoot(inst *design.ComponentInstance, comp *design.Component) string {
	return strings.Join([]string{comp.VLNV.DotString(), inst.UUID, inst.Name}, ".")
}

// present applies the presence rule: no condition, or one resolving to 1.
func (s *buildState) present(cond string) bool {
	return cond == "" || s.res.Resolve(cond) == 1
}

// memories builds the top-level memory items of an instance: address spaces
// first, then memory maps.
func (s *buildState) memories(lv *level, inst *design.ComponentInstance, comp *design.Component) []*connectivity.MemoryItem {
	root := memoryRoot(inst, comp)
	items := make([]*connectivity.MemoryItem, 0, len(comp.AddressSpaces)+len(comp.MemoryMaps))

	for _, as := range comp.AddressSpaces {
		items = append(items, &connectivity.MemoryItem{
			Name:       as.Name,
			Identifier: root + "." + addressSpaceTag + as.Name,
			Type:       connectivity.AddressSpaceItem,
			Address:    "0",
			Range:      itoa(s.res.Resolve(as.Range)),
			Width:      itoa(s.res.Resolve(as.Width)),
		})
	}
	for _, mm := range comp.MemoryMaps {
		items = append(items, s.memoryMap(lv, inst.Name, root, mm))
	}
	return items
}

func (s *buildState) memoryMap(lv *level, instance, root string, mm *design.MemoryMap) *connectivity.MemoryItem {
	aub := s.res.Resolve(mm.AddressUnitBits)
	if aub == 0 {
		aub = defaultAddressUnitBits
	}

	item := &connectivity.MemoryItem{
		Name:       mm.Name,
		Identifier: root + "." + mm.Name,
		Type:       connectivity.MemoryMapItem,
		Width:      itoa(aub),
	}
	for _, b := range mm.Blocks {
		if s.present(b.IsPresent) {
			item.Children = append(item.Children, s.addressBlock(lv, instance, item.Identifier, b, aub))
		}
	}

	// Remapped blocks hang off the base map but are identified under the
	// remap's own name.
	for _, remap := range mm.Remaps {
		remapID := root + "." + remap.Name
		for _, b := range remap.Blocks {
			if s.present(b.IsPresent) {
				item.Children = append(item.Children, s.addressBlock(lv, instance, remapID, b, aub))
			}
		}
	}
	return item
}

func (s *buildState) addressBlock(lv *level, instance, parentID string, b *design.AddressBlock, aub int64) *connectivity.MemoryItem {
	base := s.res.Resolve(b.BaseAddress)
	item := &connectivity.MemoryItem{
		Name:       b.Name,
		Identifier: parentID + "." + b.Name,
		Type:       connectivity.AddressBlockItem,
		Address:    itoa(base),
		Range:      itoa(s.res.Resolve(b.Range)),
		Width:      itoa(s.res.Resolve(b.Width)),
	}
	for _, r := range b.Registers {
		if s.present(r.IsPresent) {
			item.Children = append(item.Children, s.registers(lv, instance, item.Identifier, base, r, aub)...)
		}
	}
	return item
}

// registers expands one register declaration into one item per dimension
// element. Elements are packed back to back, each advancing the address by
// its size in addressable units. Every element keeps the register's name;
// the [i] suffix goes on the identifier only.
func (s *buildState) registers(lv *level, instance, blockID string, blockBase int64, r *design.Register, aub int64) []*connectivity.MemoryItem {
	count := int64(1)
	if r.Dimension != "" {
		if dim := s.res.Resolve(r.Dimension); dim > 0 {
			count = dim
		}
	}
	if count > s.maxRegisterElements {
		s.report(lv, DimensionLimit, instance, "register %s.%s declares %d elements, only the first %d are built",
			blockID, r.Name, count, s.maxRegisterElements)
		count = s.maxRegisterElements
	}

	size := s.res.Resolve(r.Size)
	addr := blockBase + s.res.Resolve(r.AddressOffset)

	var items []*connectivity.MemoryItem
	for i := int64(0); i < count; i++ {
		ident := blockID + "." + r.Name
		if r.Dimension != "" {
			ident += "[" + itoa(i) + "]"
		}
		reg := &connectivity.MemoryItem{
			Name:       r.Name,
			Identifier: ident,
			Type:       connectivity.RegisterItem,
			Address:    itoa(addr),
			Size:       itoa(size),
		}
		for _, f := range r.Fields {
			if s.present(f.IsPresent) {
				reg.Children = append(reg.Children, s.field(reg.Identifier, addr, f, aub))
			}
		}
		items = append(items, reg)
		addr += size / aub
	}
	return items
}

func (s *buildState) field(regID string, regAddr int64, f *design.Field, aub int64) *connectivity.MemoryItem {
	bitOffset := s.res.Resolve(f.BitOffset)
	return &connectivity.MemoryItem{
		Name:       f.Name,
		Identifier: regID + "." + f.Name,
		Type:       connectivity.FieldItem,
		Address:    itoa(regAddr + bitOffset/aub),
		Offset:     itoa(bitOffset % aub),
		Width:      itoa(s.res.Resolve(f.BitWidth)),
	}
}
