package design

import "github.com/specialistvlad/memgridgo/internal/vlnv"

// Component is the format-agnostic representation of a component document.
type Component struct {
	VLNV vlnv.VLNV

	BusInterfaces []*BusInterface
	Channels      []*Channel
	AddressSpaces []*AddressSpace
	MemoryMaps    []*MemoryMap
	Views         []*View

	DesignInstantiations              []*DesignInstantiation
	DesignConfigurationInstantiations []*DesignConfigurationInstantiation
}

// BusInterface is one declared bus interface of a component.
type BusInterface struct {
	Name string
	Mode InterfaceMode

	// AddressSpaceRef and MemoryMapRef name the memory the interface exposes.
	AddressSpaceRef string
	MemoryMapRef    string

	// BaseAddress is only meaningful for master interfaces.
	BaseAddress string
	// RemapAddresses is only meaningful for mirrored-slave interfaces.
	RemapAddresses []string
}

// Channel ties interfaces of the same component together.
type Channel struct {
	Name       string
	Interfaces []string
}

// AddressSpace is a master-side addressable region.
type AddressSpace struct {
	Name  string
	Range string
	Width string
}

// MemoryMap is a slave-side register/memory decomposition.
type MemoryMap struct {
	Name            string
	AddressUnitBits string
	Blocks          []*AddressBlock
	Remaps          []*MemoryRemap
}

// MemoryRemap is an alternate decomposition of a memory map's region.
type MemoryRemap struct {
	Name       string
	RemapState string
	Blocks     []*AddressBlock
}

// AddressBlock is a contiguous range inside a memory map.
type AddressBlock struct {
	Name        string
	BaseAddress string
	Range       string
	Width       string
	IsPresent   string
	Registers   []*Register
}

// Register is a register declaration inside an address block. An empty
// Dimension means the register is not an array.
type Register struct {
	Name          string
	AddressOffset string
	Size          string
	Dimension     string
	IsPresent     string
	Fields        []*Field
}

// Field is a bit field of a register.
type Field struct {
	Name      string
	BitOffset string
	BitWidth  string
	IsPresent string
}

// View is one implementation view of a component. A view that references a
// design or design configuration instantiation is hierarchical.
type View struct {
	Name                                string
	DesignInstantiationRef              string
	DesignConfigurationInstantiationRef string
}

// IsHierarchical reports whether the view refers to a nested design.
func (v *View) IsHierarchical() bool {
	return v.DesignInstantiationRef != "" || v.DesignConfigurationInstantiationRef != ""
}

// DesignInstantiation binds a name to a design reference.
type DesignInstantiation struct {
	Name      string
	DesignRef vlnv.VLNV
}

// DesignConfigurationInstantiation binds a name to a design configuration reference.
type DesignConfigurationInstantiation struct {
	Name                   string
	DesignConfigurationRef vlnv.VLNV
}

// View looks up a view by name.
func (c *Component) View(name string) (*View, bool) {
	for _, v := range c.Views {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// DesignInstantiation looks up a design instantiation by name.
func (c *Component) DesignInstantiation(name string) (*DesignInstantiation, bool) {
	for _, di := range c.DesignInstantiations {
		if di.Name == name {
			return di, true
		}
	}
	return nil, false
}

// DesignConfigurationInstantiation looks up a design configuration
// instantiation by name.
func (c *Component) DesignConfigurationInstantiation(name string) (*DesignConfigurationInstantiation, bool) {
	for _, dci := range c.DesignConfigurationInstantiations {
		if dci.Name == name {
			return dci, true
		}
	}
	return nil, false
}

// Design is the format-agnostic representation of a design document.
type Design struct {
	VLNV               vlnv.VLNV
	ComponentInstances []*ComponentInstance
	Interconnections   []*Interconnection
}

// ComponentInstance places a component inside a design.
type ComponentInstance struct {
	Name         string
	UUID         string
	ComponentRef vlnv.VLNV
}

// Interconnection wires a start interface to active (same level) and
// hierarchical (enclosing level) interfaces.
type Interconnection struct {
	Name             string
	Start            ActiveInterface
	ActiveInterfaces []ActiveInterface
	HierInterfaces   []HierInterface
}

// ActiveInterface references a bus interface of an instance at the same level.
type ActiveInterface struct {
	ComponentRef string
	BusRef       string
}

// HierInterface references a bus interface of the enclosing component.
type HierInterface struct {
	BusRef string
}

// Configuration is the format-agnostic representation of a design
// configuration document.
type Configuration struct {
	VLNV      vlnv.VLNV
	DesignRef vlnv.VLNV
	// ActiveViews maps instance names to the selected view name.
	ActiveViews map[string]string
}

// ActiveView returns the view selected for an instance, or "" when the
// configuration does not override it. Safe to call on a nil configuration.
func (c *Configuration) ActiveView(instanceName string) string {
	if c == nil {
		return ""
	}
	return c.ActiveViews[instanceName]
}
