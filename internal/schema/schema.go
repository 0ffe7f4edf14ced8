// Package schema holds the gohcl decoding targets for the HCL document
// format. The structs mirror the block layout one to one; translation into
// the format-agnostic model lives in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// File is the root of every HCL file. A file may mix document kinds.
type File struct {
	Components     []*Component     `hcl:"component,block"`
	Designs        []*Design        `hcl:"design,block"`
	Configurations []*Configuration `hcl:"design_configuration,block"`
	Remain         hcl.Body         `hcl:",remain"`
}

// --- Component ---

// Component represents a `component "vlnv" {}` block.
type Component struct {
	VLNV string `hcl:"vlnv,label"`

	BusInterfaces []*BusInterface `hcl:"bus_interface,block"`
	Channels      []*Channel      `hcl:"channel,block"`
	AddressSpaces []*AddressSpace `hcl:"address_space,block"`
	MemoryMaps    []*MemoryMap    `hcl:"memory_map,block"`
	Views         []*View         `hcl:"view,block"`

	DesignInstantiations              []*DesignInstantiation              `hcl:"design_instantiation,block"`
	DesignConfigurationInstantiations []*DesignConfigurationInstantiation `hcl:"design_configuration_instantiation,block"`
}

// BusInterface represents a `bus_interface "name" {}` block.
type BusInterface struct {
	Name            string         `hcl:"name,label"`
	Mode            string         `hcl:"mode"`
	AddressSpaceRef string         `hcl:"address_space_ref,optional"`
	MemoryMapRef    string         `hcl:"memory_map_ref,optional"`
	BaseAddress     hcl.Expression `hcl:"base_address,optional"`
	RemapAddresses  hcl.Expression `hcl:"remap_addresses,optional"`
}

// Channel represents a `channel "name" {}` block.
type Channel struct {
	Name       string   `hcl:"name,label"`
	Interfaces []string `hcl:"interfaces"`
}

// AddressSpace represents an `address_space "name" {}` block.
type AddressSpace struct {
	Name  string         `hcl:"name,label"`
	Range hcl.Expression `hcl:"range,optional"`
	Width hcl.Expression `hcl:"width,optional"`
}

// MemoryMap represents a `memory_map "name" {}` block.
type MemoryMap struct {
	Name            string          `hcl:"name,label"`
	AddressUnitBits hcl.Expression  `hcl:"address_unit_bits,optional"`
	Blocks          []*AddressBlock `hcl:"address_block,block"`
	Remaps          []*MemoryRemap  `hcl:"remap,block"`
}

// MemoryRemap represents a `remap "name" {}` block inside a memory map.
type MemoryRemap struct {
	Name       string          `hcl:"name,label"`
	RemapState string          `hcl:"remap_state,optional"`
	Blocks     []*AddressBlock `hcl:"address_block,block"`
}

// AddressBlock represents an `address_block "name" {}` block.
type AddressBlock struct {
	Name        string         `hcl:"name,label"`
	BaseAddress hcl.Expression `hcl:"base_address,optional"`
	Range       hcl.Expression `hcl:"range,optional"`
	Width       hcl.Expression `hcl:"width,optional"`
	IsPresent   hcl.Expression `hcl:"is_present,optional"`
	Registers   []*Register    `hcl:"register,block"`
}

// Register represents a `register "name" {}` block.
type Register struct {
	Name          string         `hcl:"name,label"`
	AddressOffset hcl.Expression `hcl:"address_offset,optional"`
	Size          hcl.Expression `hcl:"size,optional"`
	Dimension     hcl.Expression `hcl:"dimension,optional"`
	IsPresent     hcl.Expression `hcl:"is_present,optional"`
	Fields        []*Field       `hcl:"field,block"`
}

// Field represents a `field "name" {}` block.
type Field struct {
	Name      string         `hcl:"name,label"`
	BitOffset hcl.Expression `hcl:"bit_offset,optional"`
	BitWidth  hcl.Expression `hcl:"bit_width,optional"`
	IsPresent hcl.Expression `hcl:"is_present,optional"`
}

// View represents a `view "name" {}` block.
type View struct {
	Name                                string `hcl:"name,label"`
	DesignInstantiationRef              string `hcl:"design_instantiation_ref,optional"`
	DesignConfigurationInstantiationRef string `hcl:"design_configuration_instantiation_ref,optional"`
}

// DesignInstantiation represents a `design_instantiation "name" {}` block.
type DesignInstantiation struct {
	Name      string `hcl:"name,label"`
	DesignRef string `hcl:"design_ref"`
}

// DesignConfigurationInstantiation represents a
// `design_configuration_instantiation "name" {}` block.
type DesignConfigurationInstantiation struct {
	Name                   string `hcl:"name,label"`
	DesignConfigurationRef string `hcl:"design_configuration_ref"`
}

// --- Design ---

// Design represents a `design "vlnv" {}` block.
type Design struct {
	VLNV               string               `hcl:"vlnv,label"`
	ComponentInstances []*ComponentInstance `hcl:"component_instance,block"`
	Interconnections   []*Interconnection   `hcl:"interconnection,block"`
}

// ComponentInstance represents a `component_instance "name" {}` block.
type ComponentInstance struct {
	Name         string `hcl:"name,label"`
	ComponentRef string `hcl:"component_ref"`
	UUID         string `hcl:"uuid,optional"`
}

// Interconnection represents an `interconnection "name" {}` block.
type Interconnection struct {
	Name             string              `hcl:"name,label"`
	Start            *InterfaceRef       `hcl:"start,block"`
	ActiveInterfaces []*InterfaceRef     `hcl:"active_interface,block"`
	HierInterfaces   []*HierInterfaceRef `hcl:"hier_interface,block"`
}

// InterfaceRef is the body of `start` and `active_interface` blocks.
type InterfaceRef struct {
	ComponentRef string `hcl:"component_ref"`
	BusRef       string `hcl:"bus_ref"`
}

// HierInterfaceRef is the body of a `hier_interface` block.
type HierInterfaceRef struct {
	BusRef string `hcl:"bus_ref"`
}

// --- Design configuration ---

// Configuration represents a `design_configuration "vlnv" {}` block.
type Configuration struct {
	VLNV               string               `hcl:"vlnv,label"`
	DesignRef          string               `hcl:"design_ref,optional"`
	ViewConfigurations []*ViewConfiguration `hcl:"view_configuration,block"`
}

// ViewConfiguration represents a `view_configuration "instance" {}` block.
type ViewConfiguration struct {
	Instance string `hcl:"instance,label"`
	View     string `hcl:"view"`
}
