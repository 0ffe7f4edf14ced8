package testutil

// SoC VLNVs of the SoCFiles fixture.
const (
	SoCDesign        = "acme:soc:top:1.0"
	SoCConfiguration = "acme:soc:top.cfg:1.0"
)

// SoCFiles is a small two-level system: a cpu and a ram at the top, and a
// peripheral subsystem whose hierarchical view holds a uart wired out
// through the subsystem's ext interface. The ram's block range depends on
// the WORDS parameter.
func SoCFiles() map[string]string {
	return map[string]string{
		"lib/ip/cpu.hcl": `
component "acme:ip:cpu:1.0" {
  bus_interface "m0" {
    mode              = "master"
    address_space_ref = "as0"
    base_address      = "'h0"
  }
  address_space "as0" {
    range = "4G"
    width = 32
  }
  view "rtl" {}
}
`,
		"lib/ip/ram.hcl": `
component "acme:ip:ram:1.0" {
  bus_interface "s0" {
    mode           = "slave"
    memory_map_ref = "mm"
  }
  memory_map "mm" {
    address_unit_bits = 8
    address_block "data" {
      base_address = "'h8000_0000"
      range        = "WORDS * 4"
      width        = 32
    }
  }
}
`,
		"lib/ip/uart.hcl": `
component "acme:ip:uart:2.0" {
  bus_interface "s" {
    mode           = "slave"
    memory_map_ref = "regs"
  }
  memory_map "regs" {
    address_block "ctrl" {
      base_address = "'h1000"
      register "data" {
        address_offset = "'h0"
        size           = 32
        dimension      = 2
        field "rx" {
          bit_offset = 8
          bit_width  = 8
        }
      }
    }
  }
  view "rtl" {}
  view "gate" {}
}
`,
		"lib/ip/periph.hcl": `
component "acme:ip:periph:1.0" {
  bus_interface "ext" {
    mode = "mirroredSlave"
    remap_addresses = ["'h4000_0000"]
  }
  view "rtl" {}
  view "hier" {
    design_instantiation_ref               = "di"
    design_configuration_instantiation_ref = "dci"
  }
  design_instantiation "di" {
    design_ref = "acme:ip:periph.design:1.0"
  }
  design_configuration_instantiation "dci" {
    design_configuration_ref = "acme:ip:periph.cfg:1.0"
  }
}

design "acme:ip:periph.design:1.0" {
  component_instance "uart0" {
    component_ref = "acme:ip:uart:2.0"
    uuid          = "9f0c3a1e-5b7d-4e2a-8c61-2d4f7a9b0e13"
  }
  interconnection "up" {
    start {
      component_ref = "uart0"
      bus_ref       = "s"
    }
    hier_interface {
      bus_ref = "ext"
    }
  }
}

design_configuration "acme:ip:periph.cfg:1.0" {
  design_ref = "acme:ip:periph.design:1.0"
  view_configuration "uart0" {
    view = "rtl"
  }
}
`,
		"soc/top.hcl": `
design "acme:soc:top:1.0" {
  component_instance "cpu0" {
    component_ref = "acme:ip:cpu:1.0"
    uuid          = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
  }
  component_instance "ram0" {
    component_ref = "acme:ip:ram:1.0"
    uuid          = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
  }
  component_instance "periph0" {
    component_ref = "acme:ip:periph:1.0"
    uuid          = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
  }
  interconnection "mem_bus" {
    start {
      component_ref = "cpu0"
      bus_ref       = "m0"
    }
    active_interface {
      component_ref = "ram0"
      bus_ref       = "s0"
    }
  }
  interconnection "io_bus" {
    start {
      component_ref = "cpu0"
      bus_ref       = "m0"
    }
    active_interface {
      component_ref = "periph0"
      bus_ref       = "ext"
    }
  }
}

design_configuration "acme:soc:top.cfg:1.0" {
  design_ref = "acme:soc:top:1.0"
  view_configuration "periph0" {
    view = "hier"
  }
}
`,
	}
}
