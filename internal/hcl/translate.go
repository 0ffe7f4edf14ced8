package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/schema"
	"github.com/specialistvlad/memgridgo/internal/vlnv"
)

// translator converts the schema structs of one file into the design model,
// accumulating diagnostics instead of stopping at the first problem.
type translator struct {
	src  []byte
	errs hcl.Diagnostics
}

func (t *translator) errorf(rng hcl.Range, summary, format string, args ...any) {
	t.errs = append(t.errs, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  rng.Ptr(),
	})
}

func (t *translator) ref(raw, what string) vlnv.VLNV {
	if raw == "" {
		return vlnv.VLNV{}
	}
	v, err := vlnv.Parse(raw)
	if err != nil {
		t.errorf(hcl.Range{}, "Invalid "+what, "%s", err)
	}
	return v
}

// component translates a component block.
func (t *translator) component(s *schema.Component) *design.Component {
	c := &design.Component{VLNV: t.ref(s.VLNV, "component vlnv")}

	for _, bi := range s.BusInterfaces {
		mode, ok := design.ParseInterfaceMode(bi.Mode)
		if !ok {
			t.errorf(hcl.Range{}, "Invalid interface mode", "bus interface %q has unknown mode %q", bi.Name, bi.Mode)
		}
		c.BusInterfaces = append(c.BusInterfaces, &design.BusInterface{
			Name:            bi.Name,
			Mode:            mode,
			AddressSpaceRef: bi.AddressSpaceRef,
			MemoryMapRef:    bi.MemoryMapRef,
			BaseAddress:     t.text(bi.BaseAddress),
			RemapAddresses:  t.textList(bi.RemapAddresses),
		})
	}
	for _, ch := range s.Channels {
		c.Channels = append(c.Channels, &design.Channel{Name: ch.Name, Interfaces: ch.Interfaces})
	}
	for _, as := range s.AddressSpaces {
		c.AddressSpaces = append(c.AddressSpaces, &design.AddressSpace{
			Name:  as.Name,
			Range: t.text(as.Range),
			Width: t.text(as.Width),
		})
	}
	for _, mm := range s.MemoryMaps {
		m := &design.MemoryMap{
			Name:            mm.Name,
			AddressUnitBits: t.text(mm.AddressUnitBits),
			Blocks:          t.blocks(mm.Blocks),
		}
		for _, r := range mm.Remaps {
			m.Remaps = append(m.Remaps, &design.MemoryRemap{
				Name:       r.Name,
				RemapState: r.RemapState,
				Blocks:     t.blocks(r.Blocks),
			})
		}
		c.MemoryMaps = append(c.MemoryMaps, m)
	}
	for _, v := range s.Views {
		c.Views = append(c.Views, &design.View{
			Name:                                v.Name,
			DesignInstantiationRef:              v.DesignInstantiationRef,
			DesignConfigurationInstantiationRef: v.DesignConfigurationInstantiationRef,
		})
	}
	for _, di := range s.DesignInstantiations {
		c.DesignInstantiations = append(c.DesignInstantiations, &design.DesignInstantiation{
			Name:      di.Name,
			DesignRef: t.ref(di.DesignRef, "design reference"),
		})
	}
	for _, dci := range s.DesignConfigurationInstantiations {
		c.DesignConfigurationInstantiations = append(c.DesignConfigurationInstantiations, &design.DesignConfigurationInstantiation{
			Name:                   dci.Name,
			DesignConfigurationRef: t.ref(dci.DesignConfigurationRef, "design configuration reference"),
		})
	}
	return c
}

func (t *translator) blocks(in []*schema.AddressBlock) []*design.AddressBlock {
	out := make([]*design.AddressBlock, 0, len(in))
	for _, b := range in {
		block := &design.AddressBlock{
			Name:        b.Name,
			BaseAddress: t.text(b.BaseAddress),
			Range:       t.text(b.Range),
			Width:       t.text(b.Width),
			IsPresent:   t.text(b.IsPresent),
		}
		for _, r := range b.Registers {
			reg := &design.Register{
				Name:          r.Name,
				AddressOffset: t.text(r.AddressOffset),
				Size:          t.text(r.Size),
				Dimension:     t.text(r.Dimension),
				IsPresent:     t.text(r.IsPresent),
			}
			for _, f := range r.Fields {
				reg.Fields = append(reg.Fields, &design.Field{
					Name:      f.Name,
					BitOffset: t.text(f.BitOffset),
					BitWidth:  t.text(f.BitWidth),
					IsPresent: t.text(f.IsPresent),
				})
			}
			block.Registers = append(block.Registers, reg)
		}
		out = append(out, block)
	}
	return out
}

// design translates a design block.
func (t *translator) design(s *schema.Design) *design.Design {
	d := &design.Design{VLNV: t.ref(s.VLNV, "design vlnv")}
	for _, ci := range s.ComponentInstances {
		d.ComponentInstances = append(d.ComponentInstances, &design.ComponentInstance{
			Name:         ci.Name,
			UUID:         ci.UUID,
			ComponentRef: t.ref(ci.ComponentRef, "component reference"),
		})
	}
	for _, ic := range s.Interconnections {
		conn := &design.Interconnection{Name: ic.Name}
		if ic.Start != nil {
			conn.Start = design.ActiveInterface{ComponentRef: ic.Start.ComponentRef, BusRef: ic.Start.BusRef}
		}
		for _, ai := range ic.ActiveInterfaces {
			conn.ActiveInterfaces = append(conn.ActiveInterfaces, design.ActiveInterface{
				ComponentRef: ai.ComponentRef,
				BusRef:       ai.BusRef,
			})
		}
		for _, hi := range ic.HierInterfaces {
			conn.HierInterfaces = append(conn.HierInterfaces, design.HierInterface{BusRef: hi.BusRef})
		}
		d.Interconnections = append(d.Interconnections, conn)
	}
	return d
}

// configuration translates a design_configuration block.
func (t *translator) configuration(s *schema.Configuration) *design.Configuration {
	c := &design.Configuration{
		VLNV:        t.ref(s.VLNV, "design configuration vlnv"),
		DesignRef:   t.ref(s.DesignRef, "design reference"),
		ActiveViews: make(map[string]string, len(s.ViewConfigurations)),
	}
	for _, vc := range s.ViewConfigurations {
		c.ActiveViews[vc.Instance] = vc.View
	}
	return c
}
