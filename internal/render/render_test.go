package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/specialistvlad/memgridgo/internal/builder"
	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGraph(t *testing.T) (*connectivity.Graph, builder.Diagnostics) {
	t.Helper()
	g := connectivity.NewGraph()

	cpu, dups := g.AddInstance(&connectivity.Component{
		Name: "cpu0",
		UUID: "u-cpu",
		VLNV: "acme:ip:cpu:1.0",
		Memories: []*connectivity.MemoryItem{{
			Name:       "as",
			Identifier: "acme.ip.cpu.1.0.u-cpu.cpu0.as",
			Type:       connectivity.AddressSpaceItem,
			Address:    "0",
			Range:      "4096",
			Width:      "32",
		}},
	})
	require.Empty(t, dups)
	mem, dups := g.AddInstance(&connectivity.Component{
		Name:       "mem0",
		VLNV:       "acme:ip:mem:1.0",
		ActiveView: "rtl",
		Memories: []*connectivity.MemoryItem{{
			Name:       "mm",
			Identifier: "acme.ip.mem.1.0..mem0.mm",
			Type:       connectivity.MemoryMapItem,
			Width:      "8",
			Children: []*connectivity.MemoryItem{{
				Name:       "ctrl",
				Identifier: "acme.ip.mem.1.0..mem0.mm.ctrl",
				Type:       connectivity.AddressBlockItem,
				Address:    "4096",
			}},
		}},
	})
	require.Empty(t, dups)

	m, _ := g.AddInterface(&connectivity.Interface{
		Name: "m", Mode: design.ModeMaster, BaseAddress: "'h0", Instance: cpu,
		Memory: "acme.ip.cpu.1.0.u-cpu.cpu0.as",
	})
	s, _ := g.AddInterface(&connectivity.Interface{
		Name: "s", Mode: design.ModeSlave, Instance: mem,
		Memory: "acme.ip.mem.1.0..mem0.mm",
	})
	g.Connect("bus", m, s)

	diags := builder.Diagnostics{{
		Kind:    builder.UnresolvedTarget,
		Subject: "bus",
		Message: "active interface mem1.s does not exist",
	}}
	return g, diags
}

func TestNewSnapshot(t *testing.T) {
	g, diags := sampleGraph(t)
	s := NewSnapshot("acme:soc:top:1.0", g, diags)

	assert.Equal(t, "acme:soc:top:1.0", s.Design)
	require.Len(t, s.Instances, 2)
	assert.Equal(t, "rtl", s.Instances[1].ActiveView)
	require.Len(t, s.Interfaces, 2)
	assert.Equal(t, "cpu0", s.Interfaces[0].Instance)
	assert.Equal(t, "mem0", s.Interfaces[1].Instance)
	assert.Equal(t, []Connection{{Name: "bus", From: "cpu0.m", To: "mem0.s"}}, s.Connections)
	require.Len(t, s.Diagnostics, 1)
	assert.Equal(t, builder.UnresolvedTarget, s.Diagnostics[0].Kind)
	assert.Equal(t, 3, s.MemoryItemCount())
}

func TestNewSnapshot_EmptyGraphEncodesEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, NewSnapshot("x:y:z:1", connectivity.NewGraph(), nil)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	for _, key := range []string{"instances", "interfaces", "connections", "diagnostics"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
}

func TestJSON(t *testing.T) {
	g, diags := sampleGraph(t)
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, NewSnapshot("acme:soc:top:1.0", g, diags)))

	var decoded struct {
		Instances []struct {
			Name     string `json:"name"`
			Memories []struct {
				Type     string `json:"type"`
				Children []struct {
					Type    string `json:"type"`
					Address string `json:"address"`
				} `json:"children"`
			} `json:"memories"`
		} `json:"instances"`
		Interfaces []struct {
			Mode string `json:"mode"`
		} `json:"interfaces"`
		Diagnostics []struct {
			Kind string `json:"kind"`
		} `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Len(t, decoded.Instances, 2)
	assert.Equal(t, "addressSpace", decoded.Instances[0].Memories[0].Type)
	assert.Equal(t, "memoryMap", decoded.Instances[1].Memories[0].Type)
	assert.Equal(t, "addressBlock", decoded.Instances[1].Memories[0].Children[0].Type)
	assert.Equal(t, "4096", decoded.Instances[1].Memories[0].Children[0].Address)
	assert.Equal(t, "master", decoded.Interfaces[0].Mode)
	assert.Equal(t, "UnresolvedTarget", decoded.Diagnostics[0].Kind)
}

func TestTree(t *testing.T) {
	g, diags := sampleGraph(t)
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, NewSnapshot("acme:soc:top:1.0", g, diags)))
	out := buf.String()

	for _, want := range []string{
		"acme:soc:top:1.0",
		"[acme:ip:cpu:1.0]  cpu0",
		"[master]  m base='h0 memory=acme.ip.cpu.1.0.u-cpu.cpu0.as",
		"[view]  rtl",
		"[addressBlock @4096]  ctrl",
		"[bus]  cpu0.m -> mem0.s",
		"[UnresolvedTarget]  <top> bus: active interface mem1.s does not exist",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSummary(t *testing.T) {
	g, diags := sampleGraph(t)
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, NewSnapshot("acme:soc:top:1.0", g, diags)))
	out := buf.String()

	assert.Contains(t, out, "design:       acme:soc:top:1.0\n")
	assert.Contains(t, out, "instances:    2\n")
	assert.Contains(t, out, "connections:  1\n")
	assert.Contains(t, out, "memory items: 3\n")
	assert.Contains(t, out, "  UnresolvedTarget: <top> bus: active interface mem1.s does not exist\n")
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Format
		wantErr  bool
	}{
		{"tree", FormatTree, false},
		{"JSON", FormatJSON, false},
		{" summary ", FormatSummary, false},
		{"yaml", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			f, err := ParseFormat(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("xml"), NewSnapshot("", connectivity.NewGraph(), nil))
	assert.ErrorContains(t, err, "unknown output format")
}
