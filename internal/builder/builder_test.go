package builder

//go:generate mockgen -destination mock_repository_test.go -package $GOPACKAGE -write_package_comment=false github.com/specialistvlad/memgridgo/internal/repository Library
//go:generate mockgen -destination mock_expr_test.go -package $GOPACKAGE -write_package_comment=false github.com/specialistvlad/memgridgo/internal/expr Resolver

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/memgridgo/internal/connectivity"
	"github.com/specialistvlad/memgridgo/internal/ctxlog"
	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/expr"
	"github.com/specialistvlad/memgridgo/internal/repository"
	"github.com/specialistvlad/memgridgo/internal/vlnv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixture wires a real in-memory library and evaluator.
type fixture struct {
	t      *testing.T
	lib    *repository.Memory
	params map[string]string
}

func newFixture(t *testing.T, docs ...design.Document) *fixture {
	t.Helper()
	f := &fixture{t: t, lib: repository.NewMemory()}
	require.NoError(t, f.lib.AddAll(docs))
	return f
}

func (f *fixture) build(des *design.Design, cfg *design.Configuration, opts ...Option) (*connectivity.Graph, Diagnostics) {
	f.t.Helper()
	res, err := expr.NewEvaluator(f.params)
	require.NoError(f.t, err)
	return New(f.lib, res, opts...).Build(ctxlog.Discard(context.Background()), des, cfg)
}

func ref(raw string) vlnv.VLNV {
	return vlnv.MustParse(raw)
}

func instance(name, component, uuid string) *design.ComponentInstance {
	return &design.ComponentInstance{Name: name, ComponentRef: ref(component), UUID: uuid}
}

// connection is a name-resolved view of a graph edge for assertions.
type connection struct {
	Name     string
	From, To string
}

func connections(g *connectivity.Graph) []connection {
	out := make([]connection, 0, len(g.Connections()))
	name := func(id connectivity.InterfaceID) string {
		iface := g.InterfaceAt(id)
		return g.InstanceOf(iface).Name + "." + iface.Name
	}
	for _, c := range g.Connections() {
		out = append(out, connection{Name: c.Name, From: name(c.From), To: name(c.To)})
	}
	return out
}

func instanceNames(g *connectivity.Graph) []string {
	var names []string
	for _, c := range g.Instances() {
		names = append(names, c.Name)
	}
	return names
}

func kinds(ds Diagnostics) []DiagnosticKind {
	var out []DiagnosticKind
	for _, d := range ds {
		out = append(out, d.Kind)
	}
	return out
}

func TestBuild_NilDesign(t *testing.T) {
	f := newFixture(t)
	g, diags := f.build(nil, nil)
	require.NotNil(t, g)
	assert.Empty(t, g.Instances())
	assert.Empty(t, g.Interfaces())
	assert.Empty(t, g.Connections())
	assert.Empty(t, diags)
}

func TestBuild_WithoutLoggerInContext(t *testing.T) {
	f := newFixture(t, memComponent())
	l := New(f.lib, expr.MustNewEvaluator(nil))

	g, diags := l.Build(context.Background(), nil, nil)
	assert.Empty(t, g.Instances())
	assert.Empty(t, diags)

	g, diags = l.Build(context.Background(), &design.Design{
		VLNV:               ref("acme:soc:top:1.0"),
		ComponentInstances: []*design.ComponentInstance{instance("mem0", "acme:ip:mem:1.0", "u")},
	}, nil)
	assert.Len(t, g.Instances(), 1)
	assert.Empty(t, diags)
}

func TestBuild_EmptyDesign(t *testing.T) {
	f := newFixture(t)
	g, diags := f.build(&design.Design{VLNV: ref("acme:soc:empty:1.0")}, nil)
	assert.Empty(t, g.Instances())
	assert.Empty(t, diags)
}

func TestBuild_MissingAndWrongDocuments(t *testing.T) {
	notAComponent := &design.Design{VLNV: ref("acme:ip:imposter:1.0")}
	f := newFixture(t, notAComponent)

	top := &design.Design{
		VLNV: ref("acme:soc:top:1.0"),
		ComponentInstances: []*design.ComponentInstance{
			instance("ghost", "acme:ip:ghost:1.0", "u1"),
			instance("fake", "acme:ip:imposter:1.0", "u2"),
		},
	}
	g, diags := f.build(top, nil)
	assert.Empty(t, g.Instances())
	assert.Equal(t, []DiagnosticKind{MissingDocument, WrongDocumentKind}, kinds(diags))
	assert.Equal(t, "ghost", diags[0].Subject)
	assert.Equal(t, "", diags[0].Path)
}

func TestBuild_Idempotent(t *testing.T) {
	f := newFixture(t, hierarchyDocs()...)
	top, cfg := hierarchyTop()

	type snapshot struct {
		Instances   []*connectivity.Component
		Interfaces  []*connectivity.Interface
		Connections []connectivity.Connection
		Diagnostics Diagnostics
	}
	take := func() snapshot {
		g, diags := f.build(top, cfg)
		return snapshot{g.Instances(), g.Interfaces(), g.Connections(), diags}
	}

	first := take()
	second := take()
	require.NotEmpty(t, first.Instances)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("builds differ (-first +second):\n%s", diff)
	}
}

func TestBuild_WithMocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	lib := NewMockLibrary(ctrl)
	res := NewMockResolver(ctrl)

	comp := &design.Component{
		VLNV: ref("acme:ip:timer:1.0"),
		BusInterfaces: []*design.BusInterface{
			{Name: "s", Mode: design.ModeSlave, MemoryMapRef: "mm"},
		},
		MemoryMaps: []*design.MemoryMap{{
			Name:            "mm",
			AddressUnitBits: "AUB",
			Blocks: []*design.AddressBlock{
				{Name: "kept", BaseAddress: "BASE", IsPresent: "ON"},
				{Name: "dropped", BaseAddress: "BASE", IsPresent: "OFF"},
			},
		}},
	}

	lib.EXPECT().Document(gomock.Any(), ref("acme:ip:timer:1.0")).Return(comp, true).Times(2)
	values := map[string]int64{"AUB": 16, "BASE": 256, "ON": 1, "OFF": 0}
	res.EXPECT().Resolve(gomock.Any()).DoAndReturn(func(text string) int64 {
		return values[text]
	}).AnyTimes()

	top := &design.Design{
		VLNV: ref("acme:soc:top:1.0"),
		ComponentInstances: []*design.ComponentInstance{
			instance("t0", "acme:ip:timer:1.0", "a"),
			instance("t1", "acme:ip:timer:1.0", "b"),
		},
	}
	g, diags := New(lib, res).Build(ctxlog.Discard(context.Background()), top, nil)
	assert.Empty(t, diags)
	require.Len(t, g.Instances(), 2)

	mm := g.Instances()[0].Memories[0]
	assert.Equal(t, "16", mm.Width)
	require.Len(t, mm.Children, 1)
	assert.Equal(t, "kept", mm.Children[0].Name)
	assert.Equal(t, "256", mm.Children[0].Address)

	iface, ok := g.Interface("t1", "s")
	require.True(t, ok)
	assert.Equal(t, "acme.ip.timer.1.0.b.t1.mm", iface.Memory)
}

func TestNew_Options(t *testing.T) {
	lib := repository.NewMemory()
	res := expr.MustNewEvaluator(nil)

	l := New(lib, res)
	assert.Equal(t, DefaultMaxDepth, l.maxDepth)
	assert.Equal(t, int64(DefaultMaxRegisterElements), l.maxRegisterElements)

	assert.Equal(t, 3, New(lib, res, WithMaxDepth(3)).maxDepth)
	assert.Equal(t, 0, New(lib, res, WithMaxDepth(0)).maxDepth)
	assert.Equal(t, DefaultMaxDepth, New(lib, res, WithMaxDepth(-1)).maxDepth)

	assert.Equal(t, int64(8), New(lib, res, WithMaxRegisterElements(8)).maxRegisterElements)
	assert.Equal(t, int64(DefaultMaxRegisterElements), New(lib, res, WithMaxRegisterElements(0)).maxRegisterElements)
}

func TestDiagnostics(t *testing.T) {
	ds := Diagnostics{
		{Kind: UnresolvedStart, Subject: "bus", Message: "start interface cpu0.m does not exist"},
		{Kind: DepthLimit, Path: "a/b", Subject: "c", Message: "too deep"},
	}
	assert.True(t, ds.Has(DepthLimit))
	assert.False(t, ds.Has(CyclicHierarchy))
	assert.Len(t, ds.OfKind(UnresolvedStart), 1)
	assert.Equal(t,
		"UnresolvedStart at <top>: bus: start interface cpu0.m does not exist\nDepthLimit at a/b: c: too deep",
		ds.String())
	assert.Equal(t, "DiagnosticKind(99)", DiagnosticKind(99).String())
}
