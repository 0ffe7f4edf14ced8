package connectivity

type interfaceKey struct {
	instance string
	name     string
}

// Graph is the connectivity graph produced by one build.
type Graph struct {
	instances   []*Component
	interfaces  []*Interface
	connections []Connection

	byName map[interfaceKey]InterfaceID
	items  map[string]*MemoryItem
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		byName: make(map[interfaceKey]InterfaceID),
		items:  make(map[string]*MemoryItem),
	}
}

// AddInstance stores a component and indexes its memory items by
// identifier. Identifiers already indexed keep pointing at the first item;
// the colliding identifiers are returned.
func (g *Graph) AddInstance(c *Component) (InstanceID, []string) {
	id := InstanceID(len(g.instances))
	g.instances = append(g.instances, c)

	var duplicates []string
	for _, root := range c.Memories {
		root.Walk(func(item *MemoryItem) {
			if _, exists := g.items[item.Identifier]; exists {
				duplicates = append(duplicates, item.Identifier)
				return
			}
			g.items[item.Identifier] = item
		})
	}
	return id, duplicates
}

// AddInterface stores an interface. The (instance name, interface name)
// index keeps the first registration; fresh is false when the pair was
// already indexed.
func (g *Graph) AddInterface(iface *Interface) (id InterfaceID, fresh bool) {
	id = InterfaceID(len(g.interfaces))
	g.interfaces = append(g.interfaces, iface)

	key := interfaceKey{instance: g.instances[iface.Instance].Name, name: iface.Name}
	if _, exists := g.byName[key]; exists {
		return id, false
	}
	g.byName[key] = id
	return id, true
}

// Connect adds a named edge between two interfaces.
func (g *Graph) Connect(name string, from, to InterfaceID) {
	g.connections = append(g.connections, Connection{Name: name, From: from, To: to})
}

// Instances returns every instance in insertion order.
func (g *Graph) Instances() []*Component {
	return g.instances
}

// Interfaces returns every interface in insertion order.
func (g *Graph) Interfaces() []*Interface {
	return g.interfaces
}

// Connections returns every edge in insertion order.
func (g *Graph) Connections() []Connection {
	return g.connections
}

// InstanceAt returns the instance with the given ID, or nil.
func (g *Graph) InstanceAt(id InstanceID) *Component {
	if id < 0 || int(id) >= len(g.instances) {
		return nil
	}
	return g.instances[id]
}

// InterfaceAt returns the interface with the given ID, or nil.
func (g *Graph) InterfaceAt(id InterfaceID) *Interface {
	if id < 0 || int(id) >= len(g.interfaces) {
		return nil
	}
	return g.interfaces[id]
}

// Lookup finds an interface ID by instance and interface name.
func (g *Graph) Lookup(instance, name string) (InterfaceID, bool) {
	id, ok := g.byName[interfaceKey{instance: instance, name: name}]
	return id, ok
}

// Interface finds an interface by instance and interface name.
func (g *Graph) Interface(instance, name string) (*Interface, bool) {
	id, ok := g.Lookup(instance, name)
	if !ok {
		return nil, false
	}
	return g.interfaces[id], true
}

// InstanceOf returns the instance owning iface.
func (g *Graph) InstanceOf(iface *Interface) *Component {
	if iface == nil {
		return nil
	}
	return g.InstanceAt(iface.Instance)
}

// ConnectedMemory returns the memory item linked to iface, or nil.
func (g *Graph) ConnectedMemory(iface *Interface) *MemoryItem {
	if iface == nil || iface.Memory == "" {
		return nil
	}
	return g.items[iface.Memory]
}

// MemoryItem finds any memory item by identifier.
func (g *Graph) MemoryItem(identifier string) (*MemoryItem, bool) {
	item, ok := g.items[identifier]
	return item, ok
}

// ConnectionsOf returns the edges that start or end at id.
func (g *Graph) ConnectionsOf(id InterfaceID) []Connection {
	var out []Connection
	for _, c := range g.connections {
		if c.From == id || c.To == id {
			out = append(out, c)
		}
	}
	return out
}
