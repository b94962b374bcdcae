package ecs

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityID uniquely identifies an entity for its lifetime.
type EntityID = uuid.UUID

// NewEntityID returns a fresh entity identifier.
func NewEntityID() EntityID {
	return uuid.New()
}

// Component is one named component's field data.
type Component map[string]Value

// Get returns a field value; absent fields return the zero Value.
func (c Component) Get(field string) Value {
	return c[field]
}

// Components is the dynamic component set attached to one entity.
type Components struct {
	data map[string]Component
}

// NewComponents returns an empty component set.
func NewComponents() *Components {
	return &Components{data: make(map[string]Component)}
}

// Get returns a component by name, or nil if absent.
func (c *Components) Get(component string) Component {
	return c.data[component]
}

// Has reports whether a component exists.
func (c *Components) Has(component string) bool {
	_, ok := c.data[component]
	return ok
}

// Set replaces a component's data wholesale.
func (c *Components) Set(component string, data Component) {
	c.data[component] = data
}

// GetField returns one field of one component; missing either way yields
// the zero Value.
func (c *Components) GetField(component, field string) Value {
	return c.data[component][field]
}

// SetField writes one field of one component, creating the component if
// needed.
func (c *Components) SetField(component, field string, value Value) {
	comp, ok := c.data[component]
	if !ok {
		comp = make(Component)
		c.data[component] = comp
	}
	comp[field] = value
}

// Entity pairs an identifier with its name.
type Entity struct {
	ID   EntityID
	Name string
}

// World owns entities and their dynamic components.
type World struct {
	entities   map[EntityID]Entity
	names      map[string]EntityID
	components map[EntityID]*Components
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{
		entities:   make(map[EntityID]Entity),
		names:      make(map[string]EntityID),
		components: make(map[EntityID]*Components),
	}
}

// Spawn creates a named entity. Names are unique within a world.
func (w *World) Spawn(name string) (EntityID, error) {
	if _, exists := w.names[name]; exists {
		return EntityID{}, fmt.Errorf("entity name %q already in use", name)
	}

	id := NewEntityID()
	w.entities[id] = Entity{ID: id, Name: name}
	w.names[name] = id
	w.components[id] = NewComponents()
	return id, nil
}

// Despawn removes an entity and its components.
func (w *World) Despawn(id EntityID) {
	if e, ok := w.entities[id]; ok {
		delete(w.names, e.Name)
	}
	delete(w.entities, id)
	delete(w.components, id)
}

// Lookup finds an entity by name.
func (w *World) Lookup(name string) (EntityID, bool) {
	id, ok := w.names[name]
	return id, ok
}

// AllEntities returns every live entity. Order is unspecified.
func (w *World) AllEntities() []Entity {
	out := make([]Entity, 0, len(w.entities))
	for _, e := range w.entities {
		out = append(out, e)
	}
	return out
}

// Components returns an entity's component set, or nil for unknown entities.
func (w *World) Components(id EntityID) *Components {
	return w.components[id]
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Clear removes every entity, for scene transitions.
func (w *World) Clear() {
	w.entities = make(map[EntityID]Entity)
	w.names = make(map[string]EntityID)
	w.components = make(map[EntityID]*Components)
}
