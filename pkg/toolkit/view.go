package toolkit

import (
	"slices"

	"github.com/google/uuid"
)

// ID identifies a view for its whole lifetime. Two views never share an ID.
type ID = uuid.UUID

// View is a visual element that constraints are declared on.
//
// Views form a tree: a parent strongly owns its children. The tree is only
// used to answer Parent; this package never walks it.
type View struct {
	id       ID
	name     string
	engine   *Engine
	parent   *View
	children []*View
	teardown []func()
}

// NewView creates a detached view whose constraints activate into e.
func (e *Engine) NewView(name string) *View {
	return &View{
		id:     uuid.New(),
		name:   name,
		engine: e,
	}
}

// ID returns the view's identity.
func (v *View) ID() ID { return v.id }

// Name returns the name given at creation.
func (v *View) Name() string { return v.name }

// String returns the name, or the ID when the view is unnamed.
func (v *View) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.name != "" {
		return v.name
	}
	return v.id.String()
}

// Engine returns the engine the view's constraints activate into.
func (v *View) Engine() *Engine { return v.engine }

// Parent returns the containing view, or nil for a root or detached view.
func (v *View) Parent() *View { return v.parent }

// Children returns a copy of the view's children in insertion order.
func (v *View) Children() []*View { return slices.Clone(v.children) }

// AddSubview makes child a child of v, detaching it from any previous parent.
func (v *View) AddSubview(child *View) {
	if child == nil || child == v {
		return
	}
	child.RemoveFromParent()
	child.parent = v
	v.children = append(v.children, child)
}

// RemoveFromParent detaches v from its parent. It is a no-op for roots.
func (v *View) RemoveFromParent() {
	p := v.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, v); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	v.parent = nil
}

// OnDestroy registers fn to run when v is destroyed. Callbacks run in
// registration order, before v leaves the tree.
func (v *View) OnDestroy(fn func()) {
	if fn != nil {
		v.teardown = append(v.teardown, fn)
	}
}

// Destroy tears v and its subtree down. Children are destroyed first; each
// view runs its teardown callbacks, deactivates every constraint still
// referencing it and then detaches from its parent.
func (v *View) Destroy() {
	for _, c := range slices.Clone(v.children) {
		c.Destroy()
	}
	callbacks := v.teardown
	v.teardown = nil
	for _, fn := range callbacks {
		fn()
	}
	if v.engine != nil {
		for _, c := range v.engine.ActiveFor(v) {
			c.SetActive(false)
		}
	}
	v.RemoveFromParent()
}
