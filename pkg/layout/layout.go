// Package layout manages the constraints of one view through named
// properties.
//
// Every view gets a single [Layout], created on first use by [For] and kept
// until the view is destroyed or [Remove] is called:
//
//	blue := layout.For(blueView)
//	blue.SetTop(layout.For(center).Bottom()) // blue.top = center.bottom
//	blue.Top().SetConstant(8)                // blue.top = center.bottom + 8
//	blue.Top().SetActive(true)
//
// Named constraints (Top, Width, CenterX, ...) start as inactive
// placeholders relating the attribute to itself. They are built on first
// access, at most once per view, and never replaced: setters re-target the
// existing constraint so references handed out earlier stay valid.
//
// Composite accessors (Frame, Size, Center, ...) bundle several named
// constraints. Their setters assign the parts left to right in the order
// the getter returns them.
//
// As with the rest of viewlayout, nothing here is synchronized. Use layouts
// from the goroutine that owns the views.
package layout

import (
	"slices"
	"weak"

	"github.com/matzehuels/viewlayout/pkg/cache"
	"github.com/matzehuels/viewlayout/pkg/constraint"
	"github.com/matzehuels/viewlayout/pkg/errors"
	"github.com/matzehuels/viewlayout/pkg/observability"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

// instances holds one Layout per view identity.
var instances = cache.NewInstances[toolkit.ID, *Layout]("layout")

// watched records the views whose teardown already removes their layout.
var watched = make(map[toolkit.ID]struct{})

// For returns the layout of v, creating it on first use. The layout is
// removed automatically when v is destroyed.
func For(v *toolkit.View) *Layout {
	if v == nil {
		panic(errors.New(errors.ErrCodeInvalidInput, "layout requested for nil view"))
	}
	l, _ := instances.Get(v.ID(), func() (*Layout, bool) {
		watch(v)
		observability.Layout().OnLayoutCreated(v.String())
		return newLayout(v), true
	})
	return l
}

// watch removes v's layout when v is destroyed. The teardown is registered
// once per view, however often the layout is removed and recreated.
func watch(v *toolkit.View) {
	id := v.ID()
	if _, ok := watched[id]; ok {
		return
	}
	watched[id] = struct{}{}
	v.OnDestroy(func() {
		delete(watched, id)
		Remove(v)
	})
}

// Lookup returns the layout of v without creating one.
func Lookup(v *toolkit.View) (*Layout, bool) {
	if v == nil {
		return nil, false
	}
	return instances.Get(v.ID(), nil)
}

// Remove deactivates every constraint of v's layout and forgets the layout.
// The next For(v) starts from scratch. It reports whether a layout existed.
func Remove(v *toolkit.View) bool {
	if v == nil {
		return false
	}
	l, ok := instances.Remove(v.ID())
	if !ok {
		return false
	}
	for _, m := range l.constraints {
		if m.IsActive() {
			m.SetActive(false)
		}
	}
	observability.Layout().OnLayoutRemoved(v.String(), len(l.constraints))
	return true
}

// Count returns the number of live layouts.
func Count() int { return instances.Len() }

// Layout owns the constraints declared on one view.
type Layout struct {
	view        weak.Pointer[toolkit.View]
	named       [toolkit.AttributeCount]*constraint.Mutable
	constraints []*constraint.Mutable
}

func newLayout(v *toolkit.View) *Layout {
	return &Layout{view: weak.Make(v)}
}

// View returns the view the layout belongs to, or nil once it is gone.
func (l *Layout) View() *toolkit.View { return l.view.Value() }

// Constraints returns every constraint created through l, in creation
// order.
func (l *Layout) Constraints() []*constraint.Mutable {
	return slices.Clone(l.constraints)
}

// Named returns the named constraint for attr, building it on first use.
// It panics for NotAnAttribute and unknown attributes.
func (l *Layout) Named(attr toolkit.Attribute) *constraint.Mutable {
	if attr == toolkit.NotAnAttribute || !attr.Valid() {
		panic(errors.New(errors.ErrCodeInvalidAttribute, "no named constraint for %v", attr))
	}
	if m := l.named[attr]; m != nil {
		return m
	}
	m := l.add(constraint.New(l.owner(), attr))
	l.named[attr] = m
	return m
}

// SetNamed re-targets the named constraint for attr at m's first term.
func (l *Layout) SetNamed(attr toolkit.Attribute, m *constraint.Mutable) {
	l.Named(attr).Assign(m)
}

// Constraint builds and registers a new constraint on attr. Without options
// it is view.attr = 0, required and active; use constraint.WithTarget to
// relate it to another view.
func (l *Layout) Constraint(attr toolkit.Attribute, opts ...constraint.Option) *constraint.Mutable {
	o := constraint.AdHocOptions()
	o.Apply(opts...)
	return l.add(constraint.Build(l.owner(), attr, o))
}

// ConstraintTo builds and registers a new constraint relating attr to the
// first term of other, e.g. l.ConstraintTo(toolkit.Left, layout.For(c).CenterX()).
func (l *Layout) ConstraintTo(attr toolkit.Attribute, other *constraint.Mutable, opts ...constraint.Option) *constraint.Mutable {
	if other == nil || !other.Configured() {
		panic(errors.Unconfigured("relate to"))
	}
	target := constraint.WithTarget(other.FirstItem(), other.FirstAttribute())
	return l.Constraint(attr, append([]constraint.Option{target}, opts...)...)
}

// add registers m unless it is already registered.
func (l *Layout) add(m *constraint.Mutable) *constraint.Mutable {
	if slices.Contains(l.constraints, m) {
		return m
	}
	l.constraints = append(l.constraints, m)
	observability.Layout().OnConstraintAdded(m.FirstItem().String(), m.FirstAttribute().String())
	return m
}

func (l *Layout) owner() *toolkit.View {
	v := l.view.Value()
	if v == nil {
		panic(errors.Unconfigured("lay out"))
	}
	return v
}
