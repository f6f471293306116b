package constraint

import (
	"github.com/matzehuels/viewlayout/pkg/errors"
	"github.com/matzehuels/viewlayout/pkg/observability"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

// Mutable is a layout constraint whose second term, relation, multiplier,
// constant and priority can change after creation.
//
// The zero value is unconfigured: reading it returns zero values, and any
// setter panics with an ErrCodeUnconfigured error.
type Mutable struct {
	axis     toolkit.Axis
	priority toolkit.Priority
	native   *toolkit.Constraint
}

// terms are the inputs of one native constraint.
type terms struct {
	first      *toolkit.View
	firstAttr  toolkit.Attribute
	relation   toolkit.Relation
	second     *toolkit.View
	secondAttr toolkit.Attribute
	multiplier float64
	constant   float64
}

// New builds a self-relative constraint, item.attr = item.attr, meant as a
// placeholder that is re-targeted later. It starts inactive with high
// priority unless opts say otherwise.
func New(item *toolkit.View, attr toolkit.Attribute, opts ...Option) *Mutable {
	o := DefaultOptions()
	o.Target, o.TargetAttribute = item, attr
	o.Apply(opts...)
	return Build(item, attr, o)
}

// NewRelated builds item.attr <relation> to.toAttr * multiplier + constant.
// It is activated when opts include WithActive(true).
func NewRelated(item *toolkit.View, attr toolkit.Attribute, to *toolkit.View, toAttr toolkit.Attribute, opts ...Option) *Mutable {
	o := DefaultOptions()
	o.Apply(opts...)
	o.Target, o.TargetAttribute = to, toAttr
	return Build(item, attr, o)
}

// Build creates a constraint on item.attr from fully resolved options.
// It panics with ErrCodeUnconfigured when item is nil.
func Build(item *toolkit.View, attr toolkit.Attribute, o Options) *Mutable {
	if item == nil {
		panic(errors.Unconfigured("build"))
	}
	m := &Mutable{
		axis:     attr.Axis(),
		priority: o.Priority,
	}
	m.native = m.resolve(terms{
		first:      item,
		firstAttr:  attr,
		relation:   o.Relation,
		second:     o.Target,
		secondAttr: o.TargetAttribute,
		multiplier: o.Multiplier,
		constant:   o.Constant,
	})
	m.native.SetPriority(m.priority)
	if o.Active {
		m.native.SetActive(true)
	}
	return m
}

// =============================================================================
// Accessors
// =============================================================================

// Constraint returns the current native constraint. It changes on every
// mutation; hold the Mutable, not the result.
func (m *Mutable) Constraint() *toolkit.Constraint { return m.native }

// Configured reports whether the constraint has a first term.
func (m *Mutable) Configured() bool {
	return m.native != nil && m.native.FirstItem() != nil
}

// Axis returns the axis of the first attribute.
func (m *Mutable) Axis() toolkit.Axis { return m.axis }

// FirstItem returns the constrained view.
func (m *Mutable) FirstItem() *toolkit.View {
	if m.native == nil {
		return nil
	}
	return m.native.FirstItem()
}

// FirstAttribute returns the constrained attribute.
func (m *Mutable) FirstAttribute() toolkit.Attribute {
	if m.native == nil {
		return toolkit.NotAnAttribute
	}
	return m.native.FirstAttribute()
}

// Item returns the resolved second view, nil for absolute constraints.
func (m *Mutable) Item() *toolkit.View {
	if m.native == nil {
		return nil
	}
	return m.native.SecondItem()
}

// Attribute returns the resolved second attribute.
func (m *Mutable) Attribute() toolkit.Attribute {
	if m.native == nil {
		return toolkit.NotAnAttribute
	}
	return m.native.SecondAttribute()
}

func (m *Mutable) Relation() toolkit.Relation {
	if m.native == nil {
		return toolkit.Equal
	}
	return m.native.Relation()
}

func (m *Mutable) Multiplier() float64 {
	if m.native == nil {
		return 0
	}
	return m.native.Multiplier()
}

func (m *Mutable) Constant() float64 {
	if m.native == nil {
		return 0
	}
	return m.native.Constant()
}

func (m *Mutable) Priority() toolkit.Priority { return m.priority }

// IsActive reports whether the current native constraint is active.
func (m *Mutable) IsActive() bool {
	return m.native != nil && m.native.IsActive()
}

func (m *Mutable) String() string {
	if m.native == nil {
		return "<unconfigured>"
	}
	return m.native.String()
}

// =============================================================================
// Mutation
// =============================================================================

// SetItem re-targets the second term at v. A nil v makes the constraint
// absolute.
func (m *Mutable) SetItem(v *toolkit.View) {
	t := m.current("resolve")
	t.second = v
	m.rebuild("item", t)
}

// SetAttribute changes the second attribute.
func (m *Mutable) SetAttribute(attr toolkit.Attribute) {
	t := m.current("resolve")
	t.secondAttr = attr
	m.rebuild("attribute", t)
}

func (m *Mutable) SetRelation(r toolkit.Relation) {
	t := m.current("resolve")
	t.relation = r
	m.rebuild("relation", t)
}

func (m *Mutable) SetMultiplier(f float64) {
	t := m.current("resolve")
	t.multiplier = f
	m.rebuild("multiplier", t)
}

func (m *Mutable) SetConstant(c float64) {
	t := m.current("resolve")
	t.constant = c
	m.rebuild("constant", t)
}

// SetPriority rebuilds the constraint with unchanged terms and priority p.
// Rebuilding rather than updating in place lets an active constraint move
// between required and optional.
func (m *Mutable) SetPriority(p toolkit.Priority) {
	t := m.current("resolve")
	m.priority = p
	m.rebuild("priority", t)
}

// SetActive activates or deactivates the current native constraint.
func (m *Mutable) SetActive(active bool) {
	m.current("activate")
	m.native.SetActive(active)
}

// SetConstraint re-targets m at c's first term: m's second view and
// attribute become c's first view and attribute. Relation, multiplier and
// constant are kept.
func (m *Mutable) SetConstraint(c *toolkit.Constraint) {
	t := m.current("satisfy")
	if c == nil || c.FirstItem() == nil {
		panic(errors.Unconfigured("assign from"))
	}
	t.second = c.FirstItem()
	t.secondAttr = c.FirstAttribute()
	m.rebuild("constraint", t)
}

// Assign re-targets m at other's first term. See SetConstraint.
func (m *Mutable) Assign(other *Mutable) {
	if other == nil {
		panic(errors.Unconfigured("assign from"))
	}
	m.SetConstraint(other.native)
}

// current returns the terms of the native constraint, panicking when there
// is no first term to build on.
func (m *Mutable) current(op string) terms {
	if m.native == nil {
		panic(errors.Unconfigured(op))
	}
	first := m.native.FirstItem()
	if first == nil {
		panic(errors.Unconfigured(op))
	}
	return terms{
		first:      first,
		firstAttr:  m.native.FirstAttribute(),
		relation:   m.native.Relation(),
		second:     m.native.SecondItem(),
		secondAttr: m.native.SecondAttribute(),
		multiplier: m.native.Multiplier(),
		constant:   m.native.Constant(),
	}
}

// resolve builds a native constraint from t, rewriting self references with
// a non-zero constant.
func (m *Mutable) resolve(t terms) *toolkit.Constraint {
	if t.constant != 0 && t.second == t.first {
		switch {
		case m.axis != toolkit.AxisDimension:
			t.second = t.first.Parent()
		case t.firstAttr == t.secondAttr:
			t.second = nil
			t.secondAttr = toolkit.NotAnAttribute
		}
	}
	return toolkit.NewConstraint(t.first, t.firstAttr, t.relation, t.second, t.secondAttr, t.multiplier, t.constant)
}

// rebuild swaps in a native constraint built from t. An active constraint
// is replaced in place; an inactive one is simply exchanged.
func (m *Mutable) rebuild(field string, t terms) {
	next := m.resolve(t)
	next.SetPriority(m.priority)
	toolkit.Replace(m.native, next)
	m.native = next

	observability.Layout().OnConstraintRebuilt(t.first.String(), t.firstAttr.String(), field, next.IsActive())
}

// =============================================================================
// Derived constraints
// =============================================================================

// Derive builds a new constraint on m's first term. It defaults to equal,
// multiplier 1, constant 0, required, active and no target; use WithTarget
// to relate it to another view. The result is independent of m.
func (m *Mutable) Derive(opts ...Option) *Mutable {
	m.current("derive from")
	o := AdHocOptions()
	o.Apply(opts...)
	return Build(m.native.FirstItem(), m.native.FirstAttribute(), o)
}

// DeriveLike builds a new constraint on m's first term that copies foreign's
// second term and relation. opts override any of the copied terms.
func (m *Mutable) DeriveLike(foreign *Mutable, opts ...Option) *Mutable {
	if foreign == nil || foreign.native == nil {
		panic(errors.Unconfigured("derive from"))
	}
	base := []Option{
		WithTarget(foreign.Item(), foreign.Attribute()),
		WithRelation(foreign.Relation()),
	}
	return m.Derive(append(base, opts...)...)
}
