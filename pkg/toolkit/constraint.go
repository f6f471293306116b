package toolkit

import (
	"fmt"
	"strconv"
	"weak"
)

// Constraint is a native layout constraint:
//
//	first.firstAttribute <relation> second.secondAttribute * multiplier + constant
//
// All terms are fixed at construction. Only the activation flag and the
// priority can change afterwards.
type Constraint struct {
	first      weak.Pointer[View]
	firstAttr  Attribute
	relation   Relation
	second     weak.Pointer[View]
	secondAttr Attribute
	multiplier float64
	constant   float64

	engine   *Engine
	priority Priority
	active   bool
}

// NewConstraint builds an inactive, required constraint. second may be nil
// for constraints on an absolute value. A nil first view yields a constraint
// that cannot be activated.
func NewConstraint(first *View, firstAttr Attribute, relation Relation, second *View, secondAttr Attribute, multiplier, constant float64) *Constraint {
	c := &Constraint{
		firstAttr:  firstAttr,
		relation:   relation,
		secondAttr: secondAttr,
		multiplier: multiplier,
		constant:   constant,
		priority:   Required,
	}
	if first != nil {
		c.first = weak.Make(first)
		c.engine = first.engine
	}
	if second != nil {
		c.second = weak.Make(second)
	}
	return c
}

// FirstItem returns the constrained view, or nil once it has been collected.
func (c *Constraint) FirstItem() *View { return c.first.Value() }

// FirstAttribute returns the constrained attribute.
func (c *Constraint) FirstAttribute() Attribute { return c.firstAttr }

// Relation returns the comparison between both sides.
func (c *Constraint) Relation() Relation { return c.relation }

// SecondItem returns the reference view, or nil for absolute constraints.
func (c *Constraint) SecondItem() *View { return c.second.Value() }

// SecondAttribute returns the reference attribute.
func (c *Constraint) SecondAttribute() Attribute { return c.secondAttr }

// Multiplier returns the factor applied to the second attribute.
func (c *Constraint) Multiplier() float64 { return c.multiplier }

// Constant returns the offset added to the second side.
func (c *Constraint) Constant() float64 { return c.constant }

// Priority returns the constraint's priority.
func (c *Constraint) Priority() Priority { return c.priority }

// SetPriority changes the priority.
func (c *Constraint) SetPriority(p Priority) { c.priority = p }

// IsActive reports whether the constraint takes part in layout.
func (c *Constraint) IsActive() bool { return c.active }

// SetActive adds the constraint to, or removes it from, its engine.
// Constraints without an engine only track the flag.
func (c *Constraint) SetActive(active bool) {
	if c.active == active {
		return
	}
	if c.engine == nil {
		c.active = active
		return
	}
	if active {
		c.engine.activate(c)
	} else {
		c.engine.deactivate(c)
	}
}

// Engine returns the engine the constraint activates into.
func (c *Constraint) Engine() *Engine { return c.engine }

// String renders the constraint as an equation, e.g.
// "blue.top = center.bottom * 1 + 8 @750".
func (c *Constraint) String() string {
	lhs := fmt.Sprintf("%s.%s", c.FirstItem(), c.firstAttr)
	var rhs string
	switch second := c.SecondItem(); {
	case second != nil:
		rhs = fmt.Sprintf("%s.%s * %s + %s", second, c.secondAttr, ftoa(c.multiplier), ftoa(c.constant))
	default:
		rhs = ftoa(c.constant)
	}
	return fmt.Sprintf("%s %s %s @%s", lhs, c.relation.Symbol(), rhs, c.priority)
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
