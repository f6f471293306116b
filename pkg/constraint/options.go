package constraint

import "github.com/matzehuels/viewlayout/pkg/toolkit"

// Options holds the terms used when building a constraint.
type Options struct {
	Relation        toolkit.Relation
	Multiplier      float64
	Constant        float64
	Priority        toolkit.Priority
	Active          bool
	Target          *toolkit.View
	TargetAttribute toolkit.Attribute
}

// Option configures a constraint under construction.
type Option func(*Options)

// DefaultOptions returns the options used by New and NewRelated: equal,
// multiplier 1, constant 0, high priority, inactive.
func DefaultOptions() Options {
	return Options{
		Relation:   toolkit.Equal,
		Multiplier: 1,
		Priority:   toolkit.DefaultHigh,
	}
}

// AdHocOptions returns the options used for constraints built on demand:
// equal, multiplier 1, constant 0, required, active and without a target.
func AdHocOptions() Options {
	return Options{
		Relation:   toolkit.Equal,
		Multiplier: 1,
		Priority:   toolkit.Required,
		Active:     true,
	}
}

// Apply applies opts in order.
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

func WithRelation(r toolkit.Relation) Option {
	return func(o *Options) { o.Relation = r }
}

func WithMultiplier(m float64) Option {
	return func(o *Options) { o.Multiplier = m }
}

func WithConstant(c float64) Option {
	return func(o *Options) { o.Constant = c }
}

func WithPriority(p toolkit.Priority) Option {
	return func(o *Options) { o.Priority = p }
}

func WithActive(active bool) Option {
	return func(o *Options) { o.Active = active }
}

// WithTarget sets the second term. A nil view makes the constraint absolute.
func WithTarget(v *toolkit.View, attr toolkit.Attribute) Option {
	return func(o *Options) {
		o.Target = v
		o.TargetAttribute = attr
	}
}
