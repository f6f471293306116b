package scene

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/viewlayout/pkg/constraint"
	"github.com/matzehuels/viewlayout/pkg/errors"
	"github.com/matzehuels/viewlayout/pkg/layout"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

// Options configures Build.
type Options struct {
	Logger *log.Logger // Progress logging (optional)
}

// WithDefaults returns a copy of o with a discarding logger when none is set.
func (o Options) WithDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}

// Result holds the views and layouts built from a scene. It keeps the views
// reachable; call Close to tear them down.
type Result struct {
	Name    string
	Engine  *toolkit.Engine
	Views   []*toolkit.View  // declaration order
	Layouts []*layout.Layout // order of first use

	byName map[string]*toolkit.View
}

// Build creates the scene's views in a new engine and applies its
// constraints in order. Panics raised while building, such as an
// unconfigured constraint, are returned as errors.
func Build(s *Scene, opts Options) (res *Result, err error) {
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scene is nil")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()
	logger := opts.Logger

	r := &Result{
		Name:   s.Name,
		Engine: toolkit.NewEngine(),
		byName: make(map[string]*toolkit.View, len(s.Views)),
	}
	defer func() {
		if p := recover(); p != nil {
			r.Close()
			res, err = nil, errors.FromPanic(p)
		}
	}()

	for _, decl := range s.Views {
		v := r.Engine.NewView(decl.Name)
		if decl.Parent != "" {
			r.byName[decl.Parent].AddSubview(v)
		}
		r.Views = append(r.Views, v)
		r.byName[decl.Name] = v
		logger.Debug("view", "name", decl.Name, "parent", decl.Parent)
	}

	for _, decl := range s.Constraints {
		m := r.apply(decl)
		logger.Debug("constraint", "value", m.String(), "active", m.IsActive())
	}

	logger.Info("scene built",
		"scene", s.Name,
		"views", len(r.Views),
		"constraints", len(r.Constraints()),
		"active", r.Engine.Len())
	return r, nil
}

// apply builds or re-targets the constraint described by c. c has been
// validated.
func (r *Result) apply(c Constraint) *constraint.Mutable {
	attr, _ := c.attribute()
	toAttr, _ := c.toAttribute()
	rel, _ := c.relation()
	priority, hasPriority, _ := c.priority()
	active := c.Active == nil || *c.Active

	var target *toolkit.View
	if c.To != "" {
		target = r.byName[c.To]
	}
	l := r.layoutFor(r.byName[c.View])

	if c.AdHoc {
		opts := []constraint.Option{
			constraint.WithRelation(rel),
			constraint.WithActive(active),
		}
		if target != nil {
			opts = append(opts, constraint.WithTarget(target, toAttr))
		}
		if c.Multiplier != nil {
			opts = append(opts, constraint.WithMultiplier(*c.Multiplier))
		}
		if c.Constant != nil {
			opts = append(opts, constraint.WithConstant(*c.Constant))
		}
		if hasPriority {
			opts = append(opts, constraint.WithPriority(priority))
		}
		return l.Constraint(attr, opts...)
	}

	m := l.Named(attr)
	if target != nil {
		m.Assign(r.layoutFor(target).Named(toAttr))
	}
	if c.Relation != "" {
		m.SetRelation(rel)
	}
	if c.Multiplier != nil {
		m.SetMultiplier(*c.Multiplier)
	}
	if c.Constant != nil {
		m.SetConstant(*c.Constant)
	}
	if hasPriority {
		m.SetPriority(priority)
	}
	m.SetActive(active)
	return m
}

func (r *Result) layoutFor(v *toolkit.View) *layout.Layout {
	l := layout.For(v)
	if !slices.Contains(r.Layouts, l) {
		r.Layouts = append(r.Layouts, l)
	}
	return l
}

// View returns the view declared under name.
func (r *Result) View(name string) (*toolkit.View, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// Layout returns the layout of the view declared under name, if the scene
// touched it.
func (r *Result) Layout(name string) (*layout.Layout, bool) {
	v, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return layout.Lookup(v)
}

// Constraints returns every constraint of the scene's layouts, grouped by
// layout in order of first use.
func (r *Result) Constraints() []*constraint.Mutable {
	var out []*constraint.Mutable
	for _, l := range r.Layouts {
		out = append(out, l.Constraints()...)
	}
	return out
}

// Roots returns the views without a parent, in declaration order.
func (r *Result) Roots() []*toolkit.View {
	var out []*toolkit.View
	for _, v := range r.Views {
		if v.Parent() == nil {
			out = append(out, v)
		}
	}
	return out
}

// Close destroys every view, which deactivates and forgets their layouts.
// It is safe to call more than once.
func (r *Result) Close() {
	for _, v := range r.Roots() {
		v.Destroy()
	}
	r.Layouts = nil
}
