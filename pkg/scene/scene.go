package scene

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/viewlayout/pkg/errors"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

//go:embed demo.toml
var demoTOML []byte

// Scene is a parsed scene document.
type Scene struct {
	Name        string       `toml:"name"`
	Views       []View       `toml:"view"`
	Constraints []Constraint `toml:"constraint"`
}

// View declares one view. Parent names a view declared earlier.
type View struct {
	Name   string `toml:"name"`
	Parent string `toml:"parent"`
}

// Constraint declares one constraint on View.Attribute. Pointer fields are
// optional; nil leaves the current value untouched.
type Constraint struct {
	View        string   `toml:"view"`
	Attribute   string   `toml:"attribute"`
	To          string   `toml:"to"`
	ToAttribute string   `toml:"to_attribute"`
	Relation    string   `toml:"relation"`
	Multiplier  *float64 `toml:"multiplier"`
	Constant    *float64 `toml:"constant"`
	Priority    any      `toml:"priority"`
	Active      *bool    `toml:"active"`
	AdHoc       bool     `toml:"adhoc"`
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the embedded demo scene.
func Default() *Scene {
	s, err := Parse(demoTOML)
	if err != nil {
		panic(errors.Wrap(errors.ErrCodeInternal, err, "embedded demo scene"))
	}
	return s
}

// DemoSource returns the TOML source of the embedded demo scene.
func DemoSource() []byte { return slices.Clone(demoTOML) }

// Validate checks names, references and field values. Views must be
// declared before they are used as a parent.
func (s *Scene) Validate() error {
	if len(s.Views) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "scene declares no views")
	}

	declared := make(map[string]bool, len(s.Views))
	for i, v := range s.Views {
		if err := errors.ValidateViewName(v.Name); err != nil {
			return fmt.Errorf("view %d: %w", i+1, err)
		}
		if declared[v.Name] {
			return errors.New(errors.ErrCodeDuplicateView, "view %q declared twice", v.Name)
		}
		if v.Parent != "" && !declared[v.Parent] {
			return errors.New(errors.ErrCodeViewNotFound, "view %q: parent %q is not declared before it", v.Name, v.Parent)
		}
		declared[v.Name] = true
	}

	for i, c := range s.Constraints {
		if err := c.validate(declared); err != nil {
			return fmt.Errorf("constraint %d (%s.%s): %w", i+1, c.View, c.Attribute, err)
		}
	}
	return nil
}

func (c Constraint) validate(declared map[string]bool) error {
	if !declared[c.View] {
		return errors.New(errors.ErrCodeViewNotFound, "unknown view %q", c.View)
	}
	if c.To != "" && !declared[c.To] {
		return errors.New(errors.ErrCodeViewNotFound, "unknown target view %q", c.To)
	}
	if c.To == "" && c.ToAttribute != "" {
		return errors.New(errors.ErrCodeInvalidScene, "to_attribute %q without a target view", c.ToAttribute)
	}
	if _, err := c.attribute(); err != nil {
		return err
	}
	if _, err := c.toAttribute(); err != nil {
		return err
	}
	if _, err := c.relation(); err != nil {
		return err
	}
	if _, _, err := c.priority(); err != nil {
		return err
	}
	return nil
}

func (c Constraint) attribute() (toolkit.Attribute, error) {
	return namedAttribute(c.Attribute)
}

// toAttribute returns the target attribute, defaulting to the constrained
// one.
func (c Constraint) toAttribute() (toolkit.Attribute, error) {
	if c.ToAttribute == "" {
		return c.attribute()
	}
	return namedAttribute(c.ToAttribute)
}

// relation returns the parsed relation. An empty string means equal.
func (c Constraint) relation() (toolkit.Relation, error) {
	return toolkit.ParseRelation(c.Relation)
}

// priority accepts a name ("required", "high", ...) or a number.
func (c Constraint) priority() (p toolkit.Priority, ok bool, err error) {
	switch v := c.Priority.(type) {
	case nil:
		return 0, false, nil
	case string:
		p, err = toolkit.ParsePriority(v)
	case int64:
		p, err = toolkit.ParsePriority(strconv.FormatInt(v, 10))
	case float64:
		p, err = toolkit.ParsePriority(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		err = errors.New(errors.ErrCodeInvalidPriority, "priority must be a name or a number, got %T", v)
	}
	return p, err == nil, err
}

func namedAttribute(name string) (toolkit.Attribute, error) {
	if name == "" {
		return toolkit.NotAnAttribute, errors.New(errors.ErrCodeInvalidAttribute, "attribute is required")
	}
	a, err := toolkit.ParseAttribute(name)
	if err != nil {
		return toolkit.NotAnAttribute, err
	}
	if a == toolkit.NotAnAttribute {
		return toolkit.NotAnAttribute, errors.New(errors.ErrCodeInvalidAttribute, "%q cannot be constrained", name)
	}
	return a, nil
}
