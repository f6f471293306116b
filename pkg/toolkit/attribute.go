package toolkit

import (
	"strings"

	"github.com/matzehuels/viewlayout/pkg/errors"
)

// Attribute names one edge, center, dimension or baseline of a view.
type Attribute int

// Layout attributes. The set is closed.
const (
	NotAnAttribute Attribute = iota
	Left
	Right
	Top
	Bottom
	Leading
	Trailing
	Width
	Height
	CenterX
	CenterY
	LastBaseline
	FirstBaseline
	LeftMargin
	RightMargin
	TopMargin
	BottomMargin
	LeadingMargin
	TrailingMargin
	CenterXWithinMargins
	CenterYWithinMargins

	attributeCount
)

// AttributeCount is the number of attributes, NotAnAttribute included.
// Attributes are valid indexes into arrays of this length.
const AttributeCount = int(attributeCount)

var attributeNames = [...]string{
	NotAnAttribute:       "notAnAttribute",
	Left:                 "left",
	Right:                "right",
	Top:                  "top",
	Bottom:               "bottom",
	Leading:              "leading",
	Trailing:             "trailing",
	Width:                "width",
	Height:               "height",
	CenterX:              "centerX",
	CenterY:              "centerY",
	LastBaseline:         "lastBaseline",
	FirstBaseline:        "firstBaseline",
	LeftMargin:           "leftMargin",
	RightMargin:          "rightMargin",
	TopMargin:            "topMargin",
	BottomMargin:         "bottomMargin",
	LeadingMargin:        "leadingMargin",
	TrailingMargin:       "trailingMargin",
	CenterXWithinMargins: "centerXWithinMargins",
	CenterYWithinMargins: "centerYWithinMargins",
}

// String returns the camelCase name of the attribute.
func (a Attribute) String() string {
	if !a.Valid() {
		return "attribute(" + itoa(int(a)) + ")"
	}
	return attributeNames[a]
}

// Valid reports whether a is one of the declared attributes.
func (a Attribute) Valid() bool {
	return a >= NotAnAttribute && a < attributeCount
}

// Axis groups attributes by the direction they constrain.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
	AxisDimension
)

func (x Axis) String() string {
	switch x {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	case AxisDimension:
		return "dimension"
	default:
		return "none"
	}
}

// Axis returns the direction a constrains.
func (a Attribute) Axis() Axis {
	switch a {
	case Left, Right, Leading, Trailing, CenterX,
		LeftMargin, RightMargin, LeadingMargin, TrailingMargin, CenterXWithinMargins:
		return AxisHorizontal
	case Top, Bottom, CenterY, FirstBaseline, LastBaseline,
		TopMargin, BottomMargin, CenterYWithinMargins:
		return AxisVertical
	case Width, Height:
		return AxisDimension
	default:
		return AxisNone
	}
}

// IsMargin reports whether a is measured from the layout margins.
func (a Attribute) IsMargin() bool {
	switch a {
	case LeftMargin, RightMargin, TopMargin, BottomMargin,
		LeadingMargin, TrailingMargin, CenterXWithinMargins, CenterYWithinMargins:
		return true
	}
	return false
}

// Attributes returns every declared attribute except NotAnAttribute.
func Attributes() []Attribute {
	out := make([]Attribute, 0, AttributeCount-1)
	for a := Left; a < attributeCount; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAttribute parses a camelCase attribute name. Matching is
// case-insensitive so "centerx" and "CenterX" are accepted too.
func ParseAttribute(s string) (Attribute, error) {
	name := strings.TrimSpace(s)
	for a, n := range attributeNames {
		if strings.EqualFold(n, name) {
			return Attribute(a), nil
		}
	}
	return NotAnAttribute, errors.New(errors.ErrCodeInvalidAttribute, "unknown attribute %q", s)
}
