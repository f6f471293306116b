package toolkit

import (
	"strconv"
	"strings"

	"github.com/matzehuels/viewlayout/pkg/errors"
)

// Relation compares the two sides of a constraint.
type Relation int

const (
	Equal Relation = iota
	GreaterThanOrEqual
	LessThanOrEqual
)

// String returns the relation's name.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "equal"
	case GreaterThanOrEqual:
		return "greaterThanOrEqual"
	case LessThanOrEqual:
		return "lessThanOrEqual"
	default:
		return "relation(" + itoa(int(r)) + ")"
	}
}

// Symbol returns the relation as an operator: "=", ">=" or "<=".
func (r Relation) Symbol() string {
	switch r {
	case GreaterThanOrEqual:
		return ">="
	case LessThanOrEqual:
		return "<="
	default:
		return "="
	}
}

// ParseRelation accepts the relation names and the symbols "=", "==", ">="
// and "<=".
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "=", "==", "equal", "eq":
		return Equal, nil
	case ">=", "greaterthanorequal", "gte":
		return GreaterThanOrEqual, nil
	case "<=", "lessthanorequal", "lte":
		return LessThanOrEqual, nil
	}
	return Equal, errors.New(errors.ErrCodeInvalidRelation, "unknown relation %q", s)
}

// Priority orders constraints that cannot all be satisfied. Required
// constraints must hold; lower priorities are dropped first.
type Priority float32

const (
	Required         Priority = 1000
	DefaultHigh      Priority = 750
	DefaultLow       Priority = 250
	FittingSizeLevel Priority = 50
)

// String returns the well-known name for standard priorities and the number
// otherwise.
func (p Priority) String() string {
	switch p {
	case Required:
		return "required"
	case DefaultHigh:
		return "high"
	case DefaultLow:
		return "low"
	case FittingSizeLevel:
		return "fitting"
	}
	return strconv.FormatFloat(float64(p), 'g', -1, 32)
}

// ParsePriority accepts "required", "high", "low", "fitting" or a number in
// (0, 1000].
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "required":
		return Required, nil
	case "high", "defaulthigh":
		return DefaultHigh, nil
	case "low", "defaultlow":
		return DefaultLow, nil
	case "fitting", "fittingsizelevel":
		return FittingSizeLevel, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidPriority, err, "invalid priority %q", s)
	}
	p := Priority(v)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate checks that p lies in (0, 1000].
func (p Priority) Validate() error {
	if p <= 0 || p > Required {
		return errors.New(errors.ErrCodeInvalidPriority, "priority %v out of range (0, 1000]", float32(p))
	}
	return nil
}

func itoa(i int) string { return strconv.Itoa(i) }
