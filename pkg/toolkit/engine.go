package toolkit

import "slices"

// EventKind describes a change in the set of active constraints.
type EventKind int

const (
	EventActivated EventKind = iota
	EventDeactivated
	EventReplaced
)

func (k EventKind) String() string {
	switch k {
	case EventActivated:
		return "activated"
	case EventDeactivated:
		return "deactivated"
	case EventReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after each change. Previous is only set
// for EventReplaced.
type Event struct {
	Kind       EventKind
	Constraint *Constraint
	Previous   *Constraint
}

// Engine holds the ordered set of active constraints. It does not solve
// them; it is the registry a solver would read from.
type Engine struct {
	active    []*Constraint
	observers []func(Event)
}

// NewEngine creates an engine with no active constraints.
func NewEngine() *Engine {
	return &Engine{}
}

// Observe registers fn to be called after every activation change.
func (e *Engine) Observe(fn func(Event)) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

// Active returns the active constraints in activation order.
func (e *Engine) Active() []*Constraint { return slices.Clone(e.active) }

// Len returns the number of active constraints.
func (e *Engine) Len() int { return len(e.active) }

// ActiveFor returns the active constraints whose first or second item is v.
func (e *Engine) ActiveFor(v *View) []*Constraint {
	var out []*Constraint
	for _, c := range e.active {
		if c.FirstItem() == v || c.SecondItem() == v {
			out = append(out, c)
		}
	}
	return out
}

// Replace swaps old for next in a single step. When old is active, next takes
// its slot in the engine and becomes active; old is deactivated. Observers see
// one EventReplaced. When old is inactive, nothing changes.
func Replace(old, next *Constraint) {
	if old == nil || next == nil || old == next || !old.active {
		return
	}
	if next.active {
		next.SetActive(false)
	}
	e := old.engine
	if e == nil || next.engine != e {
		old.SetActive(false)
		next.SetActive(true)
		return
	}
	e.replace(old, next)
}

func (e *Engine) activate(c *Constraint) {
	e.active = append(e.active, c)
	c.active = true
	e.emit(Event{Kind: EventActivated, Constraint: c})
}

func (e *Engine) deactivate(c *Constraint) {
	if i := slices.Index(e.active, c); i >= 0 {
		e.active = slices.Delete(e.active, i, i+1)
	}
	c.active = false
	e.emit(Event{Kind: EventDeactivated, Constraint: c})
}

func (e *Engine) replace(old, next *Constraint) {
	i := slices.Index(e.active, old)
	if i < 0 {
		e.active = append(e.active, next)
	} else {
		e.active[i] = next
	}
	old.active = false
	next.active = true
	e.emit(Event{Kind: EventReplaced, Constraint: next, Previous: old})
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.observers {
		fn(ev)
	}
}
