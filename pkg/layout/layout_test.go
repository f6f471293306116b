package layout

import (
	"runtime"
	"testing"

	"github.com/matzehuels/viewlayout/pkg/constraint"
	"github.com/matzehuels/viewlayout/pkg/errors"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

type fixture struct {
	engine *toolkit.Engine
	root   *toolkit.View
	a, b   *toolkit.View
}

// newFixture builds root with children a and b. Layouts and constraints hold
// views weakly, so the tree stays reachable until the test ends.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	e := toolkit.NewEngine()
	f := &fixture{
		engine: e,
		root:   e.NewView("root"),
		a:      e.NewView("a"),
		b:      e.NewView("b"),
	}
	f.root.AddSubview(f.a)
	f.root.AddSubview(f.b)
	t.Cleanup(func() {
		f.root.Destroy()
		runtime.KeepAlive(f)
	})
	return f
}

func expectPanicCode(t *testing.T, code errors.Code, fn func()) {
	t.Helper()
	defer func() {
		err := errors.FromPanic(recover())
		if err == nil {
			t.Fatal("expected panic, got none")
		}
		if !errors.Is(err, code) {
			t.Fatalf("panic = %v, want %s", err, code)
		}
	}()
	fn()
}

func TestForIsCached(t *testing.T) {
	f := newFixture(t)

	if _, ok := Lookup(f.a); ok {
		t.Fatal("Lookup before For should miss")
	}

	l := For(f.a)
	if For(f.a) != l {
		t.Error("For should return the same layout for the same view")
	}
	if got, ok := Lookup(f.a); !ok || got != l {
		t.Error("Lookup after For should return the cached layout")
	}
	if For(f.b) == l {
		t.Error("different views should get different layouts")
	}
	if l.View() != f.a {
		t.Errorf("View() = %v, want a", l.View())
	}
}

func TestForNilPanics(t *testing.T) {
	expectPanicCode(t, errors.ErrCodeInvalidInput, func() { For(nil) })
	if _, ok := Lookup(nil); ok {
		t.Error("Lookup(nil) should miss")
	}
	if Remove(nil) {
		t.Error("Remove(nil) should report nothing removed")
	}
}

func TestNamedIsLazyAndUnique(t *testing.T) {
	f := newFixture(t)
	l := For(f.a)

	if len(l.Constraints()) != 0 {
		t.Fatal("a new layout should have no constraints")
	}

	top := l.Top()
	if l.Top() != top {
		t.Error("Top() should return the same instance on every call")
	}
	if l.Named(toolkit.Top) != top {
		t.Error("Named(Top) should match Top()")
	}

	got := l.Constraints()
	if len(got) != 1 || got[0] != top {
		t.Errorf("Constraints() = %v, want [top]", got)
	}

	if top.FirstItem() != f.a || top.FirstAttribute() != toolkit.Top {
		t.Errorf("top first term = %v.%v", top.FirstItem(), top.FirstAttribute())
	}
	if top.Item() != f.a || top.Attribute() != toolkit.Top {
		t.Errorf("top placeholder second term = %v.%v", top.Item(), top.Attribute())
	}
	if top.IsActive() {
		t.Error("named constraints start inactive")
	}
}

func TestNamedAccessorsAreDistinct(t *testing.T) {
	f := newFixture(t)
	l := For(f.a)

	getters := []func() *constraint.Mutable{
		l.Leading, l.LeadingMargin, l.Trailing, l.TrailingMargin,
		l.Left, l.LeftMargin, l.Right, l.RightMargin,
		l.Top, l.TopMargin, l.Bottom, l.BottomMargin,
		l.CenterX, l.CenterXWithinMargins, l.CenterY, l.CenterYWithinMargins,
		l.Width, l.Height, l.FirstBaseline, l.LastBaseline,
	}

	seen := map[*constraint.Mutable]bool{}
	attrs := map[toolkit.Attribute]bool{}
	for i, get := range getters {
		m := get()
		if seen[m] {
			t.Errorf("getter %d returned a constraint already returned by another getter", i)
		}
		seen[m] = true
		attrs[m.FirstAttribute()] = true
	}
	if len(attrs) != len(getters) {
		t.Errorf("%d distinct attributes, want %d", len(attrs), len(getters))
	}
	if l.LeadingMargin().FirstAttribute() != toolkit.LeadingMargin {
		t.Errorf("LeadingMargin() attribute = %v", l.LeadingMargin().FirstAttribute())
	}
	if len(l.Constraints()) != len(getters) {
		t.Errorf("Constraints() has %d entries, want %d", len(l.Constraints()), len(getters))
	}
}

func TestNamedInvalidAttributePanics(t *testing.T) {
	f := newFixture(t)
	l := For(f.a)

	expectPanicCode(t, errors.ErrCodeInvalidAttribute, func() { l.Named(toolkit.NotAnAttribute) })
	expectPanicCode(t, errors.ErrCodeInvalidAttribute, func() { l.Named(toolkit.Attribute(99)) })
}

func TestSetterKeepsIdentity(t *testing.T) {
	f := newFixture(t)
	a, b := For(f.a), For(f.b)

	top := a.Top()
	a.SetTop(b.Bottom())

	if a.Top() != top {
		t.Fatal("SetTop should not replace the cached instance")
	}
	if top.Item() != f.b || top.Attribute() != toolkit.Bottom {
		t.Errorf("top second term = %v.%v, want b.bottom", top.Item(), top.Attribute())
	}
	if len(a.Constraints()) != 1 {
		t.Errorf("Constraints() = %v, want only top", a.Constraints())
	}
}

func TestSetterPreservesActivation(t *testing.T) {
	f := newFixture(t)
	a, b := For(f.a), For(f.b)

	a.Top().SetActive(true)
	a.SetTop(b.Bottom())
	if !a.Top().IsActive() {
		t.Error("an active named constraint should stay active after assignment")
	}

	a.SetLeft(b.Right())
	if a.Left().IsActive() {
		t.Error("an inactive named constraint should stay inactive after assignment")
	}

	if f.engine.Len() != 1 {
		t.Errorf("engine Len() = %d, want 1", f.engine.Len())
	}
}

func TestSetFrame(t *testing.T) {
	f := newFixture(t)
	a, b := For(f.a), For(f.b)

	// Activate only some parts to check each keeps its own state.
	a.Left().SetActive(true)
	a.Bottom().SetActive(true)

	before := [4]*constraint.Mutable{}
	before[0], before[1], before[2], before[3] = a.Frame()

	a.SetFrame(b.Frame())

	left, top, right, bottom := a.Frame()
	after := [4]*constraint.Mutable{left, top, right, bottom}
	if before != after {
		t.Fatal("SetFrame should keep the named instances")
	}

	wantAttrs := []toolkit.Attribute{toolkit.Left, toolkit.Top, toolkit.Right, toolkit.Bottom}
	wantActive := []bool{true, false, false, true}
	for i, m := range after {
		if m.Item() != f.b || m.Attribute() != wantAttrs[i] {
			t.Errorf("frame[%d] second term = %v.%v, want b.%v", i, m.Item(), m.Attribute(), wantAttrs[i])
		}
		if m.IsActive() != wantActive[i] {
			t.Errorf("frame[%d] IsActive() = %v, want %v", i, m.IsActive(), wantActive[i])
		}
	}
	if f.engine.Len() != 2 {
		t.Errorf("engine Len() = %d, want 2", f.engine.Len())
	}
}

func TestCompositeGetters(t *testing.T) {
	f := newFixture(t)
	l := For(f.a)

	tests := []struct {
		name string
		got  []*constraint.Mutable
		want []toolkit.Attribute
	}{
		{"LeftTop", pair(l.LeftTop()), []toolkit.Attribute{toolkit.Left, toolkit.Top}},
		{"LeftTopMargin", pair(l.LeftTopMargin()), []toolkit.Attribute{toolkit.LeftMargin, toolkit.TopMargin}},
		{"LeftBottom", pair(l.LeftBottom()), []toolkit.Attribute{toolkit.Left, toolkit.Bottom}},
		{"LeftBottomMargin", pair(l.LeftBottomMargin()), []toolkit.Attribute{toolkit.LeftMargin, toolkit.BottomMargin}},
		{"RightTop", pair(l.RightTop()), []toolkit.Attribute{toolkit.Right, toolkit.Top}},
		{"RightTopMargin", pair(l.RightTopMargin()), []toolkit.Attribute{toolkit.RightMargin, toolkit.TopMargin}},
		{"RightBottom", pair(l.RightBottom()), []toolkit.Attribute{toolkit.Right, toolkit.Bottom}},
		{"RightBottomMargin", pair(l.RightBottomMargin()), []toolkit.Attribute{toolkit.RightMargin, toolkit.BottomMargin}},
		{"LeftRight", pair(l.LeftRight()), []toolkit.Attribute{toolkit.Left, toolkit.Right}},
		{"LeftRightMargin", pair(l.LeftRightMargin()), []toolkit.Attribute{toolkit.LeftMargin, toolkit.RightMargin}},
		{"TopBottom", pair(l.TopBottom()), []toolkit.Attribute{toolkit.Top, toolkit.Bottom}},
		{"TopBottomMargin", pair(l.TopBottomMargin()), []toolkit.Attribute{toolkit.TopMargin, toolkit.BottomMargin}},
		{"Position", pair(l.Position()), []toolkit.Attribute{toolkit.Left, toolkit.Top}},
		{"PositionMargin", pair(l.PositionMargin()), []toolkit.Attribute{toolkit.LeftMargin, toolkit.TopMargin}},
		{"Center", pair(l.Center()), []toolkit.Attribute{toolkit.CenterX, toolkit.CenterY}},
		{"CenterWithinMargins", pair(l.CenterWithinMargins()), []toolkit.Attribute{toolkit.CenterXWithinMargins, toolkit.CenterYWithinMargins}},
		{"Size", pair(l.Size()), []toolkit.Attribute{toolkit.Width, toolkit.Height}},
		{"FrameMargin", quad(l.FrameMargin()), []toolkit.Attribute{toolkit.LeftMargin, toolkit.TopMargin, toolkit.RightMargin, toolkit.BottomMargin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, m := range tt.got {
				if m != l.Named(tt.want[i]) {
					t.Errorf("part %d = %v, want named %v", i, m.FirstAttribute(), tt.want[i])
				}
			}
		})
	}
}

func TestCompositeSetters(t *testing.T) {
	f := newFixture(t)
	a, b := For(f.a), For(f.b)

	a.SetSize(b.Size())
	a.SetCenter(b.Center())
	a.SetPositionMargin(b.PositionMargin())

	checks := []struct {
		m    *constraint.Mutable
		want toolkit.Attribute
	}{
		{a.Width(), toolkit.Width},
		{a.Height(), toolkit.Height},
		{a.CenterX(), toolkit.CenterX},
		{a.CenterY(), toolkit.CenterY},
		{a.LeftMargin(), toolkit.LeftMargin},
		{a.TopMargin(), toolkit.TopMargin},
	}
	for _, c := range checks {
		if c.m.Item() != f.b || c.m.Attribute() != c.want {
			t.Errorf("%v second term = %v.%v, want b.%v", c.m.FirstAttribute(), c.m.Item(), c.m.Attribute(), c.want)
		}
	}
}

func TestConstraintDefaults(t *testing.T) {
	f := newFixture(t)
	l := For(f.a)

	m := l.Constraint(toolkit.Width, constraint.WithConstant(120))

	if !m.IsActive() {
		t.Error("ad-hoc constraints should be active by default")
	}
	if m.Priority() != toolkit.Required || m.Relation() != toolkit.Equal || m.Multiplier() != 1 {
		t.Errorf("defaults = %v", m)
	}
	if m.Item() != nil || m.Attribute() != toolkit.NotAnAttribute || m.Constant() != 120 {
		t.Errorf("second term = %v.%v + %v", m.Item(), m.Attribute(), m.Constant())
	}
	if got := l.Constraints(); len(got) != 1 || got[0] != m {
		t.Errorf("Constraints() = %v, want the new constraint", got)
	}

	inactive := l.Constraint(toolkit.Height, constraint.WithActive(false), constraint.WithPriority(toolkit.DefaultLow))
	if inactive.IsActive() || inactive.Priority() != toolkit.DefaultLow {
		t.Errorf("options ignored: %v active=%v", inactive, inactive.IsActive())
	}
}

func TestConstraintTo(t *testing.T) {
	f := newFixture(t)
	a, b := For(f.a), For(f.b)

	m := a.ConstraintTo(toolkit.Left, b.CenterX(),
		constraint.WithRelation(toolkit.GreaterThanOrEqual),
		constraint.WithConstant(30),
		constraint.WithPriority(toolkit.DefaultHigh),
	)

	if m.FirstItem() != f.a || m.FirstAttribute() != toolkit.Left {
		t.Errorf("first term = %v.%v", m.FirstItem(), m.FirstAttribute())
	}
	if m.Item() != f.b || m.Attribute() != toolkit.CenterX {
		t.Errorf("second term = %v.%v, want b.centerX", m.Item(), m.Attribute())
	}
	if m.Relation() != toolkit.GreaterThanOrEqual || m.Constant() != 30 || !m.IsActive() {
		t.Errorf("constraint = %v", m)
	}

	expectPanicCode(t, errors.ErrCodeUnconfigured, func() { a.ConstraintTo(toolkit.Left, &constraint.Mutable{}) })
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	l := For(f.a)

	l.Top().SetActive(true)
	l.Constraint(toolkit.Width, constraint.WithConstant(10))
	if f.engine.Len() != 2 {
		t.Fatalf("engine Len() = %d, want 2", f.engine.Len())
	}

	if !Remove(f.a) {
		t.Fatal("Remove should report the layout was removed")
	}
	if f.engine.Len() != 0 {
		t.Errorf("engine Len() = %d after Remove, want 0", f.engine.Len())
	}
	if _, ok := Lookup(f.a); ok {
		t.Error("Lookup after Remove should miss")
	}
	if Remove(f.a) {
		t.Error("second Remove should report nothing removed")
	}

	fresh := For(f.a)
	if fresh == l {
		t.Error("For after Remove should build a new layout")
	}
	if len(fresh.Constraints()) != 0 {
		t.Error("a rebuilt layout should start empty")
	}
}

func TestDestroyRemovesLayout(t *testing.T) {
	f := newFixture(t)
	n := Count()

	For(f.a).Left().SetActive(true)
	For(f.b).Constraint(toolkit.Height, constraint.WithConstant(20))
	if Count() != n+2 {
		t.Fatalf("Count() = %d, want %d", Count(), n+2)
	}

	f.root.Destroy()

	if f.engine.Len() != 0 {
		t.Errorf("engine Len() = %d after Destroy, want 0", f.engine.Len())
	}
	if Count() != n {
		t.Errorf("Count() = %d after Destroy, want %d", Count(), n)
	}
}

func TestDestroyDeactivatesReferencingConstraints(t *testing.T) {
	f := newFixture(t)

	top := For(f.a).Top()
	For(f.a).SetTop(For(f.b).Bottom())
	top.SetActive(true)
	if top.Item() != f.b {
		t.Fatalf("Item() = %v, want b", top.Item())
	}

	f.b.Destroy()

	if top.IsActive() {
		t.Error("a.top still active after its target was destroyed")
	}
	for _, c := range f.engine.Active() {
		if c.SecondItem() == f.b || c.FirstItem() == f.b {
			t.Errorf("engine still holds %v", c)
		}
	}
	if _, ok := Lookup(f.a); !ok {
		t.Error("layout of a should survive the destruction of b")
	}
}

func TestTeardownRegisteredOnce(t *testing.T) {
	f := newFixture(t)
	n := Count()
	id := f.a.ID()

	for range 3 {
		For(f.a).Left().SetActive(true)
		if _, ok := watched[id]; !ok {
			t.Fatal("For should register a teardown for a")
		}
		if !Remove(f.a) {
			t.Fatal("Remove() = false, want true")
		}
		if _, ok := watched[id]; !ok {
			t.Fatal("Remove should keep the teardown registered")
		}
	}
	For(f.a).Width().SetActive(true)

	f.a.Destroy()

	if _, ok := watched[id]; ok {
		t.Error("Destroy should clear the teardown registration")
	}
	if Count() != n {
		t.Errorf("Count() = %d after Destroy, want %d", Count(), n)
	}
	if f.engine.Len() != 0 {
		t.Errorf("engine Len() = %d after Destroy, want 0", f.engine.Len())
	}
}

// TestDemoScene mirrors the sample controller: a grey square centred in the
// root, a blue view hanging off its bottom-right.
func TestDemoScene(t *testing.T) {
	f := newFixture(t)
	center := f.engine.NewView("center")
	blue := f.engine.NewView("blue")
	f.root.AddSubview(center)
	f.root.AddSubview(blue)

	c := For(center)
	c.ConstraintTo(toolkit.CenterX, For(f.root).CenterX())
	c.ConstraintTo(toolkit.CenterY, For(f.root).CenterY())
	c.Width().SetConstant(40)
	c.Height().SetConstant(40)
	c.Width().SetActive(true)
	c.Height().SetActive(true)

	l := For(blue)
	l.SetTop(c.Bottom())
	l.SetLeft(c.CenterX())
	l.Left().SetRelation(toolkit.GreaterThanOrEqual)
	l.Left().SetMultiplier(1.01)
	l.Left().SetConstant(1)
	l.SetWidth(c.Width())
	l.SetHeight(l.Width())
	l.Height().SetMultiplier(2)
	for _, m := range l.Constraints() {
		m.SetActive(true)
	}

	if c.Width().Item() != nil || c.Width().Constant() != 40 {
		t.Errorf("center width = %v, want absolute 40", c.Width())
	}
	if got := l.Top(); got.Item() != center || got.Attribute() != toolkit.Bottom {
		t.Errorf("blue top = %v", got)
	}
	left := l.Left()
	if left.Item() != center || left.Attribute() != toolkit.CenterX ||
		left.Relation() != toolkit.GreaterThanOrEqual || left.Multiplier() != 1.01 || left.Constant() != 1 {
		t.Errorf("blue left = %v", left)
	}
	if h := l.Height(); h.Item() != blue || h.Attribute() != toolkit.Width || h.Multiplier() != 2 {
		t.Errorf("blue height = %v", h)
	}

	// 2 center-to-root + 2 center size + 4 blue constraints.
	if f.engine.Len() != 8 {
		t.Errorf("engine Len() = %d, want 8", f.engine.Len())
	}
}

func pair(a, b *constraint.Mutable) []*constraint.Mutable { return []*constraint.Mutable{a, b} }

func quad(a, b, c, d *constraint.Mutable) []*constraint.Mutable {
	return []*constraint.Mutable{a, b, c, d}
}
