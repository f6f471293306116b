package layout

import (
	"github.com/matzehuels/viewlayout/pkg/constraint"
	"github.com/matzehuels/viewlayout/pkg/toolkit"
)

// Named accessors. Each getter returns the cached constraint for its
// attribute; each setter re-targets that constraint at the first term of
// the argument and keeps its identity.

func (l *Layout) Leading() *constraint.Mutable {
	return l.Named(toolkit.Leading)
}

func (l *Layout) SetLeading(m *constraint.Mutable) {
	l.SetNamed(toolkit.Leading, m)
}

func (l *Layout) LeadingMargin() *constraint.Mutable {
	return l.Named(toolkit.LeadingMargin)
}

func (l *Layout) SetLeadingMargin(m *constraint.Mutable) {
	l.SetNamed(toolkit.LeadingMargin, m)
}

func (l *Layout) Trailing() *constraint.Mutable {
	return l.Named(toolkit.Trailing)
}

func (l *Layout) SetTrailing(m *constraint.Mutable) {
	l.SetNamed(toolkit.Trailing, m)
}

func (l *Layout) TrailingMargin() *constraint.Mutable {
	return l.Named(toolkit.TrailingMargin)
}

func (l *Layout) SetTrailingMargin(m *constraint.Mutable) {
	l.SetNamed(toolkit.TrailingMargin, m)
}

func (l *Layout) Left() *constraint.Mutable {
	return l.Named(toolkit.Left)
}

func (l *Layout) SetLeft(m *constraint.Mutable) {
	l.SetNamed(toolkit.Left, m)
}

func (l *Layout) LeftMargin() *constraint.Mutable {
	return l.Named(toolkit.LeftMargin)
}

func (l *Layout) SetLeftMargin(m *constraint.Mutable) {
	l.SetNamed(toolkit.LeftMargin, m)
}

func (l *Layout) Right() *constraint.Mutable {
	return l.Named(toolkit.Right)
}

func (l *Layout) SetRight(m *constraint.Mutable) {
	l.SetNamed(toolkit.Right, m)
}

func (l *Layout) RightMargin() *constraint.Mutable {
	return l.Named(toolkit.RightMargin)
}

func (l *Layout) SetRightMargin(m *constraint.Mutable) {
	l.SetNamed(toolkit.RightMargin, m)
}

func (l *Layout) Top() *constraint.Mutable {
	return l.Named(toolkit.Top)
}

func (l *Layout) SetTop(m *constraint.Mutable) {
	l.SetNamed(toolkit.Top, m)
}

func (l *Layout) TopMargin() *constraint.Mutable {
	return l.Named(toolkit.TopMargin)
}

func (l *Layout) SetTopMargin(m *constraint.Mutable) {
	l.SetNamed(toolkit.TopMargin, m)
}

func (l *Layout) Bottom() *constraint.Mutable {
	return l.Named(toolkit.Bottom)
}

func (l *Layout) SetBottom(m *constraint.Mutable) {
	l.SetNamed(toolkit.Bottom, m)
}

func (l *Layout) BottomMargin() *constraint.Mutable {
	return l.Named(toolkit.BottomMargin)
}

func (l *Layout) SetBottomMargin(m *constraint.Mutable) {
	l.SetNamed(toolkit.BottomMargin, m)
}

func (l *Layout) CenterX() *constraint.Mutable {
	return l.Named(toolkit.CenterX)
}

func (l *Layout) SetCenterX(m *constraint.Mutable) {
	l.SetNamed(toolkit.CenterX, m)
}

func (l *Layout) CenterXWithinMargins() *constraint.Mutable {
	return l.Named(toolkit.CenterXWithinMargins)
}

func (l *Layout) SetCenterXWithinMargins(m *constraint.Mutable) {
	l.SetNamed(toolkit.CenterXWithinMargins, m)
}

func (l *Layout) CenterY() *constraint.Mutable {
	return l.Named(toolkit.CenterY)
}

func (l *Layout) SetCenterY(m *constraint.Mutable) {
	l.SetNamed(toolkit.CenterY, m)
}

func (l *Layout) CenterYWithinMargins() *constraint.Mutable {
	return l.Named(toolkit.CenterYWithinMargins)
}

func (l *Layout) SetCenterYWithinMargins(m *constraint.Mutable) {
	l.SetNamed(toolkit.CenterYWithinMargins, m)
}

func (l *Layout) Width() *constraint.Mutable {
	return l.Named(toolkit.Width)
}

func (l *Layout) SetWidth(m *constraint.Mutable) {
	l.SetNamed(toolkit.Width, m)
}

func (l *Layout) Height() *constraint.Mutable {
	return l.Named(toolkit.Height)
}

func (l *Layout) SetHeight(m *constraint.Mutable) {
	l.SetNamed(toolkit.Height, m)
}

func (l *Layout) FirstBaseline() *constraint.Mutable {
	return l.Named(toolkit.FirstBaseline)
}

func (l *Layout) SetFirstBaseline(m *constraint.Mutable) {
	l.SetNamed(toolkit.FirstBaseline, m)
}

func (l *Layout) LastBaseline() *constraint.Mutable {
	return l.Named(toolkit.LastBaseline)
}

func (l *Layout) SetLastBaseline(m *constraint.Mutable) {
	l.SetNamed(toolkit.LastBaseline, m)
}
