package layout

import "github.com/matzehuels/viewlayout/pkg/constraint"

// Composite accessors. Getters return the named constraints in a fixed
// order; setters take the same order and assign left to right.

func (l *Layout) LeftTop() (left, top *constraint.Mutable) {
	return l.Left(), l.Top()
}

func (l *Layout) SetLeftTop(left, top *constraint.Mutable) {
	l.SetLeft(left)
	l.SetTop(top)
}

func (l *Layout) LeftTopMargin() (leftMargin, topMargin *constraint.Mutable) {
	return l.LeftMargin(), l.TopMargin()
}

func (l *Layout) SetLeftTopMargin(leftMargin, topMargin *constraint.Mutable) {
	l.SetLeftMargin(leftMargin)
	l.SetTopMargin(topMargin)
}

func (l *Layout) LeftBottom() (left, bottom *constraint.Mutable) {
	return l.Left(), l.Bottom()
}

func (l *Layout) SetLeftBottom(left, bottom *constraint.Mutable) {
	l.SetLeft(left)
	l.SetBottom(bottom)
}

func (l *Layout) LeftBottomMargin() (leftMargin, bottomMargin *constraint.Mutable) {
	return l.LeftMargin(), l.BottomMargin()
}

func (l *Layout) SetLeftBottomMargin(leftMargin, bottomMargin *constraint.Mutable) {
	l.SetLeftMargin(leftMargin)
	l.SetBottomMargin(bottomMargin)
}

func (l *Layout) RightTop() (right, top *constraint.Mutable) {
	return l.Right(), l.Top()
}

func (l *Layout) SetRightTop(right, top *constraint.Mutable) {
	l.SetRight(right)
	l.SetTop(top)
}

func (l *Layout) RightTopMargin() (rightMargin, topMargin *constraint.Mutable) {
	return l.RightMargin(), l.TopMargin()
}

func (l *Layout) SetRightTopMargin(rightMargin, topMargin *constraint.Mutable) {
	l.SetRightMargin(rightMargin)
	l.SetTopMargin(topMargin)
}

func (l *Layout) RightBottom() (right, bottom *constraint.Mutable) {
	return l.Right(), l.Bottom()
}

func (l *Layout) SetRightBottom(right, bottom *constraint.Mutable) {
	l.SetRight(right)
	l.SetBottom(bottom)
}

func (l *Layout) RightBottomMargin() (rightMargin, bottomMargin *constraint.Mutable) {
	return l.RightMargin(), l.BottomMargin()
}

func (l *Layout) SetRightBottomMargin(rightMargin, bottomMargin *constraint.Mutable) {
	l.SetRightMargin(rightMargin)
	l.SetBottomMargin(bottomMargin)
}

func (l *Layout) LeftRight() (left, right *constraint.Mutable) {
	return l.Left(), l.Right()
}

func (l *Layout) SetLeftRight(left, right *constraint.Mutable) {
	l.SetLeft(left)
	l.SetRight(right)
}

func (l *Layout) LeftRightMargin() (leftMargin, rightMargin *constraint.Mutable) {
	return l.LeftMargin(), l.RightMargin()
}

func (l *Layout) SetLeftRightMargin(leftMargin, rightMargin *constraint.Mutable) {
	l.SetLeftMargin(leftMargin)
	l.SetRightMargin(rightMargin)
}

func (l *Layout) TopBottom() (top, bottom *constraint.Mutable) {
	return l.Top(), l.Bottom()
}

func (l *Layout) SetTopBottom(top, bottom *constraint.Mutable) {
	l.SetTop(top)
	l.SetBottom(bottom)
}

func (l *Layout) TopBottomMargin() (topMargin, bottomMargin *constraint.Mutable) {
	return l.TopMargin(), l.BottomMargin()
}

func (l *Layout) SetTopBottomMargin(topMargin, bottomMargin *constraint.Mutable) {
	l.SetTopMargin(topMargin)
	l.SetBottomMargin(bottomMargin)
}

func (l *Layout) Center() (centerX, centerY *constraint.Mutable) {
	return l.CenterX(), l.CenterY()
}

func (l *Layout) SetCenter(centerX, centerY *constraint.Mutable) {
	l.SetCenterX(centerX)
	l.SetCenterY(centerY)
}

func (l *Layout) CenterWithinMargins() (centerX, centerY *constraint.Mutable) {
	return l.CenterXWithinMargins(), l.CenterYWithinMargins()
}

func (l *Layout) SetCenterWithinMargins(centerX, centerY *constraint.Mutable) {
	l.SetCenterXWithinMargins(centerX)
	l.SetCenterYWithinMargins(centerY)
}

func (l *Layout) Size() (width, height *constraint.Mutable) {
	return l.Width(), l.Height()
}

func (l *Layout) SetSize(width, height *constraint.Mutable) {
	l.SetWidth(width)
	l.SetHeight(height)
}

// Position is LeftTop.
func (l *Layout) Position() (left, top *constraint.Mutable) {
	return l.LeftTop()
}

func (l *Layout) SetPosition(left, top *constraint.Mutable) {
	l.SetLeftTop(left, top)
}

// PositionMargin is LeftTopMargin.
func (l *Layout) PositionMargin() (leftMargin, topMargin *constraint.Mutable) {
	return l.LeftTopMargin()
}

func (l *Layout) SetPositionMargin(leftMargin, topMargin *constraint.Mutable) {
	l.SetLeftTopMargin(leftMargin, topMargin)
}

// Frame returns the four edges in the order left, top, right, bottom.
func (l *Layout) Frame() (left, top, right, bottom *constraint.Mutable) {
	return l.Left(), l.Top(), l.Right(), l.Bottom()
}

// SetFrame assigns left, top, right and bottom, in that order. Each part
// keeps its own activation state.
func (l *Layout) SetFrame(left, top, right, bottom *constraint.Mutable) {
	l.SetLeft(left)
	l.SetTop(top)
	l.SetRight(right)
	l.SetBottom(bottom)
}

func (l *Layout) FrameMargin() (leftMargin, topMargin, rightMargin, bottomMargin *constraint.Mutable) {
	return l.LeftMargin(), l.TopMargin(), l.RightMargin(), l.BottomMargin()
}

func (l *Layout) SetFrameMargin(leftMargin, topMargin, rightMargin, bottomMargin *constraint.Mutable) {
	l.SetLeftMargin(leftMargin)
	l.SetTopMargin(topMargin)
	l.SetRightMargin(rightMargin)
	l.SetBottomMargin(bottomMargin)
}
