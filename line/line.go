// Package line defines straight lines in the plane in general form
// and builds them from the classical analytic-geometry inputs.
//
// Every constructor normalizes to A·x + B·y + C = 0, so the special cases
// (vertical lines, lines parallel to an axis) are handled in one place.
package line

import (
	"errors"
	"math"

	"github.com/go-spatial/geom"

	"github.com/pdok/planeline/geomhelp"
	"github.com/pdok/planeline/mathhelp"
)

var (
	ErrDegenerate       = errors.New("A and B cannot both be zero")
	ErrCoincidentPoints = errors.New("points must be distinct")
	ErrZeroIntercept    = errors.New("intercepts must be nonzero for the intercept form")
	ErrNegativeDistance = errors.New("p must be ≥ 0 in normal form")
	ErrNotFinite        = errors.New("parameters must be finite numbers")
	ErrMissingParam     = errors.New("missing parameter")
	ErrUnknownKind      = errors.New("unknown kind")
)

// Line is A·x + B·y + C = 0. A and B are never both zero.
type Line struct {
	A float64
	B float64
	C float64
}

// FromGeneral validates the coefficients of A·x + B·y + C = 0.
func FromGeneral(a, b, c float64) (Line, error) {
	if !mathhelp.AllFinite(a, b, c) {
		return Line{}, ErrNotFinite
	}
	if mathhelp.NearlyZero(a) && mathhelp.NearlyZero(b) {
		return Line{}, ErrDegenerate
	}
	return Line{A: a, B: b, C: c}, nil
}

// IsVertical returns true if the line is x = constant.
func (l Line) IsVertical() bool { return mathhelp.NearlyZero(l.B) }

// IsHorizontal returns true if the line is y = constant.
func (l Line) IsHorizontal() bool { return mathhelp.NearlyZero(l.A) && !l.IsVertical() }

// SlopeIntercept returns m and b of y = m·x + b. Ok is false for vertical lines.
func (l Line) SlopeIntercept() (m, b float64, ok bool) {
	if l.IsVertical() {
		return 0, 0, false
	}
	return -l.A / l.B, -l.C / l.B, true
}

// VerticalX returns a of x = a. Ok is false for non-vertical lines.
func (l Line) VerticalX() (x float64, ok bool) {
	if !l.IsVertical() {
		return 0, false
	}
	return -l.C / l.A, true
}

// YAt returns y for the given x. Ok is false for vertical lines.
func (l Line) YAt(x float64) (y float64, ok bool) {
	if l.IsVertical() {
		return 0, false
	}
	return -(l.A*x + l.C) / l.B, true
}

// XAt returns x for the given y. Ok is false for horizontal lines.
func (l Line) XAt(y float64) (x float64, ok bool) {
	if mathhelp.NearlyZero(l.A) {
		return 0, false
	}
	return -(l.B*y + l.C) / l.A, true
}

// Distance is the perpendicular distance from pt to the line.
func (l Line) Distance(pt geom.Point) float64 {
	return math.Abs(l.A*pt.X()+l.B*pt.Y()+l.C) / math.Hypot(l.A, l.B)
}

// Contains returns true if pt lies within tolerance of the line.
func (l Line) Contains(pt geom.Point, tolerance float64) bool {
	return l.Distance(pt) <= tolerance
}

// Foot is the point of the line closest to the origin.
func (l Line) Foot() geom.Point {
	n2 := l.A*l.A + l.B*l.B
	return geom.Point{-l.A * l.C / n2, -l.B * l.C / n2}
}

// Anchor is a point on the line: the x-intercept if there is one,
// otherwise the y-intercept, otherwise the foot of the perpendicular from the origin.
func (l Line) Anchor() geom.Point {
	if x, ok := l.XAt(0); ok {
		return geom.Point{x, 0}
	}
	if y, ok := l.YAt(0); ok {
		return geom.Point{0, y}
	}
	return l.Foot()
}

// Perpendicular returns the line through pt at a right angle to l.
func (l Line) Perpendicular(pt geom.Point) Line {
	a, b := l.B, -l.A
	return Line{A: a, B: b, C: -(a*pt.X() + b*pt.Y())}
}

// direction is a vector along the line.
func (l Line) direction() [2]float64 {
	return [2]float64{-l.B, l.A}
}

// Segment returns the part of the line inside the extent.
// Ok is false if the line does not cross the extent.
func (l Line) Segment(extent geom.Extent) (geom.Line, bool) {
	if x, ok := l.VerticalX(); ok {
		return geomhelp.ClipToExtent([2]float64{x, 0}, [2]float64{0, 1}, extent)
	}
	if l.IsHorizontal() {
		y := -l.C / l.B
		return geomhelp.ClipToExtent([2]float64{0, y}, [2]float64{1, 0}, extent)
	}
	dir := l.direction()
	if dir[0] < 0 {
		// left to right
		dir[0], dir[1] = -dir[0], -dir[1]
	}
	return geomhelp.ClipToExtent(l.Foot(), dir, extent)
}

// Sample returns n evenly spaced points of the line inside the extent.
// Nil if the line does not cross the extent.
func (l Line) Sample(extent geom.Extent, n int) []geom.Point {
	segment, ok := l.Segment(extent)
	if !ok {
		return nil
	}
	return geomhelp.Interpolate(segment, n)
}
