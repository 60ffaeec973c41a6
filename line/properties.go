package line

import (
	"math"

	"github.com/go-spatial/geom"

	"github.com/pdok/planeline/mathhelp"
)

// Properties are the derived facts about a line.
type Properties struct {
	A, B, C float64
	// Slope is ±Inf for vertical lines
	Slope float64
	// XIntercept is nil for lines parallel to the x axis
	XIntercept *float64
	// YIntercept is nil for vertical lines
	YIntercept *float64
	// DirectionAngle is the angle of the line itself with the +x axis, in degrees in (-180, 180]
	DirectionAngle float64
	// NormalAngle is the angle of the normal vector (A, B) with the +x axis, in degrees in (-180, 180]
	NormalAngle float64
	// SignedDistance is −C/√(A²+B²), Distance its absolute value
	SignedDistance float64
	Distance       float64
	UnitNormal     geom.Point
	Foot           geom.Point
}

func (l Line) Properties() Properties {
	norm := math.Hypot(l.A, l.B)
	an, bn := l.A/norm, l.B/norm
	signed := -l.C / norm

	normalAngle := mathhelp.NormalizeDegrees(mathhelp.Rad2Deg(math.Atan2(bn, an)))
	props := Properties{
		A:              l.A,
		B:              l.B,
		C:              l.C,
		DirectionAngle: mathhelp.NormalizeDegrees(normalAngle + 90),
		NormalAngle:    normalAngle,
		SignedDistance: signed,
		Distance:       math.Abs(signed),
		UnitNormal:     geom.Point{an, bn},
		Foot:           l.Foot(),
	}

	if m, b, ok := l.SlopeIntercept(); ok {
		props.Slope = m
		props.YIntercept = &b
	} else {
		props.Slope = math.Inf(1)
	}
	if x, ok := l.XAt(0); ok {
		props.XIntercept = &x
	}
	return props
}
