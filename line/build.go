package line

import (
	"fmt"
	"math"

	"github.com/go-spatial/geom"

	"github.com/pdok/planeline/mathhelp"
)

// Params holds the numeric inputs of a kind by Param name.
type Params map[string]float64

type constructor struct {
	params  []Param
	build   func(v []float64) (Line, error)
	markers func(v []float64, l Line) []geom.Point
}

var constructors = map[Kind]constructor{
	PointSlope: {
		params: []Param{{Name: "x0"}, {Name: "y0"}, {Name: "m", Hint: "slope"}},
		build:  func(v []float64) (Line, error) { return FromPointSlope(v[0], v[1], v[2]), nil },
		markers: func(v []float64, _ Line) []geom.Point {
			return []geom.Point{{v[0], v[1]}}
		},
	},
	TwoPoints: {
		params: []Param{{Name: "x1"}, {Name: "y1"}, {Name: "x2"}, {Name: "y2"}},
		build: func(v []float64) (Line, error) {
			return FromTwoPoints(geom.Point{v[0], v[1]}, geom.Point{v[2], v[3]})
		},
		markers: func(v []float64, _ Line) []geom.Point {
			return []geom.Point{{v[0], v[1]}, {v[2], v[3]}}
		},
	},
	SlopeIntercept: {
		params: []Param{{Name: "m", Hint: "slope"}, {Name: "b", Hint: "y-intercept"}},
		build:  func(v []float64) (Line, error) { return FromSlopeIntercept(v[0], v[1]), nil },
		markers: func(v []float64, _ Line) []geom.Point {
			return []geom.Point{{0, v[1]}}
		},
	},
	Intercepts: {
		params: []Param{{Name: "a", Hint: "x-intercept, ≠0"}, {Name: "b", Hint: "y-intercept, ≠0"}},
		build:  func(v []float64) (Line, error) { return FromIntercepts(v[0], v[1]) },
		markers: func(v []float64, _ Line) []geom.Point {
			return []geom.Point{{v[0], 0}, {0, v[1]}}
		},
	},
	AnglePoint: {
		params: []Param{{Name: "x0"}, {Name: "y0"}, {Name: "alpha", Hint: "degrees from +x axis"}},
		build:  func(v []float64) (Line, error) { return FromAnglePoint(geom.Point{v[0], v[1]}, v[2]), nil },
		markers: func(v []float64, _ Line) []geom.Point {
			return []geom.Point{{v[0], v[1]}}
		},
	},
	Normal: {
		params: []Param{{Name: "p", Hint: "distance from origin, ≥0"}, {Name: "alpha", Hint: "normal angle in degrees"}},
		build:  func(v []float64) (Line, error) { return FromNormal(v[0], v[1]) },
		markers: func(_ []float64, l Line) []geom.Point {
			return []geom.Point{l.Foot()}
		},
	},
	General: {
		params: []Param{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		build:  func(v []float64) (Line, error) { return FromGeneral(v[0], v[1], v[2]) },
	},
	Vertical: {
		params: []Param{{Name: "a", Hint: "x = a"}},
		build:  func(v []float64) (Line, error) { return FromVertical(v[0]), nil },
	},
	Horizontal: {
		params: []Param{{Name: "b", Hint: "y = b"}},
		build:  func(v []float64) (Line, error) { return FromHorizontal(v[0]), nil },
	},
}

// Build computes the line of the given kind from its params.
// Custom lines come from a Registry instead.
func Build(k Kind, params Params) (Line, error) {
	c, v, err := lookup(k, params)
	if err != nil {
		return Line{}, err
	}
	l, err := c.build(v)
	if err != nil {
		return Line{}, fmt.Errorf("%v: %w", k, err)
	}
	// finite inputs can still overflow, e.g. a·b of huge intercepts
	if !mathhelp.AllFinite(l.A, l.B, l.C) {
		return Line{}, fmt.Errorf("%v: %w", k, ErrNotFinite)
	}
	return l, nil
}

// Markers returns the points given as input of the kind, to be marked on a plot.
func Markers(k Kind, params Params, l Line) []geom.Point {
	c, v, err := lookup(k, params)
	if err != nil || c.markers == nil {
		return nil
	}
	return c.markers(v, l)
}

func lookup(k Kind, params Params) (constructor, []float64, error) {
	if !k.Valid() {
		return constructor{}, nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	c, ok := constructors[k]
	if !ok {
		return c, nil, fmt.Errorf("%w: %v has no constructor", ErrUnknownKind, k)
	}
	v := make([]float64, len(c.params))
	for i, p := range c.params {
		value, ok := params[p.Name]
		if !ok {
			return c, nil, fmt.Errorf("%v: %w %q", k, ErrMissingParam, p.Name)
		}
		v[i] = value
	}
	if !mathhelp.AllFinite(v...) {
		return c, nil, fmt.Errorf("%v: %w", k, ErrNotFinite)
	}
	return c, v, nil
}

// FromPointSlope is y = m(x − x0) + y0.
func FromPointSlope(x0, y0, m float64) Line {
	return Line{A: m, B: -1, C: y0 - m*x0}
}

// FromTwoPoints is the line through p1 and p2, vertical if they share x.
func FromTwoPoints(p1, p2 geom.Point) (Line, error) {
	if p1.X() == p2.X() && p1.Y() == p2.Y() {
		return Line{}, ErrCoincidentPoints
	}
	if p1.X() == p2.X() {
		return FromVertical(p1.X()), nil
	}
	m := (p2.Y() - p1.Y()) / (p2.X() - p1.X())
	return FromPointSlope(p1.X(), p1.Y(), m), nil
}

// FromSlopeIntercept is y = m·x + b.
func FromSlopeIntercept(m, b float64) Line {
	return Line{A: m, B: -1, C: b}
}

// FromIntercepts is x/a + y/b = 1, or b·x + a·y − a·b = 0.
func FromIntercepts(a, b float64) (Line, error) {
	if a == 0 || b == 0 {
		return Line{}, ErrZeroIntercept
	}
	return Line{A: b, B: a, C: -a * b}, nil
}

// FromAnglePoint is the line through pt at alpha degrees from the +x axis.
// When cos(alpha) vanishes (90°, 270°, ...) the line is vertical.
func FromAnglePoint(pt geom.Point, alpha float64) Line {
	rad := mathhelp.Deg2Rad(alpha)
	if mathhelp.NearlyZero(math.Cos(rad)) {
		return FromVertical(pt.X())
	}
	return FromPointSlope(pt.X(), pt.Y(), math.Tan(rad))
}

// FromNormal is x·cos α + y·sin α = p, with α in degrees.
func FromNormal(p, alpha float64) (Line, error) {
	if p < 0 {
		return Line{}, ErrNegativeDistance
	}
	rad := mathhelp.Deg2Rad(alpha)
	return Line{A: math.Cos(rad), B: math.Sin(rad), C: -p}, nil
}

// FromVertical is x = a.
func FromVertical(a float64) Line {
	return Line{A: 1, B: 0, C: -a}
}

// FromHorizontal is y = b.
func FromHorizontal(b float64) Line {
	return Line{A: 0, B: 1, C: -b}
}
