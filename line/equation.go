package line

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-spatial/geom"
)

// GeneralForm renders the line as "+2.000x +3.000y -6.000 = 0".
func (l Line) GeneralForm() string {
	return fmt.Sprintf("%+.3fx %+.3fy %+.3f = 0", l.A+0, l.B+0, l.C+0)
}

// String renders the explicit form: "x = a" for vertical lines, "y = m·x + b" otherwise.
func (l Line) String() string {
	if x, ok := l.VerticalX(); ok {
		return "x = " + num(x)
	}
	m, b, _ := l.SlopeIntercept()
	if num(m) == "0" {
		return "y = " + num(b)
	}
	var sb strings.Builder
	sb.WriteString("y = ")
	switch num(m) {
	case "1":
	case "-1":
		sb.WriteString("-")
	default:
		sb.WriteString(num(m))
	}
	sb.WriteString("x")
	if num(b) != "0" {
		if b < 0 {
			sb.WriteString(" - " + num(-b))
		} else {
			sb.WriteString(" + " + num(b))
		}
	}
	return sb.String()
}

// PointSlopeEquation renders y − y0 = m·(x − x0), e.g. "y - 2 = 3 * (x - 1)".
func PointSlopeEquation(x0, y0, m float64) string {
	xTerm := "x"
	if x0 != 0 {
		xTerm = "(x" + signed(-x0) + ")"
	}
	yTerm := "y"
	if y0 != 0 {
		yTerm = "y" + signed(-y0)
	}
	return yTerm + " = " + num(m) + " * " + xTerm
}

var describers = map[Kind]func(p Params) string{
	PointSlope: func(p Params) string {
		return fmt.Sprintf("Point-Slope: %s, m=%s", FormatPoint(geom.Point{p["x0"], p["y0"]}), num(p["m"]))
	},
	TwoPoints: func(p Params) string {
		return fmt.Sprintf("Two Points: %s → %s", FormatPoint(geom.Point{p["x1"], p["y1"]}), FormatPoint(geom.Point{p["x2"], p["y2"]}))
	},
	SlopeIntercept: func(p Params) string {
		return fmt.Sprintf("Slope-Intercept: y = %sx + %s", num(p["m"]), num(p["b"]))
	},
	Intercepts: func(p Params) string {
		return fmt.Sprintf("Intercept Form: x/%s + y/%s = 1", num(p["a"]), num(p["b"]))
	},
	AnglePoint: func(p Params) string {
		return fmt.Sprintf("Angle α=%s° through %s", num(p["alpha"]), FormatPoint(geom.Point{p["x0"], p["y0"]}))
	},
	Normal: func(p Params) string {
		return fmt.Sprintf("Normal Form: p=%s, α=%s°", num(p["p"]), num(p["alpha"]))
	},
	General: func(p Params) string {
		return fmt.Sprintf("General Form: %sx + %sy + %s = 0", num(p["A"]), num(p["B"]), num(p["C"]))
	},
	Vertical: func(p Params) string {
		return "Vertical Line: x = " + num(p["a"])
	},
	Horizontal: func(p Params) string {
		return "Horizontal Line: y = " + num(p["b"])
	},
}

// Describe is a legend label for a line of kind k built from params.
func Describe(k Kind, params Params) string {
	describe, ok := describers[k]
	if !ok {
		return k.Title()
	}
	for _, p := range k.Params() {
		if _, ok := params[p.Name]; !ok {
			return k.Title()
		}
	}
	return describe(params)
}

// FormatPoint renders pt as "(x,y)" with the same rounding as the equations.
func FormatPoint(pt geom.Point) string {
	return "(" + num(pt.X()) + "," + num(pt.Y()) + ")"
}

// num formats with at most 6 decimals and without a negative zero.
func num(f float64) string {
	r := math.Round(f*1e6) / 1e6
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func signed(f float64) string {
	if f < 0 {
		return " - " + num(-f)
	}
	return " + " + num(f)
}
