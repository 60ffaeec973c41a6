package line

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// Kind is one of the classical ways to define a straight line in the plane.
// The numeric value is the entry in the interactive menu.
type Kind int

const (
	PointSlope Kind = iota + 1
	TwoPoints
	SlopeIntercept
	Intercepts
	AnglePoint
	Normal
	General
	Vertical
	Horizontal
	Custom
)

// Kinds lists all kinds in menu order.
var Kinds = []Kind{PointSlope, TwoPoints, SlopeIntercept, Intercepts, AnglePoint, Normal, General, Vertical, Horizontal, Custom}

var kindNames = map[Kind]string{
	PointSlope:     "pointSlope",
	TwoPoints:      "twoPoints",
	SlopeIntercept: "slopeIntercept",
	Intercepts:     "intercepts",
	AnglePoint:     "anglePoint",
	Normal:         "normal",
	General:        "general",
	Vertical:       "vertical",
	Horizontal:     "horizontal",
	Custom:         "custom",
}

var kindTitles = map[Kind]string{
	PointSlope:     "Point + Slope",
	TwoPoints:      "Two Points",
	SlopeIntercept: "Slope + y-intercept",
	Intercepts:     "x- and y-intercepts",
	AnglePoint:     "Angle α + Point",
	Normal:         "Normal Form (p, α)",
	General:        "General Form (A, B, C)",
	Vertical:       "Vertical Line (x = a)",
	Horizontal:     "Horizontal Line (y = b)",
	Custom:         "Custom",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return name
}

// Title is the human readable menu entry.
func (k Kind) Title() string {
	return kindTitles[k]
}

// Valid returns true for the kinds listed in the menu.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind accepts a kind's name in any case style, e.g. "pointSlope", "point-slope" or "POINT_SLOPE".
func ParseKind(s string) (Kind, error) {
	wanted := strcase.ToLowerCamel(s)
	for _, k := range Kinds {
		if kindNames[k] == wanted {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Param is a named numeric input of a Kind.
type Param struct {
	Name string
	Hint string
}

// Prompt is the text shown when asking for the param.
func (p Param) Prompt() string {
	if p.Hint == "" {
		return p.Name + " = "
	}
	return p.Name + " (" + p.Hint + ") = "
}

// Params returns the inputs a kind is built from, in prompting order.
// Custom has none, its formulas bring their own.
func (k Kind) Params() []Param {
	c, ok := constructors[k]
	if !ok {
		return nil
	}
	return c.params
}
