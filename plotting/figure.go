package plotting

import (
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/go-spatial/geom"
)

// Figure holds what is needed to render lines to an image.
type Figure struct {
	Title string  `default:"Straight Line on the Plane" validate:"required"`
	XMin  float64 `default:"-8"`
	XMax  float64 `default:"8" validate:"gtfield=XMin"`
	YMin  float64 `default:"-8"`
	YMax  float64 `default:"8" validate:"gtfield=YMin"`
	// Width and Height in centimeters
	Width  float64 `default:"16" validate:"gt=0"`
	Height float64 `default:"16" validate:"gt=0"`
	// Samples is the number of points drawn per line
	Samples int `default:"2" validate:"min=2"`
	// LegendWidth truncates legend labels
	LegendWidth uint `default:"48" validate:"min=8"`
	// Output is the image to write, the format follows from the extension (png, svg, pdf, ...)
	Output string `default:"screenshot.png" validate:"required"`
}

// NewFigure returns a figure with every field at its default.
func NewFigure() (Figure, error) {
	var fig Figure
	err := defaults.Set(&fig)
	return fig, err
}

func (f *Figure) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(f)
}

// Extent is the visible part of the plane.
func (f *Figure) Extent() geom.Extent {
	return geom.Extent{f.XMin, f.YMin, f.XMax, f.YMax}
}
