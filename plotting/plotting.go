// Package plotting renders lines on a figure with gonum/plot.
// Not the construction of the lines itself.
package plotting

import (
	"fmt"
	"image/color"
	"log"

	"github.com/go-spatial/geom"
	"github.com/muesli/reflow/truncate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pdok/planeline/line"
	"github.com/pdok/planeline/mathhelp"
)

// Palette colours layers without a colour of their own, in order.
var Palette = []color.Color{
	color.RGBA{R: 70, G: 130, B: 180, A: 255}, // steelblue
	color.RGBA{R: 220, G: 20, B: 60, A: 255},  // crimson
	color.RGBA{R: 46, G: 139, B: 87, A: 255},  // seagreen
	color.RGBA{R: 255, G: 140, A: 255},        // darkorange
}

var axisColor = color.Gray{Y: 128}

// Layer is one line on the figure.
type Layer struct {
	Line  line.Line
	Label string
	// Markers are points drawn as circles, e.g. the points the line was defined by
	Markers []geom.Point
	Color   color.Color
}

// Plot builds the figure. Layers that do not cross the figure's extent are skipped.
func Plot(fig Figure, layers []Layer) (*plot.Plot, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	extent := fig.Extent()

	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(grid)

	if err := addAxes(p, fig); err != nil {
		return nil, err
	}

	for i, layer := range layers {
		c := layer.Color
		if c == nil {
			c = Palette[i%len(Palette)]
		}

		pts := layer.Line.Sample(extent, fig.Samples)
		if pts == nil {
			log.Printf("  %q does not cross the plotted area, skipping", layer.Label)
			continue
		}
		l, err := plotter.NewLine(toXYs(pts))
		if err != nil {
			return nil, fmt.Errorf("could not draw %q: %w", layer.Label, err)
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = c
		p.Add(l)
		p.Legend.Add(truncate.StringWithTail(layer.Label, fig.LegendWidth, "..."), l)

		markers := visible(layer.Markers, extent)
		if len(markers) == 0 {
			continue
		}
		s, err := plotter.NewScatter(toXYs(markers))
		if err != nil {
			return nil, fmt.Errorf("could not mark points of %q: %w", layer.Label, err)
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
	}

	// Add widens the axes to the data, the figure's extent wins
	p.X.Min, p.X.Max = fig.XMin, fig.XMax
	p.Y.Min, p.Y.Max = fig.YMin, fig.YMax
	return p, nil
}

// Render plots the layers and saves the figure to its output.
func Render(fig Figure, layers []Layer) error {
	p, err := Plot(fig, layers)
	if err != nil {
		return err
	}
	return p.Save(vg.Length(fig.Width)*vg.Centimeter, vg.Length(fig.Height)*vg.Centimeter, fig.Output)
}

// addAxes draws the x and y axes through the origin, when they are in sight.
func addAxes(p *plot.Plot, fig Figure) error {
	var axes []plotter.XYs
	if mathhelp.BetweenInc(0, fig.YMin, fig.YMax) {
		axes = append(axes, plotter.XYs{{X: fig.XMin, Y: 0}, {X: fig.XMax, Y: 0}})
	}
	if mathhelp.BetweenInc(0, fig.XMin, fig.XMax) {
		axes = append(axes, plotter.XYs{{X: 0, Y: fig.YMin}, {X: 0, Y: fig.YMax}})
	}
	for _, xys := range axes {
		axis, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		axis.LineStyle.Color = axisColor
		axis.LineStyle.Width = vg.Points(0.7)
		p.Add(axis)
	}
	return nil
}

func visible(pts []geom.Point, extent geom.Extent) []geom.Point {
	var in []geom.Point
	for _, pt := range pts {
		if mathhelp.BetweenInc(pt.X(), extent.MinX(), extent.MaxX()) &&
			mathhelp.BetweenInc(pt.Y(), extent.MinY(), extent.MaxY()) {
			in = append(in, pt)
		}
	}
	return in
}

func toXYs(pts []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = pt.X()
		xys[i].Y = pt.Y()
	}
	return xys
}
