// Package report prints the properties of lines as tables.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-spatial/geom"
	"github.com/olekukonko/tablewriter"

	"github.com/pdok/planeline/geomhelp"
	"github.com/pdok/planeline/line"
	"github.com/pdok/planeline/mathhelp"
	"github.com/pdok/planeline/plotting"
)

const maxWKTLen = 72

// Write prints a table with the properties of the layer's line, and the WKT of the part inside extent.
func Write(w io.Writer, layer plotting.Layer, extent geom.Extent) {
	fmt.Fprintf(w, "\n%s\n", layer.Label)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range Rows(layer, extent) {
		table.Append(row)
	}
	table.Render()
}

// Rows are the property/value pairs of a layer's line. The point-slope form
// goes through the first marker, or the line's anchor without markers.
func Rows(layer plotting.Layer, extent geom.Extent) [][]string {
	l := layer.Line
	props := l.Properties()
	rows := [][]string{
		{"General form", l.GeneralForm()},
		{"Explicit form", l.String()},
	}
	if m, _, ok := l.SlopeIntercept(); ok {
		through := l.Anchor()
		if len(layer.Markers) > 0 {
			through = layer.Markers[0]
		}
		rows = append(rows, []string{"Point-slope form", line.PointSlopeEquation(through.X(), through.Y(), m)})
	}
	switch {
	case l.IsVertical():
		rows = append(rows, []string{"Slope (m)", "∞ (vertical line)"})
	case l.IsHorizontal():
		rows = append(rows, []string{"Slope (m)", "0 (horizontal line)"})
	default:
		rows = append(rows,
			[]string{"Slope (m)", format(props.Slope, 5)},
			[]string{"Angle with +x (α)", format(props.DirectionAngle, 2) + "°"},
		)
	}
	rows = append(rows,
		[]string{"Normal angle", format(props.NormalAngle, 2) + "°"},
		[]string{"Distance from O", format(props.Distance, 4)},
		[]string{"Through O", yesNo(l.Contains(geom.Point{0, 0}, mathhelp.Epsilon))},
	)
	if props.XIntercept != nil {
		rows = append(rows, []string{"x-intercept (a)", format(*props.XIntercept, 4)})
	}
	if props.YIntercept != nil {
		rows = append(rows, []string{"y-intercept (b)", format(*props.YIntercept, 4)})
	}
	rows = append(rows,
		[]string{"Unit normal", fmt.Sprintf("(%s, %s)", format(props.UnitNormal.X(), 4), format(props.UnitNormal.Y(), 4))},
		[]string{"Foot from O", fmt.Sprintf("(%s, %s)", format(props.Foot.X(), 4), format(props.Foot.Y(), 4))},
	)
	if segment, ok := l.Segment(extent); ok {
		ls := geom.LineString{segment[0], segment[1]}
		rows = append(rows, []string{"Visible segment", geomhelp.WktMustEncode(ls, maxWKTLen)})
	} else {
		rows = append(rows, []string{"Visible segment", "none"})
	}
	return rows
}

func format(f float64, decimals int) string {
	s := strconv.FormatFloat(f, 'f', decimals, 64)
	if zero := strconv.FormatFloat(0, 'f', decimals, 64); s == "-"+zero {
		return zero
	}
	if math.IsInf(f, 0) {
		return "∞"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
