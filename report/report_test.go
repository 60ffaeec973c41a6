package report

import (
	"bytes"
	"testing"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"

	"github.com/pdok/planeline/line"
	"github.com/pdok/planeline/plotting"
)

var viewport = geom.Extent{-8, -8, 8, 8}

func rowMap(rows [][]string) map[string]string {
	m := make(map[string]string, len(rows))
	for _, row := range rows {
		m[row[0]] = row[1]
	}
	return m
}

func TestRows(t *testing.T) {
	tests := []struct {
		name    string
		line    line.Line
		markers []geom.Point
		want    map[string]string
		none    []string
	}{
		{
			name: "y = 2x - 1",
			line: line.FromSlopeIntercept(2, -1),
			want: map[string]string{
				"Explicit form":     "y = 2x - 1",
				"Point-slope form":  "y = 2 * (x - 0.5)",
				"Through O":         "no",
				"Slope (m)":         "2.00000",
				"x-intercept (a)":   "0.5000",
				"y-intercept (b)":   "-1.0000",
				"Angle with +x (α)": "63.43°",
			},
		},
		{
			name: "x = 5",
			line: line.FromVertical(5),
			want: map[string]string{
				"Slope (m)":       "∞ (vertical line)",
				"Distance from O": "5.0000",
				"Normal angle":    "0.00°",
				"Foot from O":     "(5.0000, 0.0000)",
			},
			none: []string{"y-intercept (b)", "Angle with +x (α)", "Point-slope form"},
		},
		{
			name:    "point-slope through the first marker",
			line:    line.FromPointSlope(1, 1, 2),
			markers: []geom.Point{{1, 1}, {3, 5}},
			want: map[string]string{
				"Point-slope form": "y - 1 = 2 * (x - 1)",
			},
		},
		{
			name: "through the origin",
			line: line.FromSlopeIntercept(3, 0),
			want: map[string]string{
				"Point-slope form": "y = 3 * x",
				"Through O":        "yes",
				"Distance from O":  "0.0000",
			},
		},
		{
			name: "y = -2",
			line: line.FromHorizontal(-2),
			want: map[string]string{
				"Slope (m)":        "0 (horizontal line)",
				"y-intercept (b)":  "-2.0000",
				"Normal angle":     "90.00°",
				"Point-slope form": "y + 2 = 0 * x",
			},
			none: []string{"x-intercept (a)"},
		},
		{
			name: "out of sight",
			line: line.FromVertical(50),
			want: map[string]string{"Visible segment": "none"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowMap(Rows(plotting.Layer{Line: tt.line, Markers: tt.markers}, viewport))
			for k, v := range tt.want {
				assert.Equalf(t, v, got[k], "row %q", k)
			}
			for _, k := range tt.none {
				assert.NotContains(t, got, k)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, plotting.Layer{Line: line.FromVertical(5), Label: "Vertical Line: x = 5"}, viewport)
	out := buf.String()
	assert.Contains(t, out, "Vertical Line: x = 5")
	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "x = 5")
	assert.Contains(t, out, "LINESTRING")
}
