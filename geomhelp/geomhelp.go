package geomhelp

import (
	"math"
	"sort"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/go-spatial/geom/planar"
	"github.com/muesli/reflow/truncate"

	"github.com/pdok/planeline/mathhelp"
)

// edgeOverhang widens and lengthens the extent's edges (relative to the extent's size).
// SegmentIntersect checks containment with bounding boxes, which are flat for axis-aligned edges.
const edgeOverhang = 1e-9

// ClipToExtent returns the part of the infinite line through pt with direction dir
// that lies inside extent. The endpoints are ordered along dir.
// Ok is false if the line misses the extent, only touches a corner, or dir is zero.
func ClipToExtent(pt, dir [2]float64, extent geom.Extent) (segment geom.Line, ok bool) {
	length := math.Hypot(dir[0], dir[1])
	if length == 0 {
		return segment, false
	}
	d := [2]float64{dir[0] / length, dir[1] / length}

	xSpan, ySpan := extent.MaxX()-extent.MinX(), extent.MaxY()-extent.MinY()
	diagonal := math.Hypot(xSpan, ySpan)
	if diagonal == 0 {
		return segment, false
	}

	switch {
	case d[0] == 0:
		if !mathhelp.BetweenInc(pt[0], extent.MinX(), extent.MaxX()) {
			return segment, false
		}
		segment = geom.Line{{pt[0], extent.MinY()}, {pt[0], extent.MaxY()}}
		if d[1] < 0 {
			segment[0], segment[1] = segment[1], segment[0]
		}
		return segment, true
	case d[1] == 0:
		if !mathhelp.BetweenInc(pt[1], extent.MinY(), extent.MaxY()) {
			return segment, false
		}
		segment = geom.Line{{extent.MinX(), pt[1]}, {extent.MaxX(), pt[1]}}
		if d[0] < 0 {
			segment[0], segment[1] = segment[1], segment[0]
		}
		return segment, true
	}

	// a span around the projection of the extent's centre covers every visible point
	centre := [2]float64{extent.MinX() + xSpan/2, extent.MinY() + ySpan/2}
	t := (centre[0]-pt[0])*d[0] + (centre[1]-pt[1])*d[1]
	foot := [2]float64{pt[0] + t*d[0], pt[1] + t*d[1]}
	span := geom.Line{
		{foot[0] - diagonal*d[0], foot[1] - diagonal*d[1]},
		{foot[0] + diagonal*d[0], foot[1] + diagonal*d[1]},
	}

	tolerance := diagonal * edgeOverhang
	var hits [][2]float64
	edges := extent.Edges(nil)
	for i, widened := range widenedEdges(extent, tolerance) {
		hit, intersects := planar.SegmentIntersect(span, widened)
		if !intersects {
			continue
		}
		// back onto the exact edge, along the line
		edge := edges[i]
		if edge[0][1] == edge[1][1] {
			hit = [2]float64{foot[0] + (edge[0][1]-foot[1])*d[0]/d[1], edge[0][1]}
		} else {
			hit = [2]float64{edge[0][0], foot[1] + (edge[0][0]-foot[0])*d[1]/d[0]}
		}
		hit = clampToExtent(hit, extent)
		if containsClose(hits, hit, 1e3*tolerance) {
			continue
		}
		hits = append(hits, hit)
	}
	if len(hits) < 2 {
		return segment, false
	}

	// order along the direction, outermost two win
	along := func(p [2]float64) float64 { return (p[0]-foot[0])*d[0] + (p[1]-foot[1])*d[1] }
	sort.Slice(hits, func(i, j int) bool { return along(hits[i]) < along(hits[j]) })
	return geom.Line{hits[0], hits[len(hits)-1]}, true
}

// Interpolate returns n evenly spaced points from the first to the last point of segment.
func Interpolate(segment geom.Line, n int) []geom.Point {
	if n < 2 {
		n = 2
	}
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		pts[i] = geom.Point{
			segment[0][0] + f*(segment[1][0]-segment[0][0]),
			segment[0][1] + f*(segment[1][1]-segment[0][1]),
		}
	}
	// exact endpoints, no interpolation error
	pts[0], pts[n-1] = segment[0], segment[1]
	return pts
}

// widenedEdges tilts every edge slightly so that its bounding box is never flat.
func widenedEdges(extent geom.Extent, by float64) []geom.Line {
	edges := extent.Edges(nil)
	lines := make([]geom.Line, len(edges))
	for i, edge := range edges {
		dx, dy := edge[1][0]-edge[0][0], edge[1][1]-edge[0][1]
		l := math.Hypot(dx, dy)
		if l == 0 {
			lines[i] = geom.Line(edge)
			continue
		}
		// along plus across the edge
		ex, ey := by*(dx-dy)/l, by*(dy+dx)/l
		lines[i] = geom.Line{
			{edge[0][0] - ex, edge[0][1] - ey},
			{edge[1][0] + ex, edge[1][1] + ey},
		}
	}
	return lines
}

func clampToExtent(pt [2]float64, extent geom.Extent) [2]float64 {
	return [2]float64{
		math.Min(math.Max(pt[0], extent.MinX()), extent.MaxX()),
		math.Min(math.Max(pt[1], extent.MinY()), extent.MaxY()),
	}
}

func containsClose(pts [][2]float64, pt [2]float64, tolerance float64) bool {
	for _, p := range pts {
		if math.Abs(p[0]-pt[0]) <= tolerance && math.Abs(p[1]-pt[1]) <= tolerance {
			return true
		}
	}
	return false
}

func WktMustEncode(g geom.Geometry, maxLen uint) string {
	if maxLen == 0 {
		return wkt.MustEncode(g)
	}
	return truncate.StringWithTail(wkt.MustEncode(g), maxLen, "...")
}
