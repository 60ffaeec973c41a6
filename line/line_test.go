package line

import (
	"math"
	"testing"

	"github.com/go-spatial/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

var viewport = geom.Extent{-8, -8, 8, 8}

func TestPointSlopePassesThroughPointWithSlope(t *testing.T) {
	tests := []struct {
		x0, y0, m float64
	}{
		{x0: 1, y0: 2, m: 3},
		{x0: -4, y0: 0.5, m: -0.25},
		{x0: 0, y0: 0, m: 0},
	}
	for _, tt := range tests {
		l, err := Build(PointSlope, Params{"x0": tt.x0, "y0": tt.y0, "m": tt.m})
		require.NoError(t, err)

		assert.True(t, l.Contains(geom.Point{tt.x0, tt.y0}, delta))
		y1, ok := l.YAt(-3)
		require.True(t, ok)
		y2, ok := l.YAt(5)
		require.True(t, ok)
		assert.InDelta(t, tt.m, (y2-y1)/8, delta)
	}
}

func TestTwoPoints(t *testing.T) {
	l, err := Build(TwoPoints, Params{"x1": 1, "y1": 1, "x2": 3, "y2": 5})
	require.NoError(t, err)
	m, b, ok := l.SlopeIntercept()
	require.True(t, ok)
	assert.InDelta(t, 2., m, delta)
	assert.InDelta(t, -1., b, delta)
	assert.Equal(t, "y = 2x - 1", l.String())
}

func TestTwoPointsSameXIsVertical(t *testing.T) {
	l, err := FromTwoPoints(geom.Point{2, 1}, geom.Point{2, 7})
	require.NoError(t, err)
	assert.True(t, l.IsVertical())
	x, ok := l.VerticalX()
	require.True(t, ok)
	assert.Equal(t, 2., x)
}

func TestIntercepts(t *testing.T) {
	l, err := Build(Intercepts, Params{"a": 2, "b": 3})
	require.NoError(t, err)
	assert.True(t, l.Contains(geom.Point{2, 0}, delta))
	assert.True(t, l.Contains(geom.Point{0, 3}, delta))

	props := l.Properties()
	require.NotNil(t, props.XIntercept)
	require.NotNil(t, props.YIntercept)
	assert.InDelta(t, 2., *props.XIntercept, delta)
	assert.InDelta(t, 3., *props.YIntercept, delta)
}

func TestVerticalSamples(t *testing.T) {
	l, err := Build(Vertical, Params{"a": 5})
	require.NoError(t, err)
	pts := l.Sample(viewport, 17)
	require.Len(t, pts, 17)
	for _, pt := range pts {
		assert.Equal(t, 5., pt.X())
	}
	assert.Equal(t, -8., pts[0].Y())
	assert.Equal(t, 8., pts[16].Y())
	_, ok := l.YAt(0)
	assert.False(t, ok)
}

func TestHorizontalSamples(t *testing.T) {
	l, err := Build(Horizontal, Params{"b": -2})
	require.NoError(t, err)
	assert.True(t, l.IsHorizontal())
	pts := l.Sample(viewport, 9)
	require.Len(t, pts, 9)
	for _, pt := range pts {
		assert.Equal(t, -2., pt.Y())
	}
	assert.Equal(t, "y = -2", l.String())
}

func TestGeneralForm(t *testing.T) {
	l, err := Build(General, Params{"A": 2, "B": 3, "C": -6})
	require.NoError(t, err)
	y, ok := l.YAt(0)
	require.True(t, ok)
	assert.InDelta(t, 2., y, delta)
	y, ok = l.YAt(3)
	require.True(t, ok)
	assert.InDelta(t, 0., y, delta)
	assert.Equal(t, "+2.000x +3.000y -6.000 = 0", l.GeneralForm())
}

func TestGeneralFormWithoutBIsVertical(t *testing.T) {
	l, err := Build(General, Params{"A": 2, "B": 0, "C": -6})
	require.NoError(t, err)
	x, ok := l.VerticalX()
	require.True(t, ok)
	assert.Equal(t, 3., x)
	assert.Equal(t, "x = 3", l.String())
}

func TestAnglePoint(t *testing.T) {
	tests := []struct {
		name     string
		alpha    float64
		vertical bool
		slope    float64
	}{
		{name: "45°", alpha: 45, slope: 1},
		{name: "135°", alpha: 135, slope: -1},
		{name: "0°", alpha: 0, slope: 0},
		{name: "90°", alpha: 90, vertical: true},
		{name: "270°", alpha: 270, vertical: true},
		{name: "-90°", alpha: -90, vertical: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Build(AnglePoint, Params{"x0": 1, "y0": 2, "alpha": tt.alpha})
			require.NoError(t, err)
			assert.True(t, l.Contains(geom.Point{1, 2}, delta))
			if tt.vertical {
				x, ok := l.VerticalX()
				require.True(t, ok)
				assert.Equal(t, 1., x)
				return
			}
			m, _, ok := l.SlopeIntercept()
			require.True(t, ok)
			assert.InDelta(t, tt.slope, m, delta)
		})
	}
}

func TestNormal(t *testing.T) {
	tests := []struct {
		name  string
		p     float64
		alpha float64
		on    []geom.Point
	}{
		{name: "x = 3", p: 3, alpha: 0, on: []geom.Point{{3, -1}, {3, 4}}},
		{name: "y = 2", p: 2, alpha: 90, on: []geom.Point{{-5, 2}, {7, 2}}},
		{name: "x = -4", p: 4, alpha: 180, on: []geom.Point{{-4, 0}, {-4, 6}}},
		{name: "x + y = 2√2", p: 2, alpha: 45, on: []geom.Point{{math.Sqrt2, math.Sqrt2}, {2 * math.Sqrt2, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Build(Normal, Params{"p": tt.p, "alpha": tt.alpha})
			require.NoError(t, err)
			for _, pt := range tt.on {
				assert.Truef(t, l.Contains(pt, delta), "%v not on %v", pt, l)
			}
			assert.InDelta(t, tt.p, l.Properties().Distance, delta)
		})
	}
}

func TestDegenerateInput(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		params  Params
		wantErr error
	}{
		{name: "coincident points", kind: TwoPoints, params: Params{"x1": 1, "y1": 1, "x2": 1, "y2": 1}, wantErr: ErrCoincidentPoints},
		{name: "zero x-intercept", kind: Intercepts, params: Params{"a": 0, "b": 3}, wantErr: ErrZeroIntercept},
		{name: "zero y-intercept", kind: Intercepts, params: Params{"a": 2, "b": 0}, wantErr: ErrZeroIntercept},
		{name: "negative distance", kind: Normal, params: Params{"p": -1, "alpha": 30}, wantErr: ErrNegativeDistance},
		{name: "A and B zero", kind: General, params: Params{"A": 0, "B": 0, "C": 1}, wantErr: ErrDegenerate},
		{name: "infinite slope", kind: SlopeIntercept, params: Params{"m": math.Inf(1), "b": 0}, wantErr: ErrNotFinite},
		{name: "NaN", kind: Vertical, params: Params{"a": math.NaN()}, wantErr: ErrNotFinite},
		{name: "missing", kind: PointSlope, params: Params{"x0": 1, "y0": 1}, wantErr: ErrMissingParam},
		{name: "custom", kind: Custom, params: Params{}, wantErr: ErrUnknownKind},
		{name: "not a kind", kind: Kind(42), params: Params{}, wantErr: ErrUnknownKind},
		{name: "overflowing intercepts", kind: Intercepts, params: Params{"a": 1e200, "b": 1e200}, wantErr: ErrNotFinite},
		{name: "overflowing slope", kind: TwoPoints, params: Params{"x1": 0, "y1": 0, "x2": 1e-300, "y2": 1e300}, wantErr: ErrNotFinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.kind, tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPerpendicular(t *testing.T) {
	l := FromSlopeIntercept(2, -1)
	through := geom.Point{1, 1}
	perp := l.Perpendicular(through)
	assert.True(t, perp.Contains(through, delta))
	m, _, ok := perp.SlopeIntercept()
	require.True(t, ok)
	assert.InDelta(t, -0.5, m, delta)

	vertical := FromVertical(3)
	perp = vertical.Perpendicular(geom.Point{3, 4})
	assert.True(t, perp.IsHorizontal())
	assert.Equal(t, "y = 4", perp.String())
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, geom.Point{0.5, 0}, FromSlopeIntercept(2, -1).Anchor())
	assert.Equal(t, geom.Point{0, -2}, FromHorizontal(-2).Anchor())
	assert.Equal(t, geom.Point{5, 0}, FromVertical(5).Anchor())
}

func TestProperties(t *testing.T) {
	props := FromSlopeIntercept(1, 0).Properties()
	assert.InDelta(t, 1., props.Slope, delta)
	assert.InDelta(t, 45., props.DirectionAngle, delta)
	assert.InDelta(t, -45., props.NormalAngle, delta)
	assert.InDelta(t, 0., props.Distance, delta)

	props = FromVertical(5).Properties()
	assert.True(t, math.IsInf(props.Slope, 1))
	assert.Nil(t, props.YIntercept)
	require.NotNil(t, props.XIntercept)
	assert.Equal(t, 5., *props.XIntercept)
	assert.InDelta(t, 5., props.SignedDistance, delta)
	assert.InDelta(t, 90., props.DirectionAngle, delta)
	assert.Equal(t, geom.Point{5, 0}, props.Foot)

	props = FromHorizontal(-2).Properties()
	assert.Nil(t, props.XIntercept)
	assert.InDelta(t, 2., props.Distance, delta)
	assert.InDelta(t, 90., props.NormalAngle, delta)
	assert.InDelta(t, 180., props.DirectionAngle, delta)
}

func TestSegmentMissesViewport(t *testing.T) {
	_, ok := FromVertical(20).Segment(viewport)
	assert.False(t, ok)
	assert.Nil(t, FromSlopeIntercept(0, 9).Sample(viewport, 4))
}

func TestSegmentOblique(t *testing.T) {
	segment, ok := FromSlopeIntercept(2, -1).Segment(viewport)
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{-3.5, -8}, segment[0][:], delta)
	assert.InDeltaSlice(t, []float64{4.5, 8}, segment[1][:], delta)
}

func TestMarkers(t *testing.T) {
	params := Params{"x1": 1, "y1": 1, "x2": 3, "y2": 5}
	l, err := Build(TwoPoints, params)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{1, 1}, {3, 5}}, Markers(TwoPoints, params, l))
	assert.Nil(t, Markers(Vertical, Params{"a": 1}, FromVertical(1)))
	assert.Nil(t, Markers(PointSlope, Params{}, l))
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"pointSlope", "point-slope", "POINT_SLOPE", "PointSlope"} {
		k, err := ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, PointSlope, k)
	}
	_, err := ParseKind("parabola")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.False(t, Kind(0).Valid())
	assert.Len(t, Kinds, 10)
	assert.Empty(t, Custom.Params())
	assert.Equal(t, "alpha (degrees from +x axis) = ", AnglePoint.Params()[2].Prompt())
	assert.Equal(t, "x0 = ", AnglePoint.Params()[0].Prompt())
}
