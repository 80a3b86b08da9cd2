package particles

import (
	"testing"

	"github.com/iburimskiy/particle-editor/internal/palette"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveEval(t *testing.T) {
	c := Curve{Points: []Point{{0, 1}, {0.5, 2}, {1, 0}}}
	assert.Equal(t, 1.0, c.Eval(-1))
	assert.Equal(t, 1.0, c.Eval(0))
	assert.InDelta(t, 1.5, c.Eval(0.25), 1e-9)
	assert.InDelta(t, 2, c.Eval(0.5), 1e-9)
	assert.InDelta(t, 1, c.Eval(0.75), 1e-9)
	assert.Equal(t, 0.0, c.Eval(2))
	assert.Equal(t, 1.0, Curve{}.Eval(0.3))

	step := Curve{Points: []Point{{0, 0}, {0.5, 0}, {0.5, 1}, {1, 1}}}
	assert.Equal(t, 0.0, step.Eval(0.25))
	assert.Equal(t, 1.0, step.Eval(0.75))
}

func TestCurveSortIsStable(t *testing.T) {
	c := Curve{Points: []Point{{1, 0}, {0.5, 1}, {0, 2}, {0.5, 3}}}
	assert.False(t, c.Sorted())
	c.Sort()
	assert.True(t, c.Sorted())
	assert.Equal(t, []Point{{0, 2}, {0.5, 1}, {0.5, 3}, {1, 0}}, c.Points)
}

func TestCurveClone(t *testing.T) {
	a := FlatCurve(1)
	b := a.Clone()
	b.Points[0].Value = 5
	assert.Equal(t, 1.0, a.Points[0].Value)
}

func TestColorCurveAt(t *testing.T) {
	cc := ColorCurve{Start: palette.Black, Mid: palette.White, End: palette.Color{R: 1}}
	assert.Equal(t, palette.Black, cc.At(0))
	assert.Equal(t, palette.White, cc.At(0.5))
	assert.Equal(t, palette.Color{R: 1}, cc.At(1))
	assert.InDelta(t, 0.5, cc.At(0.25).G, 1e-9)
}

func TestShapeSelectors(t *testing.T) {
	p := DefaultShapeParams()
	assert.Equal(t, Rectangle{AspectRatio: 1}, p.Shape(0))
	assert.Equal(t, Circle{Subdivisions: 30}, p.Shape(1))
	assert.Equal(t, 1, ShapeIndex(p.Shape(1)))
	assert.Equal(t, 0, ShapeIndex(nil))

	p.Remember(Circle{Subdivisions: 12}, EmitSphere{Radius: 4})
	assert.Equal(t, Circle{Subdivisions: 12}, p.Shape(1))
	assert.Equal(t, EmitSphere{Radius: 4}, p.EmissionShape(2))
	assert.Equal(t, EmitPoint{}, p.EmissionShape(0))
	for i := range EmissionShapeNames {
		assert.Equal(t, i, EmissionShapeIndex(p.EmissionShape(i)))
	}
}

func TestSizeAt(t *testing.T) {
	c := Default()
	assert.Equal(t, 10.0, c.SizeAt(0.5))
	curve := Curve{Points: []Point{{0, 0}, {1, 2}}}
	c.SizeCurve = &curve
	assert.InDelta(t, 10, c.SizeAt(0.5), 1e-9)
}

func TestDump(t *testing.T) {
	c := Default()
	c.Shape = Circle{Subdivisions: 12}
	c.EmissionShape = EmitRect{Width: 3, Height: 4}
	curve := FlatCurve(1)
	c.SizeCurve = &curve

	b, err := c.Dump()
	require.NoError(t, err)

	var doc configDoc
	require.NoError(t, toml.Unmarshal(b, &doc))
	assert.Equal(t, "circle", doc.Shape.Kind)
	assert.Equal(t, 12, doc.Shape.Subdivisions)
	assert.Equal(t, "rect", doc.EmissionShape.Kind)
	assert.Equal(t, 4.0, doc.EmissionShape.Height)
	assert.Equal(t, 8, doc.Amount)
	require.NotNil(t, doc.SizeCurve)
	assert.Len(t, doc.SizeCurve.Points, 2)
	assert.Equal(t, 1.0, doc.Colors.End.A)
}
