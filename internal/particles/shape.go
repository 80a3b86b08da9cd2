package particles

// Shape is the mesh each particle is drawn with.
type Shape interface {
	shape()
}

// Rectangle particles. AspectRatio is width over height.
type Rectangle struct {
	AspectRatio float64
}

// Circle particles approximated by Subdivisions segments.
type Circle struct {
	Subdivisions int
}

func (Rectangle) shape() {}
func (Circle) shape()    {}

// EmissionShape is the area new particles are spawned in.
type EmissionShape interface {
	emissionShape()
}

// EmitPoint spawns at the emitter origin.
type EmitPoint struct{}

// EmitRect spawns inside a Width×Height rectangle.
type EmitRect struct {
	Width, Height float64
}

// EmitSphere spawns inside a circle of Radius.
type EmitSphere struct {
	Radius float64
}

func (EmitPoint) emissionShape()  {}
func (EmitRect) emissionShape()   {}
func (EmitSphere) emissionShape() {}

// Selector names, in index order.
var (
	ShapeNames         = []string{"Rectangle", "Circle"}
	EmissionShapeNames = []string{"Point", "Rect", "Sphere"}
)

// ShapeParams remembers the parameters of every variant so switching the
// selector back and forth does not lose edits.
type ShapeParams struct {
	Rectangle Rectangle
	Circle    Circle
	Rect      EmitRect
	Sphere    EmitSphere
}

// DefaultShapeParams returns the parameters used before any edit.
func DefaultShapeParams() ShapeParams {
	return ShapeParams{
		Rectangle: Rectangle{AspectRatio: 1},
		Circle:    Circle{Subdivisions: 30},
	}
}

// ShapeIndex returns the selector index of s. Unknown shapes map to 0.
func ShapeIndex(s Shape) int {
	if _, ok := s.(Circle); ok {
		return 1
	}
	return 0
}

// EmissionShapeIndex returns the selector index of s.
func EmissionShapeIndex(s EmissionShape) int {
	switch s.(type) {
	case EmitRect:
		return 1
	case EmitSphere:
		return 2
	}
	return 0
}

// Shape builds the variant at selector index i from the remembered
// parameters.
func (p *ShapeParams) Shape(i int) Shape {
	if i == 1 {
		return p.Circle
	}
	return p.Rectangle
}

// EmissionShape builds the variant at selector index i.
func (p *ShapeParams) EmissionShape(i int) EmissionShape {
	switch i {
	case 1:
		return p.Rect
	case 2:
		return p.Sphere
	}
	return EmitPoint{}
}

// Remember stores the parameters carried by the active variants.
func (p *ShapeParams) Remember(s Shape, e EmissionShape) {
	switch s := s.(type) {
	case Rectangle:
		p.Rectangle = s
	case Circle:
		p.Circle = s
	}
	switch e := e.(type) {
	case EmitRect:
		p.Rect = e
	case EmitSphere:
		p.Sphere = e
	}
}
