// Package particles describes the emitter parameters edited by the panel.
// Simulating and rendering the particles happens elsewhere.
package particles

import (
	"fmt"

	"github.com/iburimskiy/particle-editor/internal/palette"
	"github.com/pelletier/go-toml/v2"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// ColorCurve is a three-stop color ramp over the particle lifetime.
type ColorCurve struct {
	Start palette.Color
	Mid   palette.Color
	End   palette.Color
}

// At samples the ramp at normalized lifetime t.
func (c ColorCurve) At(t float64) palette.Color {
	if t < 0.5 {
		return c.Start.Lerp(c.Mid, t*2)
	}
	return c.Mid.Lerp(c.End, (t-0.5)*2)
}

// Config is the full set of emitter parameters.
type Config struct {
	Emitting    bool
	LocalCoords bool
	OneShot     bool
	Amount      int

	Lifetime           float64
	LifetimeRandomness float64
	Explosiveness      float64

	Shape         Shape
	EmissionShape EmissionShape

	InitialDirection       Vec2
	InitialDirectionSpread float64
	Gravity                Vec2

	InitialVelocity           float64
	InitialVelocityRandomness float64
	LinearAccel               float64

	InitialRotation                  float64
	InitialRotationRandomness        float64
	InitialAngularVelocity           float64
	InitialAngularVelocityRandomness float64
	AngularAccel                     float64
	AngularDamping                   float64

	Size           float64
	SizeRandomness float64
	SizeCurve      *Curve

	Colors ColorCurve
}

// Default returns the stock emitter configuration.
func Default() Config {
	return Config{
		Emitting:         true,
		Amount:           8,
		Lifetime:         1,
		Shape:            Rectangle{AspectRatio: 1},
		EmissionShape:    EmitPoint{},
		InitialDirection: Vec2{X: 0, Y: -1},
		InitialVelocity:  50,
		Size:             10,
		Colors: ColorCurve{
			Start: palette.White,
			Mid:   palette.White,
			End:   palette.White,
		},
	}
}

// SizeAt returns the particle size at normalized lifetime t.
func (c Config) SizeAt(t float64) float64 {
	if c.SizeCurve == nil {
		return c.Size
	}
	return c.Size * c.SizeCurve.Eval(t)
}

type colorDoc struct {
	R float64 `toml:"r"`
	G float64 `toml:"g"`
	B float64 `toml:"b"`
	A float64 `toml:"a"`
}

func toColorDoc(c palette.Color) colorDoc { return colorDoc{c.R, c.G, c.B, c.A} }

type shapeDoc struct {
	Kind         string  `toml:"kind"`
	AspectRatio  float64 `toml:"aspect_ratio,omitempty"`
	Subdivisions int     `toml:"subdivisions,omitempty"`
	Width        float64 `toml:"width,omitempty"`
	Height       float64 `toml:"height,omitempty"`
	Radius       float64 `toml:"radius,omitempty"`
}

type configDoc struct {
	Emitting                         bool     `toml:"emitting"`
	LocalCoords                      bool     `toml:"local_coords"`
	OneShot                          bool     `toml:"one_shot"`
	Amount                           int      `toml:"amount"`
	Lifetime                         float64  `toml:"lifetime"`
	LifetimeRandomness               float64  `toml:"lifetime_randomness"`
	Explosiveness                    float64  `toml:"explosiveness"`
	InitialDirection                 Vec2     `toml:"initial_direction"`
	InitialDirectionSpread           float64  `toml:"initial_direction_spread"`
	Gravity                          Vec2     `toml:"gravity"`
	InitialVelocity                  float64  `toml:"initial_velocity"`
	InitialVelocityRandomness        float64  `toml:"initial_velocity_randomness"`
	LinearAccel                      float64  `toml:"linear_accel"`
	InitialRotation                  float64  `toml:"initial_rotation"`
	InitialRotationRandomness        float64  `toml:"initial_rotation_randomness"`
	InitialAngularVelocity           float64  `toml:"initial_angular_velocity"`
	InitialAngularVelocityRandomness float64  `toml:"initial_angular_velocity_randomness"`
	AngularAccel                     float64  `toml:"angular_accel"`
	AngularDamping                   float64  `toml:"angular_damping"`
	Size                             float64  `toml:"size"`
	SizeRandomness                   float64  `toml:"size_randomness"`
	Shape                            shapeDoc `toml:"shape"`
	EmissionShape                    shapeDoc `toml:"emission_shape"`
	SizeCurve                        *Curve   `toml:"size_curve,omitempty"`
	Colors                           struct {
		Start colorDoc `toml:"start"`
		Mid   colorDoc `toml:"mid"`
		End   colorDoc `toml:"end"`
	} `toml:"colors"`
}

// Dump renders the configuration as a TOML document.
func (c Config) Dump() ([]byte, error) {
	doc := configDoc{
		Emitting:                         c.Emitting,
		LocalCoords:                      c.LocalCoords,
		OneShot:                          c.OneShot,
		Amount:                           c.Amount,
		Lifetime:                         c.Lifetime,
		LifetimeRandomness:               c.LifetimeRandomness,
		Explosiveness:                    c.Explosiveness,
		InitialDirection:                 c.InitialDirection,
		InitialDirectionSpread:           c.InitialDirectionSpread,
		Gravity:                          c.Gravity,
		InitialVelocity:                  c.InitialVelocity,
		InitialVelocityRandomness:        c.InitialVelocityRandomness,
		LinearAccel:                      c.LinearAccel,
		InitialRotation:                  c.InitialRotation,
		InitialRotationRandomness:        c.InitialRotationRandomness,
		InitialAngularVelocity:           c.InitialAngularVelocity,
		InitialAngularVelocityRandomness: c.InitialAngularVelocityRandomness,
		AngularAccel:                     c.AngularAccel,
		AngularDamping:                   c.AngularDamping,
		Size:                             c.Size,
		SizeRandomness:                   c.SizeRandomness,
		Shape:                            shapeToDoc(c.Shape),
		EmissionShape:                    emissionToDoc(c.EmissionShape),
		SizeCurve:                        c.SizeCurve,
	}
	doc.Colors.Start = toColorDoc(c.Colors.Start)
	doc.Colors.Mid = toColorDoc(c.Colors.Mid)
	doc.Colors.End = toColorDoc(c.Colors.End)

	b, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal emitter config: %w", err)
	}
	return b, nil
}

func shapeToDoc(s Shape) shapeDoc {
	switch s := s.(type) {
	case Rectangle:
		return shapeDoc{Kind: "rectangle", AspectRatio: s.AspectRatio}
	case Circle:
		return shapeDoc{Kind: "circle", Subdivisions: s.Subdivisions}
	}
	return shapeDoc{Kind: "none"}
}

func emissionToDoc(s EmissionShape) shapeDoc {
	switch s := s.(type) {
	case EmitPoint:
		return shapeDoc{Kind: "point"}
	case EmitRect:
		return shapeDoc{Kind: "rect", Width: s.Width, Height: s.Height}
	case EmitSphere:
		return shapeDoc{Kind: "sphere", Radius: s.Radius}
	}
	return shapeDoc{Kind: "none"}
}
