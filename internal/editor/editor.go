// Package editor lays out the emitter configuration panel.
package editor

import (
	"image"
	"log/slog"
	"math"

	"github.com/iburimskiy/particle-editor/internal/particles"
	"github.com/iburimskiy/particle-editor/internal/ui"
	"github.com/iburimskiy/particle-editor/internal/widget"
)

const indent = 10.0

// Editor owns the configuration being edited and the per-variant shape
// parameters that survive switching the shape selectors.
type Editor struct {
	Config particles.Config
	Params particles.ShapeParams

	// Save, when set, is offered as a "Save config" button and receives the
	// TOML dump of Config.
	Save func(doc []byte) error

	sizeCurve particles.Curve
	style     widget.CurveStyle
	gradient  image.Image
	logger    *slog.Logger
	root      ui.ID
}

// New returns an editor on the default configuration. gradient is the color
// picker texture.
func New(style widget.CurveStyle, gradient image.Image, logger *slog.Logger) *Editor {
	e := &Editor{
		style:    style,
		gradient: gradient,
		logger:   logger,
		root:     ui.NewID("emitter panel"),
	}
	e.Reset()
	return e
}

// Reset restores the default configuration.
func (e *Editor) Reset() {
	e.Config = particles.Default()
	e.Params = particles.DefaultShapeParams()
	e.Params.Remember(e.Config.Shape, e.Config.EmissionShape)
	e.sizeCurve = particles.FlatCurve(1)
}

func (e *Editor) id(parts ...string) ui.ID { return e.root.With(parts...) }

// Build emits one frame of the panel into c.
func (e *Editor) Build(c *ui.Context) {
	cfg := &e.Config

	ui.Checkbox(c, "Emitting", &cfg.Emitting)
	ui.Checkbox(c, "Local coords", &cfg.LocalCoords)
	ui.Checkbox(c, "One shot", &cfg.OneShot)
	ui.SliderInt(c, e.id("amount"), "Amount", 1, 500, &cfg.Amount)
	ui.Separator(c)

	if e.section(c, "Time") {
		ui.Slider(c, e.id("time", "lifetime"), "Lifetime", 0, 10, &cfg.Lifetime)
		ui.Slider(c, e.id("time", "lifetime randomness"), "Lifetime randomness", 0, 1, &cfg.LifetimeRandomness)
		ui.Slider(c, e.id("time", "explosiveness"), "Explosiveness", 0, 1, &cfg.Explosiveness)
		c.Indent(-indent)
	}
	ui.Separator(c)

	if e.section(c, "Shape") {
		e.buildShape(c)
		c.Indent(-indent)
	}
	ui.Separator(c)

	if e.section(c, "Direction") {
		ui.Slider(c, e.id("direction", "x"), "Initial direction x", -1, 1, &cfg.InitialDirection.X)
		ui.Slider(c, e.id("direction", "y"), "Initial direction y", -1, 1, &cfg.InitialDirection.Y)
		ui.Slider(c, e.id("direction", "spread"), "Initial direction spread", 0, 2*math.Pi, &cfg.InitialDirectionSpread)
		ui.Slider(c, e.id("direction", "gravity x"), "Gravity x", -500, 500, &cfg.Gravity.X)
		ui.Slider(c, e.id("direction", "gravity y"), "Gravity y", -500, 500, &cfg.Gravity.Y)
		c.Indent(-indent)
	}
	ui.Separator(c)

	if e.section(c, "Velocity") {
		ui.Slider(c, e.id("velocity", "initial"), "Initial velocity", 0, 500, &cfg.InitialVelocity)
		ui.Slider(c, e.id("velocity", "randomness"), "Initial velocity randomness", 0, 1, &cfg.InitialVelocityRandomness)
		ui.Slider(c, e.id("velocity", "accel"), "Linear accel", -500, 500, &cfg.LinearAccel)
		c.Indent(-indent)
	}
	ui.Separator(c)

	if e.section(c, "Angle") {
		ui.Slider(c, e.id("angle", "rotation"), "Initial rotation", -math.Pi, math.Pi, &cfg.InitialRotation)
		ui.Slider(c, e.id("angle", "rotation randomness"), "Initial rotation randomness", 0, 1, &cfg.InitialRotationRandomness)
		ui.Slider(c, e.id("angle", "angular velocity"), "Initial angular velocity", -10, 10, &cfg.InitialAngularVelocity)
		ui.Slider(c, e.id("angle", "angular velocity randomness"), "Initial angular velocity randomness", 0, 1, &cfg.InitialAngularVelocityRandomness)
		ui.Slider(c, e.id("angle", "accel"), "Angular accel", -10, 10, &cfg.AngularAccel)
		ui.Slider(c, e.id("angle", "damping"), "Angular damping", 0, 1, &cfg.AngularDamping)
		c.Indent(-indent)
	}
	ui.Separator(c)

	if e.section(c, "Size") {
		e.buildSize(c)
		c.Indent(-indent)
	}
	ui.Separator(c)

	if e.section(c, "Color") {
		widget.ColorBox(c, e.id("colors", "Start"), "Start", &cfg.Colors.Start, e.gradient)
		widget.ColorBox(c, e.id("colors", "Mid"), "Mid", &cfg.Colors.Mid, e.gradient)
		widget.ColorBox(c, e.id("colors", "End"), "End", &cfg.Colors.End, e.gradient)
		c.Indent(-indent)
	}
	ui.Separator(c)

	if ui.Button(c, "Reset") {
		e.Reset()
		e.logger.Info("emitter config reset")
	}
	if ui.Button(c, "Log config") {
		e.logConfig()
	}
	if e.Save != nil && ui.Button(c, "Save config") {
		e.saveConfig()
	}
}

// section draws a collapsible header and indents its body when expanded.
// Callers undo the indent.
func (e *Editor) section(c *ui.Context, label string) bool {
	if !ui.Section(c, e.id("section", label), label, false) {
		return false
	}
	c.Indent(indent)
	return true
}

func (e *Editor) buildShape(c *ui.Context) {
	cfg := &e.Config

	shape := particles.ShapeIndex(cfg.Shape)
	if ui.Combo(c, "Shape", particles.ShapeNames, &shape) {
		e.logger.Debug("particle shape changed", "shape", particles.ShapeNames[shape])
	}
	switch s := e.Params.Shape(shape).(type) {
	case particles.Rectangle:
		ui.Slider(c, e.id("shape", "aspect ratio"), "Rectangle aspect ratio", 0, 4, &s.AspectRatio)
		cfg.Shape = s
	case particles.Circle:
		ui.SliderInt(c, e.id("shape", "subdivisions"), "Circle subdivisions", 3, 64, &s.Subdivisions)
		cfg.Shape = s
	}

	emission := particles.EmissionShapeIndex(cfg.EmissionShape)
	if ui.Combo(c, "Emission shape", particles.EmissionShapeNames, &emission) {
		e.logger.Debug("emission shape changed", "shape", particles.EmissionShapeNames[emission])
	}
	switch s := e.Params.EmissionShape(emission).(type) {
	case particles.EmitPoint:
		cfg.EmissionShape = s
	case particles.EmitRect:
		ui.Slider(c, e.id("emission", "width"), "Rect width", 0, 500, &s.Width)
		ui.Slider(c, e.id("emission", "height"), "Rect height", 0, 500, &s.Height)
		cfg.EmissionShape = s
	case particles.EmitSphere:
		ui.Slider(c, e.id("emission", "radius"), "Sphere radius", 0, 500, &s.Radius)
		cfg.EmissionShape = s
	}

	e.Params.Remember(cfg.Shape, cfg.EmissionShape)
}

func (e *Editor) buildSize(c *ui.Context) {
	cfg := &e.Config

	ui.Slider(c, e.id("size", "size"), "Size", 0, 100, &cfg.Size)
	ui.Slider(c, e.id("size", "randomness"), "Size randomness", 0, 1, &cfg.SizeRandomness)

	enabled := cfg.SizeCurve != nil
	ui.Checkbox(c, "Size curve", &enabled)
	if !enabled {
		cfg.SizeCurve = nil
		return
	}
	if cfg.SizeCurve == nil {
		curve := e.sizeCurve.Clone()
		cfg.SizeCurve = &curve
	}
	ev := widget.CurveBox(c, e.id("size", "curve"), cfg.SizeCurve, e.style)
	switch ev {
	case widget.CurveInserted, widget.CurveDragStarted, widget.CurveDragEnded:
		e.logger.Debug("size curve edit", "event", ev.String(), "points", len(cfg.SizeCurve.Points))
	}
}

func (e *Editor) logConfig() {
	b, err := e.Config.Dump()
	if err != nil {
		e.logger.Error("dump emitter config", "err", err)
		return
	}
	e.logger.Info("emitter config", "toml", string(b))
}

func (e *Editor) saveConfig() {
	b, err := e.Config.Dump()
	if err != nil {
		e.logger.Error("dump emitter config", "err", err)
		return
	}
	if err := e.Save(b); err != nil {
		e.logger.Error("save emitter config", "err", err)
		return
	}
	e.logger.Info("emitter config saved", "bytes", len(b))
}
