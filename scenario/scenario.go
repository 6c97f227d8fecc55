// Package scenario loads scene descriptions from YAML. A scenario file
// declares the canvas, named shapes, optional groups and a list of
// timed events; Build turns it into a ready-to-render Scene.
package scenario

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the root of a scenario document.
type File struct {
	Canvas CanvasSpec  `yaml:"canvas"`
	Shapes []ShapeSpec `yaml:"shapes"`
	Groups []GroupSpec `yaml:"groups"`
	Events []EventSpec `yaml:"events"`
}

// CanvasSpec declares the output surface.
type CanvasSpec struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// ShapeSpec declares one named drawable. Type selects the shape and
// which of the geometry fields apply.
type ShapeSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	From     coord    `yaml:"from"`   // line, arrow
	To       coord    `yaml:"to"`     // line, arrow
	Points   []coord  `yaml:"points"` // polyline, polygon, curve, bezier
	At       coord    `yaml:"at"`     // rectangle, square, text
	Center   coord    `yaml:"center"` // ellipse, circle, dot, glow_dot
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
	Size     float64  `yaml:"size"` // square side, text size
	Radius   float64  `yaml:"radius"`
	Text     string   `yaml:"text"`
	Font     string   `yaml:"font"` // path to a TTF file
	Head     string   `yaml:"head"` // arrow: simple, double, closed
	HeadSize float64  `yaml:"head_size"`
	Targets  []string `yaml:"targets"` // eraser: previously declared shapes

	Stroke *StrokeSpec `yaml:"stroke"`
	Fill   *FillSpec   `yaml:"fill"`
	Sketch *SketchSpec `yaml:"sketch"`
}

// StrokeSpec overrides parts of the default stroke.
type StrokeSpec struct {
	Color   string   `yaml:"color"`
	Width   *float64 `yaml:"width"`
	Opacity *float64 `yaml:"opacity"`
}

// FillSpec enables an interior fill.
type FillSpec struct {
	Color   string   `yaml:"color"`
	Opacity *float64 `yaml:"opacity"`
}

// SketchSpec overrides parts of the default hand-drawn jitter. Absent
// fields keep their defaults, so `roughness: 0` is an explicit request
// for clean geometry.
type SketchSpec struct {
	Roughness      *float64 `yaml:"roughness"`
	Bowing         *float64 `yaml:"bowing"`
	MaxOffset      *float64 `yaml:"max_offset"`
	CurveTightness *float64 `yaml:"curve_tightness"`
	CurveFitting   *float64 `yaml:"curve_fitting"`
	CurveStepCount int      `yaml:"curve_step_count"`
	SingleStroke   bool     `yaml:"single_stroke"`
	Seed           int64    `yaml:"seed"`
}

// GroupSpec declares a named group over previously declared shapes or
// groups.
type GroupSpec struct {
	Name    string   `yaml:"name"`
	Method  string   `yaml:"method"` // parallel or series
	Members []string `yaml:"members"`
}

// EventSpec schedules one animation against a named target. Type picks
// the event; `show` places the target instantly with no animation, and
// `composite` bundles the Parts into a single unit.
type EventSpec struct {
	Target   string      `yaml:"target"`
	Type     string      `yaml:"type"`
	Start    float64     `yaml:"start"`
	Duration float64     `yaml:"duration"`
	To       coord       `yaml:"to"` // translate destination or origin
	Persist  bool        `yaml:"persist"`
	Easing   string      `yaml:"easing"`
	Parts    []EventSpec `yaml:"parts"`
}

// Load reads and parses a scenario file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a scenario document. Unknown fields are rejected so
// typos surface as errors instead of silently dropped settings.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}
