package scenario

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/handanim"
	"github.com/gogpu/handanim/shapes"
)

// Default canvas, used when the document omits dimensions.
const (
	defaultWidth  = 1280
	defaultHeight = 720
)

// Build constructs a scene from the parsed document: shapes first, then
// groups, then the scheduled events in document order.
func (f *File) Build() (*handanim.Scene, error) {
	width, height := f.Canvas.Width, f.Canvas.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	scene := handanim.NewScene(width, height)
	if f.Canvas.Background != "" {
		bg, err := parseColor(f.Canvas.Background)
		if err != nil {
			return nil, fmt.Errorf("scenario: canvas background: %w", err)
		}
		scene.Background = bg
	}

	targets := make(map[string]handanim.Drawable, len(f.Shapes)+len(f.Groups))
	for _, spec := range f.Shapes {
		if spec.Name == "" {
			return nil, fmt.Errorf("scenario: shape of type %q has no name", spec.Type)
		}
		if _, dup := targets[spec.Name]; dup {
			return nil, fmt.Errorf("scenario: duplicate name %q", spec.Name)
		}
		d, err := buildShape(spec, targets)
		if err != nil {
			return nil, fmt.Errorf("scenario: shape %q: %w", spec.Name, err)
		}
		targets[spec.Name] = d
	}

	for _, spec := range f.Groups {
		if spec.Name == "" {
			return nil, fmt.Errorf("scenario: group has no name")
		}
		if _, dup := targets[spec.Name]; dup {
			return nil, fmt.Errorf("scenario: duplicate name %q", spec.Name)
		}
		var method handanim.GroupingMethod
		switch spec.Method {
		case "parallel", "":
			method = handanim.GroupParallel
		case "series":
			method = handanim.GroupSeries
		default:
			return nil, fmt.Errorf("scenario: group %q: unknown method %q", spec.Name, spec.Method)
		}
		members := make([]handanim.Drawable, 0, len(spec.Members))
		for _, name := range spec.Members {
			m, ok := targets[name]
			if !ok {
				return nil, fmt.Errorf("scenario: group %q: unknown member %q", spec.Name, name)
			}
			members = append(members, m)
		}
		targets[spec.Name] = handanim.NewGroup(method, members...)
	}

	for i, spec := range f.Events {
		target, ok := targets[spec.Target]
		if !ok {
			return nil, fmt.Errorf("scenario: event %d: unknown target %q", i, spec.Target)
		}
		ev, err := buildEvent(spec)
		if err != nil {
			return nil, fmt.Errorf("scenario: event %d (%s): %w", i, spec.Target, err)
		}
		if err := scene.Add(ev, target); err != nil {
			return nil, fmt.Errorf("scenario: event %d (%s): %w", i, spec.Target, err)
		}
	}
	return scene, nil
}

func buildShape(spec ShapeSpec, declared map[string]handanim.Drawable) (handanim.Drawable, error) {
	var (
		d    handanim.Drawable
		base *handanim.Base
		err  error
	)
	switch spec.Type {
	case "line":
		from, to, perr := spec.endpoints()
		if perr != nil {
			return nil, perr
		}
		l := shapes.NewLine(from, to)
		d, base = l, &l.Base

	case "polyline":
		pts, perr := points(spec.Points)
		if perr != nil {
			return nil, perr
		}
		p, perr := shapes.NewPolyline(pts...)
		if perr != nil {
			return nil, perr
		}
		d, base = p, &p.Base

	case "polygon":
		pts, perr := points(spec.Points)
		if perr != nil {
			return nil, perr
		}
		p, perr := shapes.NewPolygon(pts...)
		if perr != nil {
			return nil, perr
		}
		d, base = p, &p.Base

	case "rectangle":
		at, perr := spec.At.point("at")
		if perr != nil {
			return nil, perr
		}
		r := shapes.NewRectangle(at, spec.Width, spec.Height)
		d, base = r, &r.Base

	case "square":
		at, perr := spec.At.point("at")
		if perr != nil {
			return nil, perr
		}
		s := shapes.NewSquare(at, spec.Size)
		d, base = s, &s.Base

	case "ellipse":
		c, perr := spec.Center.point("center")
		if perr != nil {
			return nil, perr
		}
		e := shapes.NewEllipse(c, spec.Width, spec.Height)
		d, base = e, &e.Base

	case "circle":
		c, perr := spec.Center.point("center")
		if perr != nil {
			return nil, perr
		}
		e := shapes.NewCircle(c, spec.Radius)
		d, base = e, &e.Base

	case "curve":
		pts, perr := points(spec.Points)
		if perr != nil {
			return nil, perr
		}
		c, perr := shapes.NewCurve(pts...)
		if perr != nil {
			return nil, perr
		}
		d, base = c, &c.Base

	case "bezier":
		pts, perr := points(spec.Points)
		if perr != nil {
			return nil, perr
		}
		if len(pts) != 4 {
			return nil, fmt.Errorf("bezier needs 4 points, got %d", len(pts))
		}
		b := shapes.NewBezier(pts[0], pts[1], pts[2], pts[3])
		d, base = b, &b.Base

	case "arrow":
		from, to, perr := spec.endpoints()
		if perr != nil {
			return nil, perr
		}
		a := shapes.NewArrow(from, to)
		switch spec.Head {
		case "", "simple":
			a.Head = shapes.HeadSimple
		case "double":
			a.Head = shapes.HeadDouble
		case "closed":
			a.Head = shapes.HeadClosed
		default:
			return nil, fmt.Errorf("unknown arrow head %q", spec.Head)
		}
		if spec.HeadSize > 0 {
			a.HeadSize = spec.HeadSize
		}
		d, base = a, &a.Base

	case "dot":
		c, perr := spec.Center.point("center")
		if perr != nil {
			return nil, perr
		}
		dot := shapes.NewDot(c, spec.Radius)
		d, base = dot, &dot.Base

	case "glow_dot":
		c, perr := spec.Center.point("center")
		if perr != nil {
			return nil, perr
		}
		g := shapes.NewGlowDot(c)
		d, base = g, &g.Base

	case "eraser":
		if len(spec.Targets) == 0 {
			return nil, fmt.Errorf("eraser needs targets")
		}
		victims := make([]handanim.Drawable, 0, len(spec.Targets))
		for _, name := range spec.Targets {
			v, ok := declared[name]
			if !ok {
				return nil, fmt.Errorf("unknown eraser target %q", name)
			}
			victims = append(victims, v)
		}
		er := shapes.NewEraser(victims...)
		d, base = er, &er.Base

	case "text":
		at, perr := spec.At.point("at")
		if perr != nil {
			return nil, perr
		}
		t := shapes.NewText(spec.Text, at, spec.Size)
		if spec.Font != "" {
			data, rerr := os.ReadFile(spec.Font)
			if rerr != nil {
				return nil, fmt.Errorf("font: %w", rerr)
			}
			t.Font = data
		}
		d, base = t, &t.Base

	default:
		return nil, fmt.Errorf("unknown shape type %q", spec.Type)
	}
	if err = applyStyles(base, spec); err != nil {
		return nil, err
	}
	return d, nil
}

func applyStyles(base *handanim.Base, spec ShapeSpec) error {
	if s := spec.Stroke; s != nil {
		if s.Color != "" {
			c, err := parseColor(s.Color)
			if err != nil {
				return fmt.Errorf("stroke: %w", err)
			}
			base.Stroke.Color = c
		}
		if s.Width != nil {
			base.Stroke.Width = *s.Width
		}
		if s.Opacity != nil {
			base.Stroke.Opacity = *s.Opacity
		}
	}
	if f := spec.Fill; f != nil {
		fill := handanim.DefaultFillStyle()
		if f.Color != "" {
			c, err := parseColor(f.Color)
			if err != nil {
				return fmt.Errorf("fill: %w", err)
			}
			fill.Color = c
		}
		if f.Opacity != nil {
			fill.Opacity = *f.Opacity
		}
		base.Fill = &fill
	}
	if sk := spec.Sketch; sk != nil {
		if sk.Roughness != nil {
			base.Sketch.Roughness = *sk.Roughness
		}
		if sk.Bowing != nil {
			base.Sketch.Bowing = *sk.Bowing
		}
		if sk.MaxOffset != nil {
			base.Sketch.MaxRandomOffset = *sk.MaxOffset
		}
		if sk.CurveTightness != nil {
			base.Sketch.CurveTightness = *sk.CurveTightness
		}
		if sk.CurveFitting != nil {
			base.Sketch.CurveFitting = *sk.CurveFitting
		}
		if sk.CurveStepCount > 0 {
			base.Sketch.CurveStepCount = sk.CurveStepCount
		}
		base.Sketch.DisableMultiStroke = sk.SingleStroke
		base.Sketch.Seed = sk.Seed
	}
	return nil
}

func buildEvent(spec EventSpec) (*handanim.Event, error) {
	var ev *handanim.Event
	switch spec.Type {
	case "show":
		// Placed instantly, no animation to ease.
		if spec.Easing != "" {
			return nil, fmt.Errorf("easing %q is not applicable to show", spec.Easing)
		}
		return nil, nil

	case "sketch":
		ev = handanim.NewSketch(spec.Start, spec.Duration)
	case "fade_in":
		ev = handanim.NewFadeIn(spec.Start, spec.Duration)
	case "fade_out":
		ev = handanim.NewFadeOut(spec.Start, spec.Duration)
	case "zoom_in":
		ev = handanim.NewZoomIn(spec.Start, spec.Duration)
	case "zoom_out":
		ev = handanim.NewZoomOut(spec.Start, spec.Duration)

	case "translate_to":
		to, err := spec.To.point("to")
		if err != nil {
			return nil, err
		}
		if spec.Persist {
			ev = handanim.NewTranslateToPersist(spec.Start, spec.Duration, to)
		} else {
			ev = handanim.NewTranslateTo(spec.Start, spec.Duration, to)
		}

	case "translate_from":
		from, err := spec.To.point("to")
		if err != nil {
			return nil, err
		}
		ev = handanim.NewTranslateFrom(spec.Start, spec.Duration, from)

	case "composite":
		children := make([]*handanim.Event, 0, len(spec.Parts))
		for i, part := range spec.Parts {
			child, err := buildEvent(part)
			if err != nil {
				return nil, fmt.Errorf("part %d: %w", i, err)
			}
			if child == nil {
				return nil, fmt.Errorf("part %d: %q is not allowed inside a composite", i, part.Type)
			}
			children = append(children, child)
		}
		ev = handanim.NewComposite(children...)

	default:
		return nil, fmt.Errorf("unknown event type %q", spec.Type)
	}

	if spec.Easing != "" {
		fn, ok := easings[spec.Easing]
		if !ok {
			return nil, fmt.Errorf("unknown easing %q", spec.Easing)
		}
		ev = ev.WithEasing(fn)
	}
	return ev, nil
}

var easings = map[string]handanim.EasingFunc{
	"linear":       handanim.EaseLinear,
	"in_quad":      handanim.EaseInQuad,
	"out_quad":     handanim.EaseOutQuad,
	"in_out_quad":  handanim.EaseInOutQuad,
	"in_out_cubic": handanim.EaseInOutCubic,
	"in_out_sine":  handanim.EaseInOutSine,
}

// coord is an `[x, y]` pair in document coordinates.
type coord []float64

func (c coord) point(field string) (handanim.Point, error) {
	if len(c) != 2 {
		return handanim.Point{}, fmt.Errorf("%s must be [x, y], got %v", field, []float64(c))
	}
	return handanim.Pt(c[0], c[1]), nil
}

func (s ShapeSpec) endpoints() (from, to handanim.Point, err error) {
	if from, err = s.From.point("from"); err != nil {
		return
	}
	to, err = s.To.point("to")
	return
}

func points(cs []coord) ([]handanim.Point, error) {
	out := make([]handanim.Point, len(cs))
	for i, c := range cs {
		p, err := c.point(fmt.Sprintf("points[%d]", i))
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// parseColor reads `#rgb` and `#rrggbb` hex colors.
func parseColor(s string) (handanim.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return handanim.Color{}, fmt.Errorf("color %q: want #rgb or #rrggbb", s)
	}
	var r, g, b uint64
	var err error
	switch len(hex) {
	case 3:
		if r, err = strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8); err == nil {
			if g, err = strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8); err == nil {
				b, err = strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
			}
		}
	case 6:
		if r, err = strconv.ParseUint(hex[0:2], 16, 8); err == nil {
			if g, err = strconv.ParseUint(hex[2:4], 16, 8); err == nil {
				b, err = strconv.ParseUint(hex[4:6], 16, 8)
			}
		}
	default:
		return handanim.Color{}, fmt.Errorf("color %q: want #rgb or #rrggbb", s)
	}
	if err != nil {
		return handanim.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return handanim.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}
