package shapes

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/handanim"
)

// Text renders a string as stroked glyph outlines. The string is shaped
// with go-text/typesetting (kerning, ligatures), outlines come from the
// font's glyf table, and each glyph baseline wobbles slightly with the
// sketch roughness so the line reads as handwriting rather than type.
//
// Font holds raw TTF bytes; when nil the bundled Go Regular face is
// used.
type Text struct {
	handanim.Base
	Content  string
	Position handanim.Point
	Size     float64
	Font     []byte
}

// NewText creates a text shape with its baseline origin at position.
func NewText(content string, position handanim.Point, size float64) *Text {
	return &Text{Base: handanim.NewBase(), Content: content, Position: position, Size: size}
}

// Draw implements handanim.Drawable. Unusable fonts or glyphs degrade
// to skipped output with a warning rather than failing the scene.
func (t *Text) Draw() *handanim.OpSet {
	out := handanim.NewOpSet(handanim.SetPen(t.Stroke.Pen()))
	if t.Content == "" {
		return out
	}

	data := t.Font
	if data == nil {
		data = goregular.TTF
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		handanim.Logger().Warn("text font unusable for shaping", "err", err)
		return out
	}
	outlineFont, err := sfnt.Parse(data)
	if err != nil {
		handanim.Logger().Warn("text font unusable for outlines", "err", err)
		return out
	}

	runes := []rune(t.Content)
	shaper := shaping.HarfbuzzShaper{}
	shaped := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(t.Size * 64),
		Script:    textScript(runes),
		Language:  language.NewLanguage("en"),
	})

	sk := newSketcher(t.Sketch)
	var buf sfnt.Buffer
	pen := t.Position
	for _, g := range shaped.Glyphs {
		origin := handanim.Pt(
			pen.X+fixedFloat(g.XOffset),
			pen.Y-fixedFloat(g.YOffset),
		)
		segments, err := outlineFont.LoadGlyph(&buf, sfnt.GlyphIndex(g.GlyphID), fixed.Int26_6(t.Size*64), nil)
		if err != nil {
			handanim.Logger().Warn("glyph outline unavailable", "glyph", uint32(g.GlyphID), "err", err)
		} else {
			appendGlyph(out, segments, origin)
		}
		pen.X += fixedFloat(g.Advance)
		// Handwriting drifts off the baseline a little per glyph.
		pen.Y += sk.uniform(sk.style.Roughness)
	}
	return out
}

// appendGlyph converts sfnt segments to drawing operations at the given
// origin, closing each contour.
func appendGlyph(out *handanim.OpSet, segments []sfnt.Segment, origin handanim.Point) {
	at := func(p fixed.Point26_6) handanim.Point {
		return handanim.Pt(origin.X+fixedFloat(p.X), origin.Y+fixedFloat(p.Y))
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				out.Add(handanim.ClosePath())
			}
			out.Add(handanim.MoveTo(at(seg.Args[0])))
			open = true
		case sfnt.SegmentOpLineTo:
			out.Add(handanim.LineTo(at(seg.Args[0])))
		case sfnt.SegmentOpQuadTo:
			out.Add(handanim.QuadCurveTo(at(seg.Args[0]), at(seg.Args[1])))
		case sfnt.SegmentOpCubeTo:
			out.Add(handanim.CurveTo(at(seg.Args[0]), at(seg.Args[1]), at(seg.Args[2])))
		}
	}
	if open {
		out.Add(handanim.ClosePath())
	}
}

// textScript returns the script of the first non-space rune.
func textScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
