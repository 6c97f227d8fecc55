// Package handanim computes hand-drawn-style vector animations frame by
// frame.
//
// # Overview
//
// An author declares shapes, styles and timed animation events; the engine
// turns them into one ordered set of drawing operations per frame, ready
// for any 2D backend that understands the operation taxonomy (the render
// subpackage targets github.com/gogpu/gg).
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/handanim"
//		"github.com/gogpu/handanim/shapes"
//	)
//
//	scene := handanim.NewScene(800, 608)
//	circle := shapes.NewCircle(handanim.Pt(400, 300), 120)
//	scene.Add(handanim.NewSketch(0, 2), circle)
//	frames, _ := scene.Timeline(30, 3)
//
// Each element of frames is an OpSet: the complete drawing instructions
// for that frame, including partially revealed segments while a sketch is
// in flight.
//
// # Architecture
//
// The package is organized into:
//   - Operation IR: Op, OpSet, geometric transforms and queries
//   - Events: Sketch, FadeIn/FadeOut, ZoomIn/ZoomOut, TranslateTo/From,
//     TranslateToPersist, Composite
//   - Drawables: the Drawable interface, Base identity/styling, Group
//   - Scheduler: Scene, toggle timelines, keyframes, persisted state
//
// Subpackages: shapes (primitives), render (rasterization via gg),
// video (ffmpeg encoding), scenario (YAML scene descriptions).
package handanim
