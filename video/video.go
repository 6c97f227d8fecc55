// Package video encodes a scene's timeline into a video file by piping
// raw RGBA frames into an external ffmpeg process. Frames are
// rasterized in parallel batches and written to the encoder in order,
// so memory stays bounded by the batch size rather than the clip
// length.
package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os/exec"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/handanim"
	"github.com/gogpu/handanim/render"
)

// Options configures the encoder. The zero value encodes at 24 fps with
// libx264 at CRF 23, runs to the scene's last keyframe, and sizes the
// worker pool automatically.
type Options struct {
	// FPS is the output frame rate.
	FPS int
	// MaxLength is the clip length in seconds; zero runs to the last
	// keyframe.
	MaxLength float64
	// Workers bounds parallel frame rasterization; zero sizes the pool
	// from the CPU count and available memory.
	Workers int
	// Encoder is the ffmpeg video codec name.
	Encoder string
	// Quality is the CRF value passed to libx264-style encoders.
	Quality int
}

func (o Options) withDefaults() Options {
	if o.FPS <= 0 {
		o.FPS = 24
	}
	if o.Encoder == "" {
		o.Encoder = "libx264"
	}
	if o.Quality <= 0 {
		o.Quality = 23
	}
	return o
}

// Encoder renders scenes to video files.
type Encoder struct {
	opts Options
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts.withDefaults()}
}

// Encode computes the scene's timeline, rasterizes every frame and
// streams them into ffmpeg. The context cancels both rasterization and
// the ffmpeg process.
func (e *Encoder) Encode(ctx context.Context, s *handanim.Scene, outPath string) error {
	frames, err := s.Timeline(e.opts.FPS, e.opts.MaxLength)
	if err != nil {
		return err
	}

	workers := e.opts.Workers
	if workers <= 0 {
		workers = autoWorkers(s.Width, s.Height)
	}
	handanim.Logger().Info("video encoding started",
		"frames", len(frames),
		"fps", e.opts.FPS,
		"size", fmt.Sprintf("%dx%d", s.Width, s.Height),
		"workers", workers,
		"encoder", e.opts.Encoder,
	)

	args := buildFFmpegArgs(s.Width, s.Height, e.opts.FPS, e.opts.Encoder, e.opts.Quality, outPath)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var ffmpegOut bytes.Buffer
	cmd.Stdout = &ffmpegOut
	cmd.Stderr = &ffmpegOut

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start: %w", err)
	}

	renderer := render.NewForScene(s)
	writeErr := e.writeFrames(ctx, renderer, frames, workers, stdin)
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w, output: %s", err, ffmpegOut.String())
	}
	return writeErr
}

// writeFrames rasterizes frames in batches of workers*4, each batch in
// parallel, and writes the results in frame order.
func (e *Encoder) writeFrames(ctx context.Context, renderer *render.Renderer, frames []*handanim.OpSet, workers int, w io.Writer) error {
	batch := workers * 4
	images := make([]image.Image, batch)

	for lo := 0; lo < len(frames); lo += batch {
		hi := lo + batch
		if hi > len(frames) {
			hi = len(frames)
		}

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := lo; i < hi; i++ {
			g.Go(func() error {
				dc, err := renderer.Frame(frames[i])
				if err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
				images[i-lo] = dc.Image()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		for i := lo; i < hi; i++ {
			if err := writeRawRGBA(w, images[i-lo]); err != nil {
				return fmt.Errorf("write frame %d: %w", i, err)
			}
			images[i-lo] = nil
		}
	}
	return nil
}

// buildFFmpegArgs assembles the rawvideo-over-stdin invocation.
func buildFFmpegArgs(width, height, fps int, encoder string, quality int, outPath string) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		"-c:v", encoder,
	}
	switch encoder {
	case "h264_videotoolbox":
		args = append(args, "-b:v", fmt.Sprintf("%dk", quality*100))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", quality))
	default:
		args = append(args, "-crf", fmt.Sprintf("%d", quality), "-preset", "medium")
	}
	return append(args, outPath)
}

// writeRawRGBA writes the image's pixels as tightly packed RGBA rows.
func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}

// autoWorkers sizes the rasterization pool: one worker per CPU, capped
// so that concurrent frame buffers fit in available memory.
func autoWorkers(width, height int) int {
	workers := runtime.NumCPU()

	vm, err := mem.VirtualMemory()
	if err != nil {
		handanim.Logger().Warn("memory stats unavailable, using CPU count", "err", err)
		return workers
	}
	// Per worker: context pixmap, exported image and raw copy.
	perWorker := uint64(width) * uint64(height) * 4 * 3
	if perWorker > 0 {
		if fit := int(vm.Available / perWorker); fit < workers {
			handanim.Logger().Warn("workers capped by available memory",
				"cpus", workers, "capped", fit)
			workers = fit
		}
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
