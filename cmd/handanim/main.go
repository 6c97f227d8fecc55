// Command handanim renders a YAML scenario to a video file, or to a
// single PNG snapshot when -snapshot is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/handanim"
	"github.com/gogpu/handanim/render"
	"github.com/gogpu/handanim/scenario"
	"github.com/gogpu/handanim/video"
)

func main() {
	inputPtr := flag.String("input", "", "Path to the scenario YAML file")
	outputPtr := flag.String("output", "out.mp4", "Path to the output video")
	fpsPtr := flag.Int("fps", 24, "Frames per second")
	durationPtr := flag.Float64("duration", 0, "Clip length in seconds (0: run to the last animation)")
	workersPtr := flag.Int("workers", 0, "Parallel frame workers (0: auto)")
	encoderPtr := flag.String("encoder", "libx264", "ffmpeg video codec: libx264, h264_videotoolbox, h264_nvenc")
	qualityPtr := flag.Int("quality", 23, "Quality (x264: CRF 1-51, VideoToolbox: bitrate = Q*100kbit/s)")
	snapshotPtr := flag.Float64("snapshot", -1, "Render a single PNG of the scene at this time instead of a video")
	verbosePtr := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *inputPtr == "" {
		fmt.Fprintln(os.Stderr, "usage: handanim -input scene.yaml [-output out.mp4]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbosePtr {
		level = slog.LevelDebug
	}
	handanim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	doc, err := scenario.Load(*inputPtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}
	scene, err := doc.Build()
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	if *snapshotPtr >= 0 {
		out := *outputPtr
		if out == "out.mp4" {
			out = "out.png"
		}
		r := render.NewForScene(scene)
		if err := r.Snapshot(scene, *snapshotPtr, out); err != nil {
			log.Fatalf("[-] %v", err)
		}
		fmt.Printf("[+] Snapshot at t=%.2fs written to %s\n", *snapshotPtr, out)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enc := video.NewEncoder(video.Options{
		FPS:       *fpsPtr,
		MaxLength: *durationPtr,
		Workers:   *workersPtr,
		Encoder:   *encoderPtr,
		Quality:   *qualityPtr,
	})

	started := time.Now()
	if err := enc.Encode(ctx, scene, *outputPtr); err != nil {
		log.Fatalf("[-] %v", err)
	}
	fmt.Printf("[+] Video written to %s in %s\n", *outputPtr, time.Since(started).Round(time.Millisecond))
}
