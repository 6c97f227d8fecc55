package video

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.FPS != 24 {
		t.Errorf("FPS = %d, want 24", o.FPS)
	}
	if o.Encoder != "libx264" {
		t.Errorf("Encoder = %q, want libx264", o.Encoder)
	}
	if o.Quality != 23 {
		t.Errorf("Quality = %d, want 23", o.Quality)
	}
}

func TestBuildFFmpegArgs(t *testing.T) {
	args := buildFFmpegArgs(640, 480, 30, "libx264", 20, "out.mp4")
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"-f rawvideo",
		"-pixel_format rgba",
		"-video_size 640x480",
		"-framerate 30",
		"-i -",
		"-pix_fmt yuv420p",
		"-c:v libx264",
		"-crf 20",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
	if args[len(args)-1] != "out.mp4" {
		t.Errorf("last arg = %q, want output path", args[len(args)-1])
	}
}

func TestBuildFFmpegArgs_HardwareEncoders(t *testing.T) {
	vt := strings.Join(buildFFmpegArgs(64, 64, 24, "h264_videotoolbox", 23, "o.mp4"), " ")
	if !strings.Contains(vt, "-b:v 2300k") {
		t.Errorf("videotoolbox args missing bitrate: %s", vt)
	}
	nv := strings.Join(buildFFmpegArgs(64, 64, 24, "h264_nvenc", 23, "o.mp4"), " ")
	if !strings.Contains(nv, "-cq 23") {
		t.Errorf("nvenc args missing -cq: %s", nv)
	}
	if strings.Contains(nv, "-crf") {
		t.Errorf("nvenc args should not carry -crf: %s", nv)
	}
}

func TestWriteRawRGBA_PassThrough(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := writeRawRGBA(&buf, img); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 2*2*4 {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 2*2*4)
	}
	if got := buf.Bytes()[0]; got != 255 {
		t.Errorf("first pixel R = %d, want 255", got)
	}
	if got := buf.Bytes()[3*4+2]; got != 255 {
		t.Errorf("last pixel B = %d, want 255", got)
	}
}

func TestWriteRawRGBA_ConvertsOtherFormats(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{G: 200, A: 255})

	var buf bytes.Buffer
	if err := writeRawRGBA(&buf, img); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 3*2*4 {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 3*2*4)
	}
	if got := buf.Bytes()[5*4+1]; got != 200 {
		t.Errorf("converted pixel G = %d, want 200", got)
	}
}

func TestWriteRawRGBA_SubImage(t *testing.T) {
	// Sub-images have a non-tight stride and a shifted origin; both must
	// be normalized before streaming.
	base := image.NewRGBA(image.Rect(0, 0, 10, 10))
	base.SetRGBA(5, 5, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	sub := base.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)

	var buf bytes.Buffer
	if err := writeRawRGBA(&buf, sub); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 4*4*4 {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), 4*4*4)
	}
	// (5,5) in the base is (1,1) in the written frame.
	off := (1*4 + 1) * 4
	if buf.Bytes()[off] != 9 || buf.Bytes()[off+1] != 8 || buf.Bytes()[off+2] != 7 {
		t.Errorf("marker pixel = %v, want (9, 8, 7)", buf.Bytes()[off:off+3])
	}
}

func TestAutoWorkers_AtLeastOne(t *testing.T) {
	// Absurdly large frames must still leave one worker.
	if got := autoWorkers(1<<20, 1<<20); got < 1 {
		t.Errorf("autoWorkers = %d, want >= 1", got)
	}
	if got := autoWorkers(64, 64); got < 1 {
		t.Errorf("autoWorkers = %d, want >= 1", got)
	}
}
