package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gogpu/cursor"
	"github.com/gogpu/cursor/render"
	"github.com/gogpu/cursor/theme"
	"github.com/gogpu/cursor/xcursor"
)

func TestParseHotspot(t *testing.T) {
	tests := []struct {
		in      string
		want    image.Point
		wantErr bool
	}{
		{"0,0", image.Pt(0, 0), false},
		{"4,7", image.Pt(4, 7), false},
		{" 12 , 3 ", image.Pt(12, 3), false},
		{"5", image.Point{}, true},
		{"a,1", image.Point{}, true},
		{"1,b", image.Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseHotspot(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHotspot(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseHotspot(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFrameFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})

	tests := []struct {
		name     string
		nominal  int
		hot      image.Point
		wantSize uint32
		wantErr  bool
	}{
		{"nominal from dimensions", 0, image.Pt(1, 1), 4, false},
		{"explicit nominal", 24, image.Pt(0, 0), 24, false},
		{"hotspot on edge", 0, image.Pt(4, 2), 4, false},
		{"hotspot outside", 0, image.Pt(5, 0), 0, true},
		{"negative hotspot", 0, image.Pt(-1, 0), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := frameFromImage(src, tt.nominal, tt.hot, 30*time.Millisecond)
			if (err != nil) != tt.wantErr {
				t.Fatalf("frameFromImage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if img.Size != tt.wantSize || img.Width != 4 || img.Height != 2 {
				t.Errorf("frame = size %d %dx%d, want size %d 4x2", img.Size, img.Width, img.Height, tt.wantSize)
			}
			if img.Delay != 30 {
				t.Errorf("Delay = %d, want 30", img.Delay)
			}
			if img.XHot != uint32(tt.hot.X) || img.YHot != uint32(tt.hot.Y) {
				t.Errorf("hotspot = %d,%d, want %v", img.XHot, img.YHot, tt.hot)
			}
			// Straight alpha is premultiplied on the way in.
			if got := img.Pixels[:4]; got[0] != 128 || got[3] != 128 {
				t.Errorf("first pixel = %v, want premultiplied red at alpha 128", got)
			}
		})
	}
}

func TestFrameFromImageEmpty(t *testing.T) {
	if _, err := frameFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)), 0, image.Point{}, 0); err == nil {
		t.Error("frameFromImage(empty) succeeded, want error")
	}
}

func TestPrintFrames(t *testing.T) {
	images := []xcursor.Image{
		{Size: 24, Width: 24, Height: 24, XHot: 3, YHot: 4, Delay: 50},
		{Size: 24, Width: 24, Height: 24, XHot: 3, YHot: 4, Delay: 30},
		{Size: 32, Width: 32, Height: 32, Delay: 20},
	}
	var buf bytes.Buffer
	if err := printFrames(&buf, images, []uint32{24, 32}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"sizes: 24, 32", "DIMENSIONS", "24x24", "3,4", "80ms", "32x32"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func builtinPointer(t *testing.T) *cursor.Pointer {
	t.Helper()
	r := theme.NewResolverFS(os.DirFS(t.TempDir()), []string{"icons"})
	p, err := cursor.New(render.NewSoftwareImporter(), cursor.DefaultConfig(), cursor.WithResolver(r))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestSnapshotBuiltin(t *testing.T) {
	p := builtinPointer(t)
	if p.Source() != cursor.SourceBuiltin {
		t.Fatalf("Source() = %v, want builtin", p.Source())
	}
	img, err := snapshot(p, 0)
	if err != nil {
		t.Fatalf("snapshot() error = %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 24 {
		t.Errorf("snapshot size = %v, want 24x24", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got.A != 255 {
		t.Errorf("arrow tip = %v, want opaque", got)
	}
}

func TestSnapshotHidden(t *testing.T) {
	p := builtinPointer(t)
	p.SetStatus(cursor.Hidden())
	if _, err := snapshot(p, 0); !errors.Is(err, cursor.ErrFrameLookupMiss) {
		t.Errorf("snapshot(hidden) error = %v, want ErrFrameLookupMiss", err)
	}
}

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestPackCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writePNG(t, a, color.NRGBA{R: 255, A: 255})
	writePNG(t, b, color.NRGBA{B: 255, A: 255})
	out := filepath.Join(dir, "left_ptr")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"pack", "-o", out, "-d", "40ms", "--hotspot", "2,3", a, b})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("pack: %v", err)
	}
	if !strings.Contains(stdout.String(), "2 frames") {
		t.Errorf("output = %q, want frame count", stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	images, err := xcursor.Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("decoded %d frames, want 2", len(images))
	}
	for i, img := range images {
		if img.Size != 8 || img.Delay != 40 || img.XHot != 2 || img.YHot != 3 {
			t.Errorf("frame %d = %+v", i, img)
		}
	}
	if images[0].Pixels[0] != 255 || images[1].Pixels[2] != 255 {
		t.Error("frame pixels do not match their source PNGs")
	}
}

func TestImportCommand(t *testing.T) {
	t.Setenv("XCURSOR_PATH", t.TempDir())
	t.Setenv("XCURSOR_THEME", "missing")

	for _, name := range []string{"software", backendNoop} {
		t.Run(name, func(t *testing.T) {
			var stdout bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetArgs([]string{"import", "-c", filepath.Join(t.TempDir(), "none.yaml"), "-b", name})
			t.Cleanup(func() { rootCmd.SetArgs(nil) })
			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("import: %v", err)
			}
			out := stdout.String()
			for _, want := range []string{"backend:\t" + name, "source:\tbuiltin", "frames:\t1"} {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestImportUnknownBackend(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"import", "-c", filepath.Join(t.TempDir(), "none.yaml"), "-b", "vulkan"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if err := rootCmd.Execute(); err == nil {
		t.Error("import with unknown backend succeeded")
	}
}
