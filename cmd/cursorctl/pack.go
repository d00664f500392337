package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/gogpu/cursor/xcursor"
)

var (
	packOut     string
	packDelay   time.Duration
	packSize    int
	packHotspot string
)

var packCmd = &cobra.Command{
	Use:   "pack frame.png...",
	Short: "Build an Xcursor file from PNG frames",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hot, err := parseHotspot(packHotspot)
		if err != nil {
			return err
		}
		var images []xcursor.Image
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			src, err := png.Decode(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("decode %s: %w", name, err)
			}
			img, err := frameFromImage(src, packSize, hot, packDelay)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			images = append(images, img)
		}

		var buf bytes.Buffer
		if err := xcursor.Encode(&buf, images); err != nil {
			return err
		}
		if err := os.WriteFile(packOut, buf.Bytes(), 0o644); err != nil { //nolint:gosec // cursor files are world readable
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d frames\n", packOut, len(images))
		return nil
	},
}

func init() {
	packCmd.Flags().StringVarP(&packOut, "output", "o", "left_ptr", "output Xcursor file")
	packCmd.Flags().DurationVarP(&packDelay, "delay", "d", 50*time.Millisecond, "delay per frame")
	packCmd.Flags().IntVar(&packSize, "nominal", 0, "nominal size (default: larger image dimension)")
	packCmd.Flags().StringVar(&packHotspot, "hotspot", "0,0", "hotspot as x,y")
	rootCmd.AddCommand(packCmd)
}

func parseHotspot(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid hotspot %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid hotspot %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid hotspot %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}

// frameFromImage converts src to a premultiplied RGBA cursor frame.
func frameFromImage(src image.Image, nominal int, hot image.Point, delay time.Duration) (xcursor.Image, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || w > 0x7fff || h > 0x7fff {
		return xcursor.Image{}, fmt.Errorf("unsupported size %dx%d", w, h)
	}
	if hot.X < 0 || hot.Y < 0 || hot.X > w || hot.Y > h {
		return xcursor.Image{}, fmt.Errorf("hotspot %v outside %dx%d", hot, w, h)
	}
	if nominal <= 0 {
		nominal = max(w, h)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	u := func(v int) uint32 { return uint32(v) } //nolint:gosec // G115: values checked above
	return xcursor.Image{
		Size:   u(nominal),
		Width:  u(w),
		Height: u(h),
		XHot:   u(hot.X),
		YHot:   u(hot.Y),
		Delay:  u(int(delay.Milliseconds())),
		Pixels: rgba.Pix,
	}, nil
}
