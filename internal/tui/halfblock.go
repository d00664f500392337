package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// upperHalf draws the top pixel in the foreground and the bottom pixel in
// the background of one terminal cell.
const upperHalf = "▀"

// HalfBlocks renders img as terminal text, two pixel rows per line.
// Pixels are premultiplied and composited over bg.
func HalfBlocks(img *image.RGBA, bg color.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := over(img.RGBAAt(x, y), bg)
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = over(img.RGBAAt(x, y+1), bg)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(top)).
				Background(hex(bottom)).
				Render(upperHalf))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// over composites a premultiplied pixel over an opaque background.
func over(c, bg color.RGBA) color.RGBA {
	inv := 255 - uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) + uint32(bg.R)*inv/255), //nolint:gosec // premultiplied: c.R <= c.A
		G: uint8(uint32(c.G) + uint32(bg.G)*inv/255), //nolint:gosec
		B: uint8(uint32(c.B) + uint32(bg.B)*inv/255), //nolint:gosec
		A: 255,
	}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
