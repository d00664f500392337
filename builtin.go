package cursor

import "github.com/gogpu/cursor/xcursor"

// builtinArrow is the fallback cursor: '#' is black, '.' is white, anything
// else is transparent. The tip is the hotspot.
var builtinArrow = [...]string{
	"#",
	"##",
	"#.#",
	"#..#",
	"#...#",
	"#....#",
	"#.....#",
	"#......#",
	"#.......#",
	"#........#",
	"#.........#",
	"#..........#",
	"#...........#",
	"#......######",
	"#...#..#",
	"#..##..#",
	"#.#  #..#",
	"##   #..#",
	"#     #..#",
	"      #..#",
	"       #..#",
	"       #..#",
	"        ##",
}

// BuiltinFrames returns the built-in arrow as a single static frame of
// nominal size DefaultSize.
func BuiltinFrames() []xcursor.Image {
	const n = DefaultSize
	pix := make([]byte, n*n*4)
	for y, row := range builtinArrow {
		for x := 0; x < len(row) && x < n; x++ {
			var v byte
			switch row[x] {
			case '#':
				v = 0x00
			case '.':
				v = 0xff
			default:
				continue
			}
			i := (y*n + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xff
		}
	}
	return []xcursor.Image{{
		Size:   n,
		Width:  n,
		Height: n,
		Pixels: pix,
	}}
}
