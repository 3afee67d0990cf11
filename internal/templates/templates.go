// Package templates holds the six fixed hex-byte glyph masks the
// classifier matches against. Per spec they are carved from a single
// reference bitmap by fixed pixel rectangles, one per hex byte, then
// filtered against white with tol=1. No screenshot asset exists in
// this environment, so the reference bitmap itself is a small literal
// pixel grid — the same "bitmap font as Go data" idiom
// golang.org/x/image/font/basicfont uses, just authored by us instead
// of extracted from a real capture.
package templates

import (
	"fmt"

	"github.com/corvid-tools/breachcore/internal/bitmap"
	"github.com/corvid-tools/breachcore/internal/mask"
)

// HexByte is one of the six values the matrix and condition cells are
// drawn from. The type is a plain byte so zero-valued HexByte(0) is
// never mistaken for a real alphabet member — it isn't one.
type HexByte byte

const (
	Hex1C HexByte = 0x1C
	Hex55 HexByte = 0x55
	Hex7A HexByte = 0x7A
	HexBD HexByte = 0xBD
	HexE9 HexByte = 0xE9
	HexFF HexByte = 0xFF
)

// Alphabet lists the six hex bytes in declaration order. classify_cell
// ties are broken by this order, per spec.md section 4.4.
var Alphabet = []HexByte{Hex1C, Hex55, Hex7A, HexBD, HexE9, HexFF}

func (h HexByte) String() string {
	return fmt.Sprintf("%02X", byte(h))
}

const (
	glyphW = 5
	glyphH = 7
)

// glyphs[i] corresponds to Alphabet[i]. Each row is glyphW runes wide;
// '#' is glyph ink (white in the reference bitmap), '.' is background.
var glyphs = [][]string{
	{ // 1C
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
		"#####",
	},
	{ // 55
		"#####",
		"#....",
		"####.",
		"....#",
		"....#",
		"#....",
		"#####",
	},
	{ // 7A
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#....",
	},
	{ // BD
		"####.",
		"#...#",
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"####.",
	},
	{ // E9
		"#####",
		"#....",
		"####.",
		"#....",
		"#....",
		"#....",
		"#####",
	},
	{ // FF
		"#####",
		"#....",
		"####.",
		"#....",
		"#....",
		"#....",
		"#....",
	},
}

var white = mask.RGB{R: 0xFF, G: 0xFF, B: 0xFF}
var dark = mask.RGB{R: 0x10, G: 0x10, B: 0x10}

// referenceBitmap lays the six glyphs side by side in one raster, the
// way a real carved-template screenshot would hold them.
func referenceBitmap() bitmap.Bitmap {
	w := glyphW * len(glyphs)
	h := glyphH
	pix := make([]mask.RGB, w*h)
	for i := range pix {
		pix[i] = dark
	}
	for gi, rows := range glyphs {
		for y, row := range rows {
			for x, c := range row {
				if c == '#' {
					px := gi*glyphW + x
					pix[y*w+px] = white
				}
			}
		}
	}
	return bitmap.New(w, h, pix)
}

// Masks maps each alphabet member to its pre-filtered template mask.
var Masks = buildMasks()

func buildMasks() map[HexByte]mask.Mask {
	ref := referenceBitmap()
	out := make(map[HexByte]mask.Mask, len(Alphabet))
	for i, hb := range Alphabet {
		rect := mask.Rect{Left: i * glyphW, Top: 0, Right: (i + 1) * glyphW, Bottom: glyphH}
		out[hb] = mask.Filter(ref, white, 1, rect)
	}
	return out
}
