package geometry

import "github.com/corvid-tools/breachcore/internal/mask"

// The four UI colors the geometry finder keys off of. Exact RGB values
// per spec; the collaborator capturing the bitmap is responsible for
// handing us a raster whose palette matches the game's UI.
var (
	matrixColor          = mask.RGB{R: 0xD0, G: 0xED, B: 0x57}
	conditionBorderColor = mask.RGB{R: 0x81, G: 0x96, B: 0x38}
	conditionColor       = mask.RGB{R: 0xF0, G: 0xF0, B: 0xF0}
	bufferColor          = mask.RGB{R: 0x4F, G: 0x5A, B: 0x25}
)
