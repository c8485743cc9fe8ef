package chart

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Series colors, shared by every renderer so the PNG, HTML and terminal
// views of one benchmark agree.
var (
	ColorA = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	ColorB = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
)

// Hex formats an opaque color as #rrggbb.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
