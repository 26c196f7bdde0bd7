package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Icon geometry is fixed: one 16x16 image at 32 bits per pixel.
const iconSize = 16

// iconColor is the solid fill, fully opaque. On the wire it becomes the
// BGRA quad (255, 0, 0, 255).
var iconColor = color.RGBA{0, 0, 255, 255}

// renderIcon produces the 16x16 solid-color icon image.
func renderIcon() image.Image {
	dc := gg.NewContext(iconSize, iconSize)
	dc.SetColor(iconColor)
	dc.Clear()
	return dc.Image()
}
