// Package colour provides the packed colour codec and terminal colour helpers.
package colour

import (
	"fmt"
	"image/color"
)

// RGB represents a colour as discrete 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Decompose splits a packed 0xRRGGBB value into its channels.
// Bits above the low 24 are ignored.
func Decompose(packed uint32) RGB {
	return RGB{
		R: uint8((packed >> 16) & 0xFF),
		G: uint8((packed >> 8) & 0xFF),
		B: uint8(packed & 0xFF),
	}
}

// Pack returns the colour as a packed 0xRRGGBB value.
func (rgb RGB) Pack() uint32 {
	return uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA converts to an opaque color.RGBA.
func (rgb RGB) RGBA() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// FromColor converts a color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// DecomposeAll decomposes every packed value in order.
func DecomposeAll(packed []uint32) []RGB {
	out := make([]RGB, len(packed))
	for i, p := range packed {
		out[i] = Decompose(p)
	}
	return out
}
