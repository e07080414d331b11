package image

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// Canvas collects rows into an in-memory image.
type Canvas struct {
	img  *image.NRGBA
	rows int
}

// NewCanvas returns an opaque black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: imaging.New(width, height, colour.RGB{}.RGBA())}
}

// WriteRow copies one scan line into the canvas.
func (c *Canvas) WriteRow(y int, pix []colour.RGB) error {
	b := c.img.Bounds()
	if y < 0 || y >= b.Dy() {
		return fmt.Errorf("row %d outside image height %d", y, b.Dy())
	}
	if len(pix) != b.Dx() {
		return fmt.Errorf("row %d has %d pixels, want %d", y, len(pix), b.Dx())
	}
	off := c.img.PixOffset(0, y)
	line := c.img.Pix[off : off+4*len(pix)]
	for x, px := range pix {
		line[4*x] = px.R
		line[4*x+1] = px.G
		line[4*x+2] = px.B
		line[4*x+3] = 0xFF
	}
	c.rows++
	return nil
}

// Image returns the canvas contents. The image is shared, not copied.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Complete reports whether every row has been written.
func (c *Canvas) Complete() bool {
	return c.rows == c.img.Bounds().Dy()
}
