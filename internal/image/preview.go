package image

import (
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// Preview renders img as ANSI half-block art at most cols characters wide.
// Each character cell shows two vertically stacked pixels, so the result
// keeps roughly the source aspect ratio.
func Preview(img image.Image, cols int) string {
	b := img.Bounds()
	if cols <= 0 || b.Empty() {
		return ""
	}
	cols = min(cols, b.Dx())

	rows := max(b.Dy()*cols/b.Dx(), 2)
	if rows%2 == 1 {
		rows++
	}

	dst := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	// Nearest neighbour keeps cell borders crisp.
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)

	var sb strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := colour.FromColor(dst.NRGBAAt(x, y))
			bottom := colour.FromColor(dst.NRGBAAt(x, y+1))
			sb.WriteString(colour.HalfBlock(top, bottom))
		}
		sb.WriteString(colour.Reset())
		sb.WriteByte('\n')
	}
	return sb.String()
}
