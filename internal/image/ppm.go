package image

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// ppmWriter streams rows straight to the output without buffering the image.
type ppmWriter struct {
	w       *bufio.Writer
	width   int
	height  int
	raw     bool
	rows    int
	started bool
	scratch []byte
}

func newPPMWriter(w io.Writer, width, height int, raw bool) *ppmWriter {
	return &ppmWriter{w: bufio.NewWriter(w), width: width, height: height, raw: raw}
}

func (p *ppmWriter) header() error {
	magic := "P3"
	if p.raw {
		magic = "P6"
	}
	_, err := fmt.Fprintf(p.w, "%s\n%d %d\n255\n", magic, p.width, p.height)
	return err
}

// WriteRow writes one scan line. P3 rows hold "%3d %3d %3d" triples joined
// by three spaces, one text line per scan line.
func (p *ppmWriter) WriteRow(y int, pix []colour.RGB) error {
	if !p.started {
		if err := p.header(); err != nil {
			return fmt.Errorf("write ppm header: %w", err)
		}
		p.started = true
	}
	if y != p.rows {
		return fmt.Errorf("row %d written out of order (expected %d)", y, p.rows)
	}
	if len(pix) != p.width {
		return fmt.Errorf("row %d has %d pixels, want %d", y, len(pix), p.width)
	}

	p.scratch = p.scratch[:0]
	for x, c := range pix {
		if p.raw {
			p.scratch = append(p.scratch, c.R, c.G, c.B)
			continue
		}
		if x != 0 {
			p.scratch = append(p.scratch, "   "...)
		}
		p.scratch = fmt.Appendf(p.scratch, "%3d %3d %3d", c.R, c.G, c.B)
	}
	if !p.raw {
		p.scratch = append(p.scratch, '\n')
	}
	if _, err := p.w.Write(p.scratch); err != nil {
		return err
	}
	p.rows++
	return nil
}

func (p *ppmWriter) Close() error {
	if p.rows != p.height {
		return fmt.Errorf("incomplete image: %d of %d rows written", p.rows, p.height)
	}
	return p.w.Flush()
}
