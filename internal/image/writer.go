package image

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jmylchreest/voronoi/internal/colour"
)

// RowSink receives scan lines in top-to-bottom order.
type RowSink interface {
	WriteRow(y int, pix []colour.RGB) error
}

// RowWriter is a RowSink that must be closed to finish the image.
type RowWriter interface {
	RowSink
	Close() error
}

// Options tune format-specific encoding.
type Options struct {
	// JPEGQuality ranges 1-100. Zero selects 95.
	JPEGQuality int
}

// NewWriter returns a RowWriter encoding width x height pixels as format.
// PPM rows are streamed as they arrive; other formats are buffered and
// encoded on Close.
func NewWriter(w io.Writer, format Format, width, height int, opts Options) (RowWriter, error) {
	switch format {
	case FormatPPM:
		return newPPMWriter(w, width, height, false), nil
	case FormatPPMRaw:
		return newPPMWriter(w, width, height, true), nil
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF:
		return &encodedWriter{Canvas: NewCanvas(width, height), w: w, format: format, opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

type encodedWriter struct {
	*Canvas
	w      io.Writer
	format Format
	opts   Options
}

func (e *encodedWriter) Close() error {
	if !e.Complete() {
		return fmt.Errorf("incomplete image: %d of %d rows written", e.rows, e.img.Bounds().Dy())
	}
	return Encode(e.w, e.img, e.format, e.opts)
}

// Encode writes img in one of the buffered formats.
func Encode(w io.Writer, img *image.NRGBA, format Format, opts Options) error {
	var err error
	switch format {
	case FormatPNG:
		err = imaging.Encode(w, img, imaging.PNG)
	case FormatJPEG:
		quality := opts.JPEGQuality
		if quality == 0 {
			quality = 95
		}
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	case FormatGIF:
		err = imaging.Encode(w, img, imaging.GIF)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// FileWriter writes an image to a file. A failed or aborted write removes
// the partial file.
type FileWriter struct {
	RowWriter
	path string
	file *os.File
}

// Create opens path for writing and returns a FileWriter for it.
func Create(path string, format Format, width, height int, opts Options) (*FileWriter, error) {
	file, err := os.Create(path) // #nosec G304 - User-specified output path, intended to be written
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	w, err := NewWriter(file, format, width, height, opts)
	if err != nil {
		file.Close()
		os.Remove(path)
		return nil, err
	}
	return &FileWriter{RowWriter: w, path: path, file: file}, nil
}

// Close finishes encoding and closes the file.
func (f *FileWriter) Close() error {
	err := f.RowWriter.Close()
	if cerr := f.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(f.path)
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}

// Abort closes and removes the output file.
func (f *FileWriter) Abort() error {
	return errors.Join(f.file.Close(), os.Remove(f.path))
}

type multiSink []RowSink

// MultiSink duplicates every row to all sinks, in order.
func MultiSink(sinks ...RowSink) RowSink {
	return multiSink(sinks)
}

func (m multiSink) WriteRow(y int, pix []colour.RGB) error {
	for _, s := range m {
		if err := s.WriteRow(y, pix); err != nil {
			return err
		}
	}
	return nil
}
