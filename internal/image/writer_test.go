package image

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jmylchreest/voronoi/internal/colour"
)

var (
	red   = colour.RGB{R: 255}
	green = colour.RGB{G: 255}
	blue  = colour.RGB{B: 255}
	white = colour.RGB{R: 255, G: 255, B: 255}
)

func writeAll(t *testing.T, w RowWriter, rows [][]colour.RGB) {
	t.Helper()
	for y, row := range rows {
		if err := w.WriteRow(y, row); err != nil {
			t.Fatalf("WriteRow(%d) error = %v", y, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestPPMPlain(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatPPM, 2, 2, Options{})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	writeAll(t, w, [][]colour.RGB{{red, green}, {blue, white}})

	want := "P3\n2 2\n255\n" +
		"255   0   0     0 255   0\n" +
		"  0   0 255   255 255 255\n"
	if got := buf.String(); got != want {
		t.Errorf("P3 output =\n%q\nwant\n%q", got, want)
	}
}

func TestPPMRaw(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, FormatPPMRaw, 2, 1, Options{})
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	writeAll(t, w, [][]colour.RGB{{red, blue}})

	want := append([]byte("P6\n2 1\n255\n"), 255, 0, 0, 0, 0, 255)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("P6 output = %v, want %v", buf.Bytes(), want)
	}
}

func TestPPMErrors(t *testing.T) {
	t.Run("out of order", func(t *testing.T) {
		w, _ := NewWriter(&bytes.Buffer{}, FormatPPM, 1, 2, Options{})
		if err := w.WriteRow(1, []colour.RGB{red}); err == nil {
			t.Error("expected error for out of order row")
		}
	})
	t.Run("wrong width", func(t *testing.T) {
		w, _ := NewWriter(&bytes.Buffer{}, FormatPPM, 2, 1, Options{})
		if err := w.WriteRow(0, []colour.RGB{red}); err == nil {
			t.Error("expected error for short row")
		}
	})
	t.Run("incomplete", func(t *testing.T) {
		w, _ := NewWriter(&bytes.Buffer{}, FormatPPM, 1, 2, Options{})
		_ = w.WriteRow(0, []colour.RGB{red})
		if err := w.Close(); err == nil || !strings.Contains(err.Error(), "incomplete") {
			t.Errorf("Close() error = %v, want incomplete image", err)
		}
	})
}

func TestEncodedFormats(t *testing.T) {
	rows := [][]colour.RGB{{red, green}, {blue, white}}

	tests := []struct {
		format   Format
		decode   func(*bytes.Buffer) (image.Image, error)
		lossless bool
	}{
		{FormatPNG, func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) }, true},
		{FormatBMP, func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) }, true},
		{FormatTIFF, func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) }, true},
		{FormatGIF, func(b *bytes.Buffer) (image.Image, error) { return gif.Decode(b) }, false},
		{FormatJPEG, func(b *bytes.Buffer) (image.Image, error) { return jpeg.Decode(b) }, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, tt.format, 2, 2, Options{})
			if err != nil {
				t.Fatalf("NewWriter() error = %v", err)
			}
			writeAll(t, w, rows)

			img, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("decode error = %v", err)
			}
			if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
				t.Fatalf("decoded bounds = %v", b)
			}
			if !tt.lossless {
				return
			}
			for y, row := range rows {
				for x, want := range row {
					if got := colour.FromColor(img.At(x, y)); got != want {
						t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestEncodedIncomplete(t *testing.T) {
	w, _ := NewWriter(&bytes.Buffer{}, FormatPNG, 1, 2, Options{})
	_ = w.WriteRow(0, []colour.RGB{red})
	if err := w.Close(); err == nil {
		t.Error("Close() on incomplete image expected error")
	}
}

func TestNewWriterUnknownFormat(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, Format("webp"), 1, 1, Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("NewWriter() error = %v, want ErrUnknownFormat", err)
	}
}

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()

	t.Run("complete", func(t *testing.T) {
		path := filepath.Join(dir, "ok.ppm")
		w, err := Create(path, FormatPPM, 1, 1, Options{})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		writeAll(t, w, [][]colour.RGB{{white}})
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "P3\n1 1\n255\n255 255 255\n" {
			t.Errorf("file contents = %q", data)
		}
	})

	t.Run("incomplete removes file", func(t *testing.T) {
		path := filepath.Join(dir, "partial.png")
		w, err := Create(path, FormatPNG, 1, 3, Options{})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		_ = w.WriteRow(0, []colour.RGB{red})
		if err := w.Close(); err == nil {
			t.Fatal("Close() expected error")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("partial file left behind: %v", err)
		}
	})

	t.Run("abort removes file", func(t *testing.T) {
		path := filepath.Join(dir, "aborted.ppm")
		w, err := Create(path, FormatPPM, 1, 1, Options{})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if err := w.Abort(); err != nil {
			t.Fatalf("Abort() error = %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("aborted file left behind: %v", err)
		}
	})
}

func TestMultiSink(t *testing.T) {
	a, b := NewCanvas(2, 1), NewCanvas(2, 1)
	if err := MultiSink(a, b).WriteRow(0, []colour.RGB{red, blue}); err != nil {
		t.Fatalf("WriteRow() error = %v", err)
	}
	for _, c := range []*Canvas{a, b} {
		if !c.Complete() {
			t.Error("canvas not complete")
		}
		if got := colour.FromColor(c.Image().At(1, 0)); got != blue {
			t.Errorf("pixel = %+v, want blue", got)
		}
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	if err := c.WriteRow(2, []colour.RGB{red, red}); err == nil {
		t.Error("WriteRow beyond height expected error")
	}
	if err := c.WriteRow(0, []colour.RGB{red}); err == nil {
		t.Error("WriteRow with short row expected error")
	}
}
