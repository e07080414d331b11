// Package image writes rendered rows into image files and terminal previews.
package image

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown image format")

// Format is an output container format.
type Format string

const (
	// FormatPPM is plain-text PPM (P3).
	FormatPPM Format = "ppm"
	// FormatPPMRaw is binary PPM (P6).
	FormatPPMRaw Format = "ppm-raw"
	FormatPNG    Format = "png"
	FormatJPEG   Format = "jpeg"
	FormatGIF    Format = "gif"
	FormatBMP    Format = "bmp"
	FormatTIFF   Format = "tiff"
)

// ValidFormats returns a list of valid format names.
func ValidFormats() []Format {
	return []Format{FormatPPM, FormatPPMRaw, FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF}
}

var extensions = map[string]Format{
	".ppm":  FormatPPM,
	".pnm":  FormatPPM,
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// ParseFormat converts a format name to a Format, case-insensitively.
// "jpg" and "tif" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(s)
	switch name {
	case "jpg":
		return FormatJPEG, nil
	case "tif":
		return FormatTIFF, nil
	}
	for _, f := range ValidFormats() {
		if Format(name) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s (supported: %v)", ErrUnknownFormat, s, ValidFormats())
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnknownFormat, path)
}
