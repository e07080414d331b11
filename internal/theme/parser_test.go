package theme

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoadTwoThemes(t *testing.T) {
	c, err := Load(strings.NewReader("[A]\nFF0000\n\n[B]\n00FF00\n00FF00\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	a, err := c.Lookup("A")
	if err != nil {
		t.Fatalf("Lookup(A) error = %v", err)
	}
	if !slices.Equal(a.Colors, []uint32{0xFF0000}) {
		t.Errorf("A colours = %#v, want [0xFF0000]", a.Colors)
	}

	b, err := c.Lookup("B")
	if err != nil {
		t.Fatalf("Lookup(B) error = %v", err)
	}
	if !slices.Equal(b.Colors, []uint32{0x00FF00, 0x00FF00}) {
		t.Errorf("B colours = %#v, want two 0x00FF00", b.Colors)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{
			name:     "header without closing bracket",
			input:    "[Broken\nFF0000\n",
			wantErr:  ErrMalformed,
			wantLine: 1,
		},
		{
			name:     "theme with no colours",
			input:    "[Empty]\n\n[Full]\n000000\n",
			wantErr:  ErrMalformed,
			wantLine: 1,
		},
		{
			name:     "empty theme name",
			input:    "[]\n000000\n",
			wantErr:  ErrMalformed,
			wantLine: 1,
		},
		{
			name:     "colour before any header",
			input:    "FF0000\n[A]\n000000\n",
			wantErr:  ErrMalformed,
			wantLine: 1,
		},
		{
			name:     "colour after blank line",
			input:    "[A]\n000000\n\n123456\n",
			wantErr:  ErrMalformed,
			wantLine: 4,
		},
		{
			name:     "invalid hex",
			input:    "[A]\nzzzzzz\n",
			wantErr:  ErrMalformed,
			wantLine: 2,
		},
		{
			name:     "short run followed by garbage",
			input:    "[A]\nFFGG00\n",
			wantErr:  ErrMalformed,
			wantLine: 2,
		},
		{
			name:     "too many colours",
			input:    "[A]\n" + strings.Repeat("000000\n", MaxColors+1),
			wantErr:  ErrCapacity,
			wantLine: MaxColors + 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Load() error %T is not a *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}
}

func TestLoadTooManyThemes(t *testing.T) {
	var sb strings.Builder
	for i := 0; i <= MaxThemes; i++ {
		sb.WriteString("[t")
		sb.WriteString(strings.Repeat("x", i%10))
		sb.WriteString("]\nABCDEF\n")
	}

	_, err := Load(strings.NewReader(sb.String()))
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("Load() error = %v, want ErrCapacity", err)
	}
}

func TestLoadSyntax(t *testing.T) {
	input := strings.Join([]string{
		"# palette file",
		"[Mixed]",
		"0xff8800",
		"# a comment inside a block",
		"#FF0000",
		"   \t",
		"12345678",
		"0X0A",
		"abcdef trailing words",
		"[Next] ignored text",
		"010203\r",
		"[Last]",
		"FFFFFF",
	}, "\n")

	c, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := c.List(), []string{"Mixed", "Next", "Last"}; !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}

	mixed, _ := c.Lookup("Mixed")
	want := []uint32{0xFF8800, 0x123456, 0x00000A, 0xABCDEF}
	if !slices.Equal(mixed.Colors, want) {
		t.Errorf("Mixed colours = %#x, want %#x", mixed.Colors, want)
	}

	next, _ := c.Lookup("Next")
	if !slices.Equal(next.Colors, []uint32{0x010203}) {
		t.Errorf("Next colours = %#x, want [0x010203]", next.Colors)
	}

	last, _ := c.Lookup("Last")
	if !slices.Equal(last.Colors, []uint32{0xFFFFFF}) {
		t.Errorf("Last colours = %#x, want [0xffffff]", last.Colors)
	}
}

func TestLoadHashLinesAreComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		theme string
		want  []uint32
	}{
		{"inside a block", "[A]\n#FF0000\n000000\n", "A", []uint32{0x000000}},
		{"before the first header", "#123456\n[B]\n000000\n", "B", []uint32{0x000000}},
		{"after a blank line", "[C]\n010101\n\n#ABCDEF\n[D]\n020202\n", "C", []uint32{0x010101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			got, err := c.Lookup(tt.theme)
			if err != nil {
				t.Fatalf("Lookup(%s) error = %v", tt.theme, err)
			}
			if !slices.Equal(got.Colors, tt.want) {
				t.Errorf("%s colours = %#x, want %#x", tt.theme, got.Colors, tt.want)
			}
		})
	}
}

func TestLoadWhitespaceLineKeepsTheme(t *testing.T) {
	c, err := Load(strings.NewReader("[A]\n000000\n  \t\n111111\n\n[B]\n222222\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	a, _ := c.Lookup("A")
	if want := []uint32{0x000000, 0x111111}; !slices.Equal(a.Colors, want) {
		t.Errorf("A colours = %#x, want %#x", a.Colors, want)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.conf"))
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("LoadFile() error = %v, want ErrNotFound", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("LoadFile() error = %v, should wrap os.ErrNotExist", err)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "themes.conf")
		if err := os.WriteFile(path, []byte("[sea]\n0000FF\n00FFFF\n"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		c, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
	})

	t.Run("malformed file names the path", func(t *testing.T) {
		path := filepath.Join(dir, "broken.conf")
		if err := os.WriteFile(path, []byte("[broken\n"), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		_, err := LoadFile(path)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("LoadFile() error = %v, want ErrMalformed", err)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error %q does not mention %s", err, path)
		}
	})
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "FF0000", want: 0xFF0000},
		{in: "0x00ff00", want: 0x00FF00},
		{in: "#0000ff", wantErr: true},
		{in: "  a1b2c3  ", want: 0xA1B2C3},
		{in: "FFFFFFFF", want: 0xFFFFFF},
		{in: "0x1", want: 0x000001},
		{in: "", wantErr: true},
		{in: "0x", wantErr: true},
		{in: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColour(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColour(%q) = %#06x, want %#06x", tt.in, got, tt.want)
			}
		})
	}
}
