package theme

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Collection, error) {
	f, err := os.Open(path) // #nosec G304 - User-specified theme config, intended to be read
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load parses a theme config.
//
// A line starting with '[' opens a theme named by the text up to the first
// ']'. Each following line holds one hex colour until an empty line, the
// next header, or end of input. Lines starting with '#' are comments and
// lines holding only spaces or tabs are ignored.
func Load(r io.Reader) (*Collection, error) {
	c := NewCollection()
	scanner := bufio.NewScanner(r)

	var (
		current    *Theme
		headerLine int
		lineNo     int
	)

	flush := func() error {
		if current == nil {
			return nil
		}
		t := *current
		current = nil
		if err := c.Add(t); err != nil {
			return &ParseError{Line: headerLine, Msg: err.Error(), Err: err}
		}
		return nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if err := flush(); err != nil {
				return nil, err
			}
			end := strings.IndexByte(line, ']')
			if end < 0 {
				return nil, malformed(lineNo, "theme header %q has no closing ']'", line)
			}
			current = &Theme{Name: line[1:end]}
			headerLine = lineNo
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if current == nil {
			return nil, malformed(lineNo, "colour %q outside of a theme block", strings.TrimSpace(line))
		}

		value, err := ParseColour(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Msg: err.Error(), Err: err}
		}
		if len(current.Colors) == MaxColors {
			return nil, &ParseError{
				Line: lineNo,
				Msg:  fmt.Sprintf("theme %q has more than %d colours", current.Name, MaxColors),
				Err:  ErrCapacity,
			}
		}
		current.Colors = append(current.Colors, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read theme config: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return c, nil
}

// ParseColour parses one colour entry into a packed 24-bit value.
//
// An optional "0x" or "0X" prefix is stripped, then up to the first six
// characters are read as hex digits. Anything after them is ignored.
func ParseColour(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	raw := s
	for _, prefix := range []string{"0x", "0X"} {
		if strings.HasPrefix(s, prefix) {
			s = s[len(prefix):]
			break
		}
	}

	n := strings.IndexFunc(s, func(r rune) bool { return !isHexDigit(r) })
	if n < 0 {
		n = len(s)
	}
	// A short run of digits must be followed by whitespace or nothing.
	if n == 0 || (n < 6 && n < len(s) && s[n] != ' ' && s[n] != '\t') {
		return 0, fmt.Errorf("%w: invalid colour %q", ErrMalformed, raw)
	}
	digits := s[:min(n, 6)]

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, errors.Join(fmt.Errorf("%w: invalid colour %q", ErrMalformed, raw), err)
	}
	return uint32(v) & 0xFFFFFF, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
