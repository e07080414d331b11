package theme

// Soft validation limits for loaded themes.
const (
	MaxThemes  = 64
	MaxColors  = 20
	MaxNameLen = 64
)

// ListName is the reserved theme name that requests the theme list.
// It is matched case-insensitively.
const ListName = "list"

// DefaultName is used when no theme name is given.
const DefaultName = "standard"

// Theme is a named, ordered list of packed 0xRRGGBB colours.
type Theme struct {
	Name   string
	Colors []uint32
}

// Len returns the number of colours in the theme.
func (t Theme) Len() int {
	return len(t.Colors)
}

// ColorFor returns the colour painted for the seed at index.
// Indices beyond the palette cycle back to the start.
func (t Theme) ColorFor(index int) uint32 {
	return t.Colors[index%len(t.Colors)]
}

func (t Theme) clone() Theme {
	return Theme{Name: t.Name, Colors: append([]uint32(nil), t.Colors...)}
}
