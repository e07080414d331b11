package theme

import (
	"fmt"
	"strings"
)

// Collection holds themes in insertion order.
type Collection struct {
	themes []Theme
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends a copy of t. It enforces the theme and colour limits and
// rejects themes without colours.
func (c *Collection) Add(t Theme) error {
	if len(c.themes) >= MaxThemes {
		return fmt.Errorf("%w: more than %d themes", ErrCapacity, MaxThemes)
	}
	if err := validate(t); err != nil {
		return err
	}
	c.themes = append(c.themes, t.clone())
	return nil
}

func validate(t Theme) error {
	switch {
	case t.Name == "":
		return fmt.Errorf("%w: empty theme name", ErrMalformed)
	case len(t.Name) > MaxNameLen:
		return fmt.Errorf("%w: theme name %q longer than %d bytes", ErrMalformed, t.Name, MaxNameLen)
	case len(t.Colors) == 0:
		return fmt.Errorf("%w: theme %q has no colours", ErrMalformed, t.Name)
	case len(t.Colors) > MaxColors:
		return fmt.Errorf("%w: theme %q has more than %d colours", ErrCapacity, t.Name, MaxColors)
	}
	return nil
}

// Len returns the number of themes.
func (c *Collection) Len() int {
	return len(c.themes)
}

// Get returns a copy of the theme at index i.
func (c *Collection) Get(i int) (Theme, error) {
	if i < 0 || i >= len(c.themes) {
		return Theme{}, fmt.Errorf("index out of bounds: %d (collection has %d themes)", i, len(c.themes))
	}
	return c.themes[i].clone(), nil
}

// Find resolves a name to a theme index.
//
// The reserved name "list", in any case, returns ErrListRequested. An empty
// name is treated as DefaultName. All other names match case-sensitively and
// the first theme in insertion order wins.
func (c *Collection) Find(name string) (int, error) {
	if strings.EqualFold(name, ListName) {
		return -1, ErrListRequested
	}
	if name == "" {
		name = DefaultName
	}
	for i, t := range c.themes {
		if t.Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Lookup is Find followed by Get.
func (c *Collection) Lookup(name string) (Theme, error) {
	i, err := c.Find(name)
	if err != nil {
		return Theme{}, err
	}
	return c.Get(i)
}

// List returns theme names in insertion order.
func (c *Collection) List() []string {
	names := make([]string, len(c.themes))
	for i, t := range c.themes {
		names[i] = t.Name
	}
	return names
}

// All returns an iterator over all themes in the collection.
func (c *Collection) All() func(func(int, Theme) bool) {
	return func(yield func(int, Theme) bool) {
		for i, t := range c.themes {
			if !yield(i, t.clone()) {
				return
			}
		}
	}
}

// Merge returns a new collection holding overlay's themes followed by base's.
// Lookups therefore prefer overlay when both define a name. Neither input is
// modified. The result is not subject to MaxThemes so that a full user config
// can still be combined with the built-in registry.
func Merge(base, overlay *Collection) *Collection {
	merged := &Collection{}
	for _, src := range []*Collection{overlay, base} {
		if src == nil {
			continue
		}
		for _, t := range src.themes {
			merged.themes = append(merged.themes, t.clone())
		}
	}
	return merged
}
