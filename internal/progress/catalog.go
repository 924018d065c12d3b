package progress

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
)

// PlaceholderGlyph is drawn for skins whose sprite is missing.
const PlaceholderGlyph = '?'

// Skin is a resolved cosmetic skin.
type Skin struct {
	Name        string
	Glyph       rune
	Color       core.Color
	Price       int
	Placeholder bool // sprite was missing or unusable
}

// Free reports whether the skin is usable without buying it.
func (s Skin) Free() bool {
	return s.Price == 0
}

// Catalog is the ordered list of known skins.
type Catalog struct {
	skins  []Skin
	byName map[string]int
}

// NewCatalog resolves the configured skins. A skin with a missing or
// multi-character glyph, or an unknown color, degrades to the placeholder
// sprite instead of failing.
func NewCatalog(cfgs []config.SkinConfig) *Catalog {
	c := &Catalog{
		skins:  make([]Skin, 0, len(cfgs)),
		byName: make(map[string]int, len(cfgs)),
	}
	for _, sc := range cfgs {
		skin := Skin{Name: sc.Name, Price: sc.Price, Glyph: PlaceholderGlyph, Color: core.ColorGray}

		if utf8.RuneCountInString(sc.Glyph) == 1 {
			skin.Glyph, _ = utf8.DecodeRuneInString(sc.Glyph)
		} else {
			skin.Placeholder = true
		}
		if color, ok := core.ParseColor(sc.Color); ok && !skin.Placeholder {
			skin.Color = color
		} else {
			skin.Placeholder = true
			skin.Glyph = PlaceholderGlyph
		}

		c.byName[sc.Name] = len(c.skins)
		c.skins = append(c.skins, skin)
	}
	return c
}

// Skins returns every skin in catalog order.
func (c *Catalog) Skins() []Skin {
	return c.skins
}

// Len returns the number of skins.
func (c *Catalog) Len() int {
	return len(c.skins)
}

// Lookup finds a skin by name.
func (c *Catalog) Lookup(name string) (Skin, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Skin{}, false
	}
	return c.skins[i], true
}

// Resolve returns the named skin, or a placeholder skin carrying the name
// when the catalog does not know it.
func (c *Catalog) Resolve(name string) Skin {
	if s, ok := c.Lookup(name); ok {
		return s
	}
	return Skin{Name: name, Glyph: PlaceholderGlyph, Color: core.ColorGray, Placeholder: true}
}

// ForSale returns the skins that cost coins, in catalog order.
func (c *Catalog) ForSale() []Skin {
	var out []Skin
	for _, s := range c.skins {
		if !s.Free() {
			out = append(out, s)
		}
	}
	return out
}

// DefaultIndex picks the initial selection: the most recently bought skin
// when the catalog has it, otherwise the first entry.
func (c *Catalog) DefaultIndex(rec *Record) int {
	if last, ok := rec.LastSkin(); ok {
		if i, found := c.byName[last]; found {
			return i
		}
	}
	return 0
}

// CheckSelectable reports whether the player may start a run with the skin.
func (c *Catalog) CheckSelectable(rec *Record, name string) error {
	s, ok := c.Lookup(name)
	if !ok {
		return fmt.Errorf("progress: skin %q: %w", name, ErrUnknownItem)
	}
	if !s.Free() && !rec.Owns(name) {
		return fmt.Errorf("progress: skin %q costs %d coins: %w", name, s.Price, ErrSkinLocked)
	}
	return nil
}
