package iconset

import (
	"strconv"
	"strings"
)

// DefaultSize is the glyph size used if neither a glyph nor its set specify one.
const DefaultSize float64 = 24

// FirstCodepoint is the first synthetic codepoint assigned to SVG glyphs, the
// start of the Unicode private use area.
const FirstCodepoint rune = 0xE000

// ValidCodepoint is true if cp is the hexadecimal notation of a Unicode
// codepoint.
func ValidCodepoint(cp string) bool {
	v, err := strconv.ParseUint(cp, 16, 32)
	return err == nil && v <= 0x10FFFF
}

// Mode tells how the glyphs of a source are described.
type Mode int

// Source modes
const (
	NoMode      Mode = iota
	TableMode        // codepoint table text plus extraction pattern
	SVGMode          // glyph bodies, codepoints are synthetic
	GlyphConfig      // YAML glyph configuration, codepoints given
)

// Source is a raw icon-set record as delivered by the discovery layer.
//
// Prefix is used verbatim as a directory and file name component and must be
// path-safe.
type Source struct {
	Prefix   string
	Name     string // display name
	Version  string // optional
	Width    float64
	Height   float64
	InfoSize float64 // height from the set's info block, fallback for both dimensions
	Mode     Mode
	// table mode
	Codepoints string // raw codepoints table text
	Pattern    string // regular expression with two groups: name, hex codepoint
	// glyph config mode
	Entries []Entry
	// SVG mode
	Icons []SVGIcon
	// all modes
	FontAsset string // path of the font file
	Variants  []VariantSource
}

// VariantSource is a secondary font of an icon set, e.g. a bold weight.
// An empty Pattern inherits the pattern of the parent source.
type VariantSource struct {
	Key        string
	Codepoints string
	Pattern    string
	FontAsset  string
}

// SVGIcon is a single glyph body of an SVG-mode source. Zero sizes are unset.
type SVGIcon struct {
	Name   string
	Body   string
	Width  float64
	Height float64
}

// Entry is an extracted (name, codepoint) pair before normalization.
type Entry struct {
	Name      string
	Codepoint string
}

// Glyph is the normalized unit of a glyph table.
type Glyph struct {
	Name      string `json:"-"`
	Codepoint string `json:"codepoint"`     // upper-case hex
	SVG       string `json:"svg,omitempty"` // normalized vector markup, SVG mode only
	Family    string `json:"-"`             // family identifier of the binding, empty = base font
}

// FontBinding binds a font family identifier to a font asset.
type FontBinding struct {
	Family string // lowerCamel identifier
	Asset  string // path of the font file
}

// ControlSequence is the name of the LaTeX font switch for the binding,
// without the leading backslash.
func (b FontBinding) ControlSequence() string {
	return b.Family + "Font"
}

// IconSet is the merged in-memory icon set for one prefix.
type IconSet struct {
	Prefix  string
	Name    string
	Version string
	FontID  string // family identifier of the base font
	Glyphs  *Table
	Fonts   []FontBinding // base font first, then one per variant
}

// Info is the descriptive text of a set: "{name} v{version}" or "{name}".
func (set *IconSet) Info() string {
	if strings.TrimSpace(set.Version) == "" {
		return set.Name
	}
	return set.Name + " v" + set.Version
}

// Binding returns the font binding for a family identifier. The empty family
// denotes the base font.
func (set *IconSet) Binding(family string) (FontBinding, bool) {
	if family == "" {
		family = set.FontID
	}
	for _, b := range set.Fonts {
		if b.Family == family {
			return b, true
		}
	}
	return FontBinding{}, false
}

// Skipped records a glyph which could not be normalized.
type Skipped struct {
	Name string
	Err  error
}

func (s Skipped) String() string {
	return s.Name + ": " + s.Err.Error()
}
