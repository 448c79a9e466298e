package extract

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/naming"
	"github.com/npillmayer/texicons/core/svgnorm"
)

// Sizes are the set-level size hints of an SVG-mode source. Zero values are
// unset. Default is used if all other hints are unset; if Default is zero as
// well, iconset.DefaultSize applies.
type Sizes struct {
	Width   float64
	Height  float64
	Info    float64 // height from the set's info block
	Default float64
}

// resolve applies the fallback order glyph → set → info → default.
func (s Sizes) resolve(glyph, set float64) float64 {
	for _, v := range []float64{glyph, set, s.Info, s.Default} {
		if v > 0 {
			return v
		}
	}
	return iconset.DefaultSize
}

// Envelope wraps a glyph body in a minimal SVG document.
func Envelope(body string, width, height float64) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">%s</svg>`,
		formatSize(width), formatSize(height), body)
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SVG normalizes the glyph bodies of an SVG-mode source, in input order.
//
// Codepoints are assigned from iconset.FirstCodepoint, one per normalized
// glyph. Glyphs failing normalization are returned as skipped and leave no gap
// in the codepoint sequence.
func SVG(icons []iconset.SVGIcon, sizes Sizes, n svgnorm.Normalizer) (*iconset.Table, []iconset.Skipped) {
	table := iconset.NewTable()
	var skipped []iconset.Skipped
	codepoint := iconset.FirstCodepoint
	for _, icon := range icons {
		name := naming.GlyphName(icon.Name)
		if name == "" {
			err := fmt.Errorf("name %q is empty after normalization", icon.Name)
			tracer().P("glyph", icon.Name).Errorf("skipping glyph: %v", err)
			skipped = append(skipped, iconset.Skipped{Name: icon.Name, Err: err})
			continue
		}
		w := sizes.resolve(icon.Width, sizes.Width)
		h := sizes.resolve(icon.Height, sizes.Height)
		normalized, err := n.Normalize(Envelope(icon.Body, w, h))
		if err != nil {
			tracer().P("glyph", name).Errorf("skipping glyph: %v", err)
			skipped = append(skipped, iconset.Skipped{Name: name, Err: err})
			continue
		}
		table.Put(iconset.Glyph{
			Name:      name,
			Codepoint: fmt.Sprintf("%X", codepoint),
			SVG:       normalized,
		})
		codepoint++
	}
	tracer().Debugf("normalized %d glyphs, skipped %d", table.Len(), len(skipped))
	return table, skipped
}
