/*
Package variant merges secondary fonts of an icon set into its glyph table.

A variant key such as "bold" is appended to every glyph name of the variant
("home" becomes "home-bold"), and the variant gets a font family of its own,
named after prefix and key. Names of different variants do not collide as long
as variant keys are distinct and no base name already ends in "-{key}". This is
not checked: a later variant silently overwrites an earlier glyph of the same
merged name.
*/
package variant

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/extract"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/naming"
)

// tracer traces with key 'texicons.variant'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.variant")
}

// GlyphName is the merged name of a variant glyph.
func GlyphName(name, key string) string {
	return name + "-" + naming.GlyphName(key)
}

// Family is the family identifier of a variant font.
func Family(prefix, key string) string {
	return naming.FamilyIdentifier(prefix + "-" + key)
}

// Merge extracts the glyphs of every variant in table mode and inserts them
// into set under their merged names. Each variant appends one font binding to
// set.Fonts. Variants without their own pattern use basePattern.
//
// A variant with an empty key or an unusable pattern is malformed input; set
// must then be discarded by the caller.
func Merge(set *iconset.IconSet, variants []iconset.VariantSource, basePattern string) error {
	if set.Glyphs == nil {
		set.Glyphs = iconset.NewTable()
	}
	for _, v := range variants {
		if naming.GlyphName(v.Key) == "" {
			return core.Error(core.EINVALID, "icon set %s: variant key %q is empty", set.Prefix, v.Key)
		}
		pattern := v.Pattern
		if pattern == "" {
			pattern = basePattern
		}
		table, err := extract.Table(v.Codepoints, pattern)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "icon set %s, variant %s: %s",
				set.Prefix, v.Key, core.UserMessage(err))
		}
		family := Family(set.Prefix, v.Key)
		for _, g := range table.Glyphs() {
			g.Name = GlyphName(g.Name, v.Key)
			g.Family = family
			if _, exists := set.Glyphs.Get(g.Name); exists {
				tracer().Debugf("variant %s overwrites glyph %s", v.Key, g.Name)
			}
			set.Glyphs.Put(g)
		}
		set.Fonts = append(set.Fonts, iconset.FontBinding{Family: family, Asset: v.FontAsset})
		tracer().Infof("merged variant %s of %s: %d glyphs, font family %s",
			v.Key, set.Prefix, table.Len(), family)
	}
	return nil
}
