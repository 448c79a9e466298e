package pipeline

import (
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/extract"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/naming"
	"github.com/npillmayer/texicons/core/svgnorm"
	"github.com/npillmayer/texicons/core/variant"
)

// Assemble turns a source record into a merged icon set. It touches neither
// the file system nor the font assets. Glyphs of SVG-mode sources which fail
// normalization are returned as skipped; any other problem is malformed input
// (core.EINVALID) and invalidates the whole set.
func Assemble(src iconset.Source, defaultSize float64, n svgnorm.Normalizer) (*iconset.IconSet, []iconset.Skipped, error) {
	if src.Prefix == "" {
		return nil, nil, core.Error(core.EINVALID, "icon set without prefix")
	}
	fontID := naming.FamilyIdentifier(src.Prefix)
	if fontID == "" {
		return nil, nil, core.Error(core.EINVALID, "prefix %q yields no font family identifier", src.Prefix)
	}
	set := &iconset.IconSet{
		Prefix:  src.Prefix,
		Name:    src.Name,
		Version: src.Version,
		FontID:  fontID,
		Fonts:   []iconset.FontBinding{{Family: fontID, Asset: src.FontAsset}},
	}
	var skipped []iconset.Skipped
	var err error
	switch src.Mode {
	case iconset.TableMode:
		if set.Glyphs, err = extract.Table(src.Codepoints, src.Pattern); err != nil {
			return nil, nil, core.WrapError(err, core.EINVALID, "icon set %s: %s", src.Prefix, core.UserMessage(err))
		}
	case iconset.GlyphConfig:
		set.Glyphs = extract.Codepoints(src.Entries)
	case iconset.SVGMode:
		if n == nil {
			return nil, nil, core.Error(core.EINTERNAL, "no SVG normalizer for icon set %s", src.Prefix)
		}
		sizes := extract.Sizes{Width: src.Width, Height: src.Height, Info: src.InfoSize, Default: defaultSize}
		set.Glyphs, skipped = extract.SVG(src.Icons, sizes, n)
	default:
		return nil, nil, core.Error(core.EINVALID, "icon set %s has no glyph source", src.Prefix)
	}
	if err = variant.Merge(set, src.Variants, src.Pattern); err != nil {
		return nil, nil, err
	}
	tracer().Debugf("assembled %s: %d glyphs, %d fonts", set.Prefix, set.Glyphs.Len(), len(set.Fonts))
	return set, skipped, nil
}
