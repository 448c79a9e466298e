package pipeline

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/svgnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleGlyphConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.pipeline")
	defer teardown()
	//
	src := iconset.Source{
		Prefix:    "fa6-brands",
		Name:      "Font Awesome Brands",
		Mode:      iconset.GlyphConfig,
		Entries:   []iconset.Entry{{Name: "GitHub", Codepoint: "F09B"}, {Name: "git_hub", Codepoint: "F09C"}},
		FontAsset: "fa.ttf",
	}
	set, skipped, err := Assemble(src, 24, nil)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, "faiBrands", set.FontID)
	assert.Equal(t, []iconset.FontBinding{{Family: "faiBrands", Asset: "fa.ttf"}}, set.Fonts)
	assert.Equal(t, []string{"git-hub"}, set.Glyphs.Names())
	g, _ := set.Glyphs.Get("git-hub")
	assert.Equal(t, "F09C", g.Codepoint)
}

func TestAssembleRejectsMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.pipeline")
	defer teardown()
	//
	for _, src := range []iconset.Source{
		{Mode: iconset.GlyphConfig},
		{Prefix: "---", Mode: iconset.GlyphConfig},
		{Prefix: "demo"},
		{Prefix: "demo", Mode: iconset.TableMode, Pattern: "(only-one)"},
		{Prefix: "demo", Mode: iconset.TableMode, Pattern: `(\S+) (\S+)`,
			Variants: []iconset.VariantSource{{Key: "", Codepoints: "a 1"}}},
	} {
		_, _, err := Assemble(src, 24, nil)
		require.Error(t, err, src.Prefix)
		assert.Equal(t, core.EINVALID, core.Code(err), src.Prefix)
	}
	_, _, err := Assemble(iconset.Source{Prefix: "demo", Mode: iconset.SVGMode}, 24, nil)
	assert.Equal(t, core.EINTERNAL, core.Code(err))
}

func TestAssembleSVG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.pipeline")
	defer teardown()
	//
	identity := svgnorm.NormalizerFunc(func(markup string) (string, error) { return markup, nil })
	src := iconset.Source{
		Prefix:   "demo",
		Mode:     iconset.SVGMode,
		InfoSize: 32,
		Icons:    []iconset.SVGIcon{{Name: "star", Body: "<g/>"}},
	}
	set, skipped, err := Assemble(src, 24, identity)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	g, _ := set.Glyphs.Get("star")
	assert.Equal(t, "E000", g.Codepoint)
	assert.Contains(t, g.SVG, `viewBox="0 0 32 32"`)
}
