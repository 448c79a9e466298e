package variant

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/extract"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pattern = `(?m)^(\S+) ([0-9a-fA-F]+)$`

func baseSet(t *testing.T) *iconset.IconSet {
	table, err := extract.Table("home E88A\nstar E838", pattern)
	require.NoError(t, err)
	return &iconset.IconSet{
		Prefix: "demo",
		FontID: "demo",
		Glyphs: table,
		Fonts:  []iconset.FontBinding{{Family: "demo", Asset: "demo.ttf"}},
	}
}

func TestMergeKeepsBaseAndVariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.variant")
	defer teardown()
	//
	set := baseSet(t)
	err := Merge(set, []iconset.VariantSource{
		{Key: "bold", Codepoints: "home F88A", FontAsset: "demo-bold.ttf"},
	}, pattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "star", "home-bold"}, set.Glyphs.Names())
	home, _ := set.Glyphs.Get("home")
	bold, _ := set.Glyphs.Get("home-bold")
	assert.Equal(t, "E88A", home.Codepoint)
	assert.Equal(t, "", home.Family)
	assert.Equal(t, "F88A", bold.Codepoint)
	assert.Equal(t, "demoBold", bold.Family)
	require.Len(t, set.Fonts, 2)
	assert.Equal(t, iconset.FontBinding{Family: "demoBold", Asset: "demo-bold.ttf"}, set.Fonts[1])
	b, ok := set.Binding(bold.Family)
	require.True(t, ok)
	assert.Equal(t, "demoBoldFont", b.ControlSequence())
}

func TestMergeSeveralVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.variant")
	defer teardown()
	//
	set := baseSet(t)
	err := Merge(set, []iconset.VariantSource{
		{Key: "outlined", Codepoints: "home A001", Pattern: `(\S+) (\S+)`, FontAsset: "o.ttf"},
		{Key: "round", Codepoints: "home B001\nstar B002", FontAsset: "r.ttf"},
	}, pattern)
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "star", "home-outlined", "home-round", "star-round"},
		set.Glyphs.Names())
	assert.Equal(t, []string{"demo", "demoOutlined", "demoRound"},
		[]string{set.Fonts[0].Family, set.Fonts[1].Family, set.Fonts[2].Family})
}

func TestMergeDigitsInKeyAndPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.variant")
	defer teardown()
	//
	assert.Equal(t, "faiBrandsTwo", Family("fa6-brands", "two"))
	assert.Equal(t, "faiSolidX", Family("fa6", "solid-x"))
	assert.Equal(t, "home-2-x", GlyphName("home", "2x"))
}

func TestMergeCollisionLastVariantWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.variant")
	defer teardown()
	//
	set := baseSet(t)
	err := Merge(set, []iconset.VariantSource{
		{Key: "bold", Codepoints: "home 0001"},
		{Key: "bold", Codepoints: "home 0002"},
	}, pattern)
	require.NoError(t, err)
	g, _ := set.Glyphs.Get("home-bold")
	assert.Equal(t, "0002", g.Codepoint)
}

func TestMergeRejectsMalformedVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.variant")
	defer teardown()
	//
	err := Merge(baseSet(t), []iconset.VariantSource{{Key: "", Codepoints: "x 1"}}, pattern)
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = Merge(baseSet(t), []iconset.VariantSource{{Key: "bold", Codepoints: "x 1", Pattern: "(x)"}}, pattern)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
