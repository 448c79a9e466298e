package codepoints

import (
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/locate/resources"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const index = `{
  "zeta": {
    "name": "Zeta", "version": "2",
    "font_url": "https://example.org/zeta.ttf", "font_name": "zeta.ttf",
    "glyphs_name": "config.yml"
  },
  "demo": {
    "name": "Demo Icons", "version": "1.0",
    "font_url": "https://example.org/demo.ttf", "font_name": "demo.ttf",
    "codepoints_url": "https://example.org/demo.codepoints", "codepoints_name": "demo.codepoints",
    "regex": "(?m)^(\\S+) ([0-9a-f]+)$",
    "variants": {
      "outline": { "font_name": "demo-outline.ttf", "codepoints_name": "outline.codepoints",
                   "regex": "(\\S+)=([0-9a-f]+)" },
      "bold": { "font_url": "https://example.org/demo-bold.ttf", "font_name": "demo-bold.ttf",
                "codepoints_url": "https://example.org/bold.codepoints", "codepoints_name": "bold.codepoints" }
    }
  }
}`

func TestParseIndexSortsByPrefix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.input")
	defer teardown()
	//
	entries, err := ParseIndex([]byte(index))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "demo", entries[0].Prefix)
	assert.Equal(t, "zeta", entries[1].Prefix)
	assert.Equal(t, []string{"bold", "outline"}, entries[0].VariantKeys())
	_, err = ParseIndex([]byte(`{"demo": 42}`))
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestEntrySource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.input")
	defer teardown()
	//
	fs := afero.NewMemMapFs()
	write := func(path, content string) {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	write("icon-sets/demo/demo.codepoints", "star e001\nhome e002\n")
	write("icon-sets/demo/bold.codepoints", "home e002\n")
	write("icon-sets/demo/outline.codepoints", "home=e003\n")
	write("icon-sets/zeta/config.yml", "glyphs:\n  - css: bolt\n    code: 0xe900\n")
	entries, err := ParseIndex([]byte(index))
	require.NoError(t, err)

	demo, err := entries[0].Source(fs, "icon-sets")
	require.NoError(t, err)
	assert.Equal(t, iconset.TableMode, demo.Mode)
	assert.Equal(t, "star e001\nhome e002\n", demo.Codepoints)
	assert.Equal(t, filepath.Join("icon-sets", "demo", "demo.ttf"), demo.FontAsset)
	require.Len(t, demo.Variants, 2)
	assert.Equal(t, "bold", demo.Variants[0].Key)
	assert.Equal(t, "", demo.Variants[0].Pattern, "inherits the parent pattern")
	assert.Equal(t, `(\S+)=([0-9a-f]+)`, demo.Variants[1].Pattern)

	zeta, err := entries[1].Source(fs, "icon-sets")
	require.NoError(t, err)
	assert.Equal(t, iconset.GlyphConfig, zeta.Mode)
	assert.Equal(t, []iconset.Entry{{Name: "bolt", Codepoint: "E900"}}, zeta.Entries)
}

func TestEntrySourceMissingFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.input")
	defer teardown()
	//
	entries, err := ParseIndex([]byte(index))
	require.NoError(t, err)
	_, err = entries[0].Source(afero.NewMemMapFs(), "icon-sets")
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.False(t, core.IsFatal(err))
}

func TestValidate(t *testing.T) {
	ok := Entry{Prefix: "demo", Name: "Demo", FontName: "demo.ttf", CodepointsName: "c", Regex: "(a)(b)"}
	assert.NoError(t, ok.Validate())
	for _, e := range []Entry{
		{Prefix: "../x", Name: "X", FontName: "x.ttf", GlyphsName: "g.yml"},
		{Prefix: "x", FontName: "x.ttf", GlyphsName: "g.yml"},
		{Prefix: "x", Name: "X", GlyphsName: "g.yml"},
		{Prefix: "x", Name: "X", FontName: "x.ttf", CodepointsName: "c"},
		{Prefix: "x", Name: "X", FontName: "x.ttf", GlyphsName: "g.yml",
			Variants: map[string]Variant{"bold": {FontName: "b.ttf", CodepointsName: "b"}}},
	} {
		err := e.Validate()
		require.Error(t, err, e.Prefix)
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
}

func TestDownloads(t *testing.T) {
	entries, err := ParseIndex([]byte(index))
	require.NoError(t, err)
	dl := entries[0].Downloads("icon-sets")
	assert.Equal(t, []resources.Download{
		{URL: "https://example.org/demo.ttf", Path: filepath.Join("icon-sets", "demo", "demo.ttf")},
		{URL: "https://example.org/demo.codepoints", Path: filepath.Join("icon-sets", "demo", "demo.codepoints")},
		{URL: "https://example.org/demo-bold.ttf", Path: filepath.Join("icon-sets", "demo", "demo-bold.ttf")},
		{URL: "https://example.org/bold.codepoints", Path: filepath.Join("icon-sets", "demo", "bold.codepoints")},
	}, dl, "variants without urls are not fetched")
}
