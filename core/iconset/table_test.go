package iconset

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableKeepsInsertionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.iconset")
	defer teardown()
	//
	table := NewTable()
	for i, name := range []string{"zeta", "alpha", "mu"} {
		table.Put(Glyph{Name: name, Codepoint: string(rune('A' + i))})
	}
	assert.Equal(t, []string{"zeta", "alpha", "mu"}, table.Names())
	table.Put(Glyph{Name: "zeta", Codepoint: "Z"})
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"zeta", "alpha", "mu"}, table.Names(), "replacing must keep position")
	g, ok := table.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, "Z", g.Codepoint)
}

func TestZeroTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.iconset")
	defer teardown()
	//
	var table Table
	assert.Equal(t, 0, table.Len())
	_, ok := table.Get("x")
	assert.False(t, ok)
	table.Put(Glyph{Name: "x", Codepoint: "E000"})
	assert.Equal(t, 1, table.Len())
}

func TestDocumentKeepsGlyphOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.iconset")
	defer teardown()
	//
	set := &IconSet{Prefix: "demo", Name: "Demo", FontID: "demo", Glyphs: NewTable()}
	for _, name := range []string{"star", "arrow", "home"} {
		set.Glyphs.Put(Glyph{Name: name, Codepoint: "E000", SVG: "<svg/>"})
	}
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, DocumentOf(set)))
	doc, err := ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, "demo", doc.Prefix)
	assert.Equal(t, []string{"star", "arrow", "home"}, doc.Icons.Names())
	back := doc.IconSet("fonts/demo.ttf")
	b, ok := back.Binding("")
	require.True(t, ok)
	assert.Equal(t, "demoFont", b.ControlSequence())
	assert.Equal(t, "fonts/demo.ttf", b.Asset)
}

func TestInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.iconset")
	defer teardown()
	//
	set := &IconSet{Name: "Material Icons"}
	assert.Equal(t, "Material Icons", set.Info())
	set.Version = "4.0.0"
	assert.Equal(t, "Material Icons v4.0.0", set.Info())
}

func TestValidCodepoint(t *testing.T) {
	for _, cp := range []string{"E001", "e001", "41", "10FFFF"} {
		assert.True(t, ValidCodepoint(cp), cp)
	}
	for _, cp := range []string{"", "XYZ", "110000", "-1", "0x41"} {
		assert.False(t, ValidCodepoint(cp), cp)
	}
}
