package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadScalableFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.fonts")
	defer teardown()
	//
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "fonts/go.ttf", goregular.TTF, 0o644))
	f, err := LoadScalableFont(fs, "fonts/go.ttf")
	require.NoError(t, err)
	assert.Contains(t, f.Family, "Go")
	assert.Equal(t, "fonts/go.ttf", f.Filepath)
	assert.True(t, f.HasCodepoint('A'))
	assert.False(t, f.HasCodepoint(0xF0000))
}

func TestLoadScalableFontErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.fonts")
	defer teardown()
	//
	fs := afero.NewMemMapFs()
	_, err := LoadScalableFont(fs, "missing.ttf")
	assert.Equal(t, core.EIO, core.Code(err))
	require.NoError(t, afero.WriteFile(fs, "junk.ttf", []byte("no font"), 0o644))
	_, err = LoadScalableFont(fs, "junk.ttf")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.fonts")
	defer teardown()
	//
	table := iconset.NewTable()
	table.Put(iconset.Glyph{Name: "letter-a", Codepoint: "41"})
	table.Put(iconset.Glyph{Name: "private", Codepoint: "F0000"})
	table.Put(iconset.Glyph{Name: "letter-b", Codepoint: "42"})
	table.Put(iconset.Glyph{Name: "garbage", Codepoint: "XYZ"})
	missing := FallbackFont().Coverage(table)
	assert.Equal(t, []string{"private", "garbage"}, missing)
}
