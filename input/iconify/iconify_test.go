package iconify

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoDoc = `{
  "prefix": "demo",
  "info": { "name": "Demo Icons", "version": "1.2", "height": [16, 24] },
  "width": 20,
  "icons": {
    "zebra": { "body": "<path d=\"M0 0H20V20H0Z\"/>" },
    "apple": { "body": "<path d=\"M1 1H2V2H1Z\"/>", "width": 32, "height": 32 },
    "mango": { "body": "<circle r=\"4\"/>" }
  }
}`

func TestParseKeepsIconOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.input")
	defer teardown()
	//
	src, err := Parse([]byte(demoDoc))
	require.NoError(t, err)
	assert.Equal(t, "demo", src.Prefix)
	assert.Equal(t, "Demo Icons", src.Name)
	assert.Equal(t, "1.2", src.Version)
	assert.Equal(t, iconset.SVGMode, src.Mode)
	assert.Equal(t, 20.0, src.Width)
	assert.Equal(t, 0.0, src.Height)
	assert.Equal(t, 16.0, src.InfoSize, "first element of info.height")
	require.Len(t, src.Icons, 3)
	assert.Equal(t, "zebra", src.Icons[0].Name)
	assert.Equal(t, "apple", src.Icons[1].Name)
	assert.Equal(t, "mango", src.Icons[2].Name)
	assert.Equal(t, 32.0, src.Icons[1].Width)
}

func TestParseScalarInfoHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.input")
	defer teardown()
	//
	src, err := Parse([]byte(`{"prefix":"x","info":{"name":"X","height":18},"icons":{}}`))
	require.NoError(t, err)
	assert.Equal(t, 18.0, src.InfoSize)
	assert.Empty(t, src.Icons)
}

func TestParseRejectsMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.input")
	defer teardown()
	//
	for _, doc := range []string{
		`{"prefix":`,
		`{"info":{"name":"X"},"icons":{}}`,
		`{"prefix":"x","info":{},"icons":{}}`,
		`{"prefix":"x","info":{"name":"X"},"icons":{"a":{"width":3}}}`,
		`{"prefix":"x","info":{"name":"X"},"icons":{"a":{"body":"<g/>","width":"wide"}}}`,
		`{"prefix":"../x","info":{"name":"X"},"icons":{}}`,
	} {
		_, err := Parse([]byte(doc))
		require.Error(t, err, doc)
		assert.Equal(t, core.EINVALID, core.Code(err), doc)
	}
}

func TestLoadAndFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.input")
	defer teardown()
	//
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "json/demo.json", []byte(demoDoc), 0o644))
	require.NoError(t, afero.WriteFile(fs, "json/broken.json", []byte(`{`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "json/README.md", []byte(`# sets`), 0o644))
	files, err := Files(fs, "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"json/broken.json", "json/demo.json"}, files)
	src, err := Load(fs, "json/demo.json")
	require.NoError(t, err)
	assert.Equal(t, "demo", src.Prefix)
	_, err = Load(fs, "json/broken.json")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Load(fs, "json/missing.json")
	assert.Equal(t, core.EIO, core.Code(err))
}
