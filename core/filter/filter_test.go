package filter

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInclude(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.filter")
	defer teardown()
	//
	assert.True(t, Include("foo", nil, nil))
	assert.True(t, Include("foo", []string{}, []string{}))
	assert.False(t, Include("foo", []string{"bar"}, nil))
	assert.True(t, Include("foo", []string{"bar", "foo"}, nil))
	assert.False(t, Include("foo", nil, []string{"foo"}))
	assert.True(t, Include("foo", nil, []string{"bar"}))
	assert.False(t, Include("foo", []string{"foo"}, []string{"foo"}), "disallow wins")
}

func TestLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.filter")
	defer teardown()
	//
	l := Lists{Allow: []string{"mdi", "ri"}, Disallow: []string{"ri"}}
	assert.True(t, l.Include("mdi"))
	assert.False(t, l.Include("ri"))
	assert.False(t, l.Include("bi"))
	assert.True(t, Lists{}.Include("anything"))
}

func TestReadList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.filter")
	defer teardown()
	//
	list, err := ReadList(strings.NewReader("devicon-plain\r\n\n  emblemicons \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"devicon-plain", "emblemicons"}, list)
	list, err = ReadList(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}
