package naming

import (
	"strings"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGlyphName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.naming")
	defer teardown()
	//
	for raw, expected := range map[string]string{
		"home":          "home",
		"arrow_left":    "arrow-left",
		"ArrowLeft":     "arrow-left",
		"arrow left":    "arrow-left",
		"3d_rotation":   "3-d-rotation",
		"10k":           "10-k",
		"Café Noir":     "cafe-noir",
		"ab--cd":        "ab-cd",
		"-leading":      "leading",
		"trailing_":     "trailing",
		"file.pdf":      "file-pdf",
		"numeric-1-box": "numeric-1-box",
		"":              "",
		"---":           "",
	} {
		assert.Equal(t, expected, GlyphName(raw), "glyph name for %q", raw)
	}
}

func TestGlyphNameIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.naming")
	defer teardown()
	//
	for _, raw := range []string{
		"home", "ArrowLeft", "3d_rotation", "HTMLParser", "a1b2c3", "Ünïcödé Nàmé",
		"x--y__z", "Icon8Outline", "10K-plus", "mdiNumeric9PlusBoxMultiple",
	} {
		once := GlyphName(raw)
		twice := GlyphName(once)
		if once != twice {
			t.Errorf("GlyphName not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestReplaceDigits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.naming")
	defer teardown()
	//
	assert.Equal(t, "slatexicon", ReplaceDigits("0123456789"))
	assert.Equal(t, "fai-brands", ReplaceDigits("fa6-brands"))
	assert.Equal(t, "no digits", ReplaceDigits("no digits"))
	assert.Equal(t, "", ReplaceDigits(""))
}

func TestFamilyIdentifier(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.naming")
	defer teardown()
	//
	for raw, expected := range map[string]string{
		"demo":                      "demo",
		"demo-bold":                 "demoBold",
		"fa6-brands":                "faiBrands",
		"material-symbols-outlined": "materialSymbolsOutlined",
		"icon8-x":                   "iconoX",
		"":                          "",
	} {
		assert.Equal(t, expected, FamilyIdentifier(raw), "family identifier for %q", raw)
	}
}

func TestFamilyIdentifierHasNoDigits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "texicons.naming")
	defer teardown()
	//
	for _, raw := range []string{
		"fa6-brands", "2048", "icon8", "a1b2", "mdi-9-plus", "x-0", "1-2-3-4-5-6-7-8-9-0",
	} {
		id := FamilyIdentifier(raw)
		if strings.IndexFunc(id, unicode.IsDigit) >= 0 {
			t.Errorf("family identifier %q for %q contains digits", id, raw)
		}
		if id == "" {
			t.Errorf("family identifier for %q is empty", raw)
		}
	}
}
