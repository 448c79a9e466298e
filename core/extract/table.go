package extract

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/naming"
)

// Icon sets of one source family tend to share their pattern, so compiled
// patterns are kept around.
var patterns = mustPatternCache(64)

func mustPatternCache(size int) *lru.Cache[string, *regexp.Regexp] {
	c, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		panic(err) // only for size <= 0
	}
	return c
}

// Compile compiles an extraction pattern and checks that it has exactly two
// capture groups. Invalid patterns are malformed input (core.EINVALID).
func Compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid extraction pattern %q", pattern)
	}
	if re.NumSubexp() != 2 {
		return nil, core.Error(core.EINVALID,
			"extraction pattern %q must have exactly 2 groups (name, codepoint), has %d",
			pattern, re.NumSubexp())
	}
	patterns.Add(pattern, re)
	return re, nil
}

// Table extracts (name, codepoint) pairs from a codepoints text.
func Table(text, pattern string) (*iconset.Table, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return TableWithRegexp(text, re), nil
}

// TableWithRegexp extracts glyphs from text with a pre-compiled pattern,
// which must have two capture groups. Glyphs appear in first-match order;
// later matches of a name overwrite the codepoint of earlier ones.
func TableWithRegexp(text string, re *regexp.Regexp) *iconset.Table {
	table := iconset.NewTable()
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if len(m) < 3 {
			continue
		}
		put(table, m[1], m[2])
	}
	tracer().Debugf("extracted %d glyphs from codepoints table", table.Len())
	return table
}

// Codepoints turns already separated (name, codepoint) pairs into a glyph
// table, normalizing them the same way as table mode does.
func Codepoints(entries []iconset.Entry) *iconset.Table {
	table := iconset.NewTable()
	for _, e := range entries {
		put(table, e.Name, e.Codepoint)
	}
	return table
}

func put(table *iconset.Table, rawName, codepoint string) {
	name := naming.GlyphName(rawName)
	if name == "" {
		tracer().Infof("dropping glyph %q: name is empty after normalization", rawName)
		return
	}
	code := strings.ToUpper(strings.TrimSpace(codepoint))
	if old, ok := table.Get(name); ok && old.Codepoint != code {
		tracer().Debugf("glyph %s redefined: %s -> %s", name, old.Codepoint, code)
	}
	table.Put(iconset.Glyph{Name: name, Codepoint: code})
}

// FormatCodepoints renders a table as "name hex" lines, with lower-case hex,
// the format consumed by SVG font builders.
func FormatCodepoints(table *iconset.Table) string {
	var b strings.Builder
	for _, g := range table.Glyphs() {
		b.WriteString(g.Name)
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(g.Codepoint))
		b.WriteByte('\n')
	}
	return b.String()
}
