/*
Package extract produces glyph tables from raw icon-set sources.

Table mode scans a codepoints text with a two-group regular expression
(name, hex codepoint). Codepoints are taken from the source as found, only
upper-cased. A name matched more than once keeps the codepoint of its last
match.

SVG mode wraps each glyph body in a minimal SVG document, normalizes it and
assigns private use area codepoints starting at U+E000. A glyph whose
normalization fails is skipped and reported; it does not consume a codepoint.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package extract

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texicons.extract'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.extract")
}
