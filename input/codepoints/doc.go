/*
Package codepoints reads the icon-set index.

The index is a JSON object mapping icon-set prefixes to descriptions of where
the font and its codepoint table live, both remotely (for fetching) and
locally below a source directory (for generating):

   {
     "demo": {
       "name": "Demo Icons", "version": "1.0",
       "font_url": "https://…/demo.ttf", "font_name": "demo.ttf",
       "codepoints_url": "https://…/demo.codepoints", "codepoints_name": "demo.codepoints",
       "regex": "(?m)^(\\S+) ([0-9a-f]+)$",
       "variants": { "bold": { "font_url": "…", "font_name": "demo-bold.ttf", … } }
     }
   }

Local files of set "demo" are expected in {source_dir}/demo/. An entry may
name a YAML glyph configuration with "glyphs_name" instead of a codepoint
table and pattern.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codepoints

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texicons.input'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.input")
}
