/*
Package pipeline drives icon sets from their sources to LaTeX packages.

There are two flows. Index sets (codepoint tables or glyph configurations
plus a ready-made font) go directly from source to package:

   index.json → Source → IconSet (+ variants) → package

Iconify sets have no font yet. They are normalized into an intermediate
document first; an external tool builds a font from it, and a second run
turns the document plus font into a package:

   Iconify JSON → intermediate JSON + .codepoints
   intermediate JSON + {fonts_dir}/{prefix}.ttf → package

Failure policy: a malformed icon set is recorded in the run's report and
skipped before any of its output is written, and the run continues. Failing to
read, write or copy an asset aborts the run.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pipeline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texicons.pipeline'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.pipeline")
}
