/*
Package synth renders merged icon sets into LaTeX packages.

A package for prefix "demo" consists of

   demo/texicons-demo.sty    style file with font families and glyph macros
   demo/texicons-demo.tex    optional documentation listing all glyph names
   demo/<font file>          copies of the font assets

Glyph macros are stored as control sequences \icon@{prefix}:{name}, which
switch to the glyph's font family and typeset the glyph's codepoint with
\symbol. Output follows glyph table order and uses the line ending
convention of the host platform. Synthesizing the same icon set with the same
options always yields byte-identical packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package synth

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texicons.synth'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.synth")
}
