/*
Package iconify reads icon sets in Iconify JSON format.

An Iconify document carries a prefix, an info block, and an ordered object of
icons, each with an SVG body and optional dimensions. Documents are validated
against an embedded JSON schema before they are decoded, and the order of the
icons in the document is kept.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package iconify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texicons.input'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.input")
}
