/*
Package resources locates and fetches the assets of icon sets.

Font assets are searched for beside the icon-set sources first, then in the
user's cache directory, finally among the fonts installed on the system.
Remote assets listed in the icon-set index are downloaded with Fetch.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'texicons.resources'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.resources")
}
