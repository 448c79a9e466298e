/*
Package config holds the run configuration of texicons.

Configuration is layered: built-in defaults, then a TOML file (usually
texicons.toml), then environment variables with prefix TEXICONS_, which may
in turn be set by a dotenv file. Keys of the TOML file:

   index              icon-set index (JSON)
   source_dir         local files of index sets, one folder per prefix
   iconify_dir        Iconify JSON documents
   fonts_dir          fonts built from intermediate documents
   intermediate_dir   normalized SVG sets and codepoint files
   output_dir         generated packages
   allow_file         prefixes to include, one per line
   disallow_file      prefixes to exclude, one per line
   default_size       glyph size if neither glyph nor set give one
   docs               generate documentation files
   verify_fonts       check font assets for missing glyphs
   date               package date (YYYY-MM-DD); SOURCE_DATE_EPOCH if empty
   trace              trace level
   [publish]          endpoint, bucket, access_key, secret_key, use_ssl,
                      key_prefix, region

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'texicons.config'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.config")
}
