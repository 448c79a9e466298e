/*
Package font inspects the font assets of icon sets.

Icon fonts are scalable fonts in SFNT containers (TrueType or OpenType). We
parse them to learn their family name and to check that every codepoint of a
glyph table is covered by a glyph of the font.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"strconv"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/spf13/afero"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'texicons.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("texicons.fonts")
}

// ScalableFont is a parsed font asset.
type ScalableFont struct {
	Fontname string     // full font name from the name table
	Family   string     // family name from the name table
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadScalableFont reads and parses the font asset at path. A read failure is
// core.EIO, an unparsable font is core.EINVALID.
func LoadScalableFont(fs afero.Fs, path string) (*ScalableFont, error) {
	bytez, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "read font asset %s", path)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font asset %s is not a scalable font", path)
	}
	f.Filepath = path
	tracer().Debugf("loaded font %q from %s", f.Fontname, path)
	return f, nil
}

// ParseOpenTypeFont parses SFNT data.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	f.Family, _ = f.SFNT.Name(nil, sfnt.NameIDFamily)
	return
}

// HasCodepoint is true if the font maps r to a glyph other than .notdef.
func (sf *ScalableFont) HasCodepoint(r rune) bool {
	var buf sfnt.Buffer
	return sf.hasCodepoint(&buf, r)
}

func (sf *ScalableFont) hasCodepoint(buf *sfnt.Buffer, r rune) bool {
	gid, err := sf.SFNT.GlyphIndex(buf, r)
	return err == nil && gid != 0
}

// Coverage returns the names of all glyphs of table whose codepoint is not
// covered by the font, in table order. Glyphs with unparsable codepoints count
// as not covered.
func (sf *ScalableFont) Coverage(table *iconset.Table) []string {
	var buf sfnt.Buffer
	var missing []string
	for _, g := range table.Glyphs() {
		cp, err := strconv.ParseUint(g.Codepoint, 16, 32)
		if err != nil || !sf.hasCodepoint(&buf, rune(cp)) {
			missing = append(missing, g.Name)
		}
	}
	if len(missing) > 0 {
		tracer().Infof("font %q lacks %d of %d glyphs", sf.Fontname, len(missing), table.Len())
	}
	return missing
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font which is always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	gofont.Filepath = "internal"
	return gofont
}
