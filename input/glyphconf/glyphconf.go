/*
Package glyphconf reads YAML glyph configurations as shipped with fontello
and typicons fonts:

   glyphs:
     - css: arrow-back
       code: 0xe800

A code with prefix 0x is hexadecimal, a code of decimal digits only is decimal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphconf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/texicons/core/iconset"
	"gopkg.in/yaml.v2"
)

type config struct {
	Glyphs []struct {
		Name string `yaml:"css"`
		Code string `yaml:"code"`
	} `yaml:"glyphs"`
}

// Parse decodes a glyph configuration into (name, codepoint) entries in
// document order. Codepoints are upper-case hex. Names are left raw.
func Parse(data []byte) ([]iconset.Entry, error) {
	var conf config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	entries := make([]iconset.Entry, 0, len(conf.Glyphs))
	for i, g := range conf.Glyphs {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("glyph #%d has no css name", i+1)
		}
		code, err := ParseCode(g.Code)
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", g.Name, err)
		}
		entries = append(entries, iconset.Entry{Name: g.Name, Codepoint: code})
	}
	return entries, nil
}

// ParseCode converts a code of a glyph configuration to upper-case hex.
func ParseCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	base := 10
	digits := code
	if strings.HasPrefix(code, "0x") || strings.HasPrefix(code, "0X") {
		base, digits = 16, code[2:]
	}
	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return "", fmt.Errorf("invalid code %q", code)
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil || v > 0x10FFFF {
		return "", fmt.Errorf("invalid code %q", code)
	}
	return strings.ToUpper(strconv.FormatUint(v, 16)), nil
}
