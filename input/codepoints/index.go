package codepoints

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/locate/resources"
	"github.com/npillmayer/texicons/input/glyphconf"
	"github.com/spf13/afero"
)

// Entry is the index record of one icon set.
type Entry struct {
	Prefix         string             `json:"-"`
	Name           string             `json:"name"`
	Version        string             `json:"version"`
	FontURL        string             `json:"font_url"`
	FontName       string             `json:"font_name"`
	CodepointsURL  string             `json:"codepoints_url"`
	CodepointsName string             `json:"codepoints_name"`
	Regex          string             `json:"regex"`
	GlyphsName     string             `json:"glyphs_name,omitempty"`
	Variants       map[string]Variant `json:"variants,omitempty"`
}

// Variant is the index record of a secondary font of an icon set. An empty
// Regex inherits the pattern of the parent entry.
type Variant struct {
	FontURL        string `json:"font_url"`
	FontName       string `json:"font_name"`
	CodepointsURL  string `json:"codepoints_url"`
	CodepointsName string `json:"codepoints_name"`
	Regex          string `json:"regex,omitempty"`
}

// ParseIndex decodes an index document. Entries are returned sorted by prefix.
func ParseIndex(data []byte) ([]Entry, error) {
	var index map[string]Entry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "icon-set index is malformed")
	}
	entries := make([]Entry, 0, len(index))
	for prefix, e := range index {
		e.Prefix = prefix
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Prefix < entries[j].Prefix })
	return entries, nil
}

// LoadIndex reads and decodes the index file at path.
func LoadIndex(fs afero.Fs, path string) ([]Entry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "read icon-set index %s", path)
	}
	return ParseIndex(data)
}

// VariantKeys returns the variant keys of e in sorted order.
func (e Entry) VariantKeys() []string {
	keys := make([]string, 0, len(e.Variants))
	for k := range e.Variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that e describes a usable set.
func (e Entry) Validate() error {
	switch {
	case e.Prefix == "" || strings.ContainsAny(e.Prefix, `/\`) || e.Prefix == "." || e.Prefix == "..":
		return core.Error(core.EINVALID, "index entry with unusable prefix %q", e.Prefix)
	case e.Name == "":
		return core.Error(core.EINVALID, "index entry %s has no name", e.Prefix)
	case e.FontName == "":
		return core.Error(core.EINVALID, "index entry %s has no font_name", e.Prefix)
	case e.GlyphsName == "" && (e.CodepointsName == "" || e.Regex == ""):
		return core.Error(core.EINVALID, "index entry %s needs codepoints_name and regex, or glyphs_name", e.Prefix)
	}
	for _, key := range e.VariantKeys() {
		v := e.Variants[key]
		if v.FontName == "" || v.CodepointsName == "" {
			return core.Error(core.EINVALID, "variant %s of index entry %s needs font_name and codepoints_name",
				key, e.Prefix)
		}
		if v.Regex == "" && e.Regex == "" {
			return core.Error(core.EINVALID, "variant %s of index entry %s has no pattern to inherit", key, e.Prefix)
		}
	}
	return nil
}

// Dir is the local directory of the set's files below sourceDir.
func (e Entry) Dir(sourceDir string) string {
	return filepath.Join(sourceDir, e.Prefix)
}

// Source reads the set's local codepoint table (or glyph configuration) and
// the tables of its variants below sourceDir. Font assets are named by their
// expected local path; resolving them is left to the caller.
//
// A missing file is core.EMISSING, a malformed entry core.EINVALID; both only
// disqualify this set. Other read failures are core.EIO.
func (e Entry) Source(fs afero.Fs, sourceDir string) (iconset.Source, error) {
	if err := e.Validate(); err != nil {
		return iconset.Source{}, err
	}
	dir := e.Dir(sourceDir)
	src := iconset.Source{
		Prefix:    e.Prefix,
		Name:      e.Name,
		Version:   e.Version,
		FontAsset: filepath.Join(dir, e.FontName),
	}
	if e.GlyphsName != "" {
		path := filepath.Join(dir, e.GlyphsName)
		data, err := readInput(fs, path)
		if err != nil {
			return iconset.Source{}, err
		}
		if src.Entries, err = glyphconf.Parse(data); err != nil {
			return iconset.Source{}, core.WrapError(err, core.EINVALID, "glyph configuration %s", path)
		}
		src.Mode = iconset.GlyphConfig
	} else {
		data, err := readInput(fs, filepath.Join(dir, e.CodepointsName))
		if err != nil {
			return iconset.Source{}, err
		}
		src.Mode = iconset.TableMode
		src.Codepoints = string(data)
		src.Pattern = e.Regex
	}
	for _, key := range e.VariantKeys() {
		v := e.Variants[key]
		data, err := readInput(fs, filepath.Join(dir, v.CodepointsName))
		if err != nil {
			return iconset.Source{}, err
		}
		src.Variants = append(src.Variants, iconset.VariantSource{
			Key:        key,
			Codepoints: string(data),
			Pattern:    v.Regex,
			FontAsset:  filepath.Join(dir, v.FontName),
		})
	}
	tracer().Debugf("index entry %s: mode %d, %d variants", e.Prefix, src.Mode, len(src.Variants))
	return src, nil
}

// Downloads lists the remote files of e and its variants together with their
// local destinations below sourceDir.
func (e Entry) Downloads(sourceDir string) []resources.Download {
	dir := e.Dir(sourceDir)
	var dl []resources.Download
	add := func(url, name string) {
		if url != "" && name != "" {
			dl = append(dl, resources.Download{URL: url, Path: filepath.Join(dir, name)})
		}
	}
	add(e.FontURL, e.FontName)
	add(e.CodepointsURL, e.CodepointsName)
	for _, key := range e.VariantKeys() {
		v := e.Variants[key]
		add(v.FontURL, v.FontName)
		add(v.CodepointsURL, v.CodepointsName)
	}
	return dl
}

func readInput(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, core.WrapError(err, core.EMISSING, "input file %s not found", path)
	} else if err != nil {
		return nil, core.WrapError(err, core.EIO, "read input file %s", path)
	}
	return data, nil
}
