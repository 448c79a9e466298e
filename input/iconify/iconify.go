package iconify

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

//go:embed schema.json
var schemaText string

var schema = jsonschema.MustCompileString("iconify.schema.json", schemaText)

type document struct {
	Prefix string          `json:"prefix"`
	Info   info            `json:"info"`
	Icons  json.RawMessage `json:"icons"`
	Width  float64         `json:"width"`
	Height float64         `json:"height"`
}

type info struct {
	Name    string          `json:"name"`
	Version string          `json:"version"`
	Height  json.RawMessage `json:"height"`
}

type icon struct {
	Body   string  `json:"body"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Parse validates and decodes an Iconify document into an SVG-mode source.
// Any violation is reported as core.EINVALID.
func Parse(data []byte) (iconset.Source, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return iconset.Source{}, core.WrapError(err, core.EINVALID, "iconify document is not valid JSON")
	}
	if err := schema.Validate(payload); err != nil {
		return iconset.Source{}, core.WrapError(err, core.EINVALID, "iconify document does not match schema")
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return iconset.Source{}, core.WrapError(err, core.EINVALID, "decode iconify document")
	}
	src := iconset.Source{
		Prefix:  doc.Prefix,
		Name:    doc.Info.Name,
		Version: doc.Info.Version,
		Width:   doc.Width,
		Height:  doc.Height,
		Mode:    iconset.SVGMode,
	}
	var err error
	if src.InfoSize, err = infoHeight(doc.Info.Height); err != nil {
		return iconset.Source{}, core.WrapError(err, core.EINVALID, "iconify set %s: info.height", doc.Prefix)
	}
	err = iconset.DecodeOrderedObject(doc.Icons, func(name string, raw json.RawMessage) error {
		var ic icon
		if err := json.Unmarshal(raw, &ic); err != nil {
			return fmt.Errorf("icon %s: %w", name, err)
		}
		src.Icons = append(src.Icons, iconset.SVGIcon{
			Name:   name,
			Body:   ic.Body,
			Width:  ic.Width,
			Height: ic.Height,
		})
		return nil
	})
	if err != nil {
		return iconset.Source{}, core.WrapError(err, core.EINVALID, "iconify set %s: icons", doc.Prefix)
	}
	tracer().Debugf("iconify set %s has %d icons", src.Prefix, len(src.Icons))
	return src, nil
}

// infoHeight accepts a number or a list of numbers, of which the first counts.
func infoHeight(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	if raw[0] == '[' {
		var heights []float64
		if err := json.Unmarshal(raw, &heights); err != nil {
			return 0, err
		}
		if len(heights) == 0 {
			return 0, nil
		}
		return heights[0], nil
	}
	var h float64
	err := json.Unmarshal(raw, &h)
	return h, err
}

// Load reads and parses the Iconify document at path. Failing to read the
// file is an I/O error, a malformed document is core.EINVALID.
func Load(fs afero.Fs, path string) (iconset.Source, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return iconset.Source{}, core.WrapError(err, core.EIO, "read iconify document %s", path)
	}
	src, err := Parse(data)
	if err != nil {
		return iconset.Source{}, core.WrapError(err, core.Code(err), "iconify document %s", path)
	}
	return src, nil
}

// Files lists the JSON documents in dir, sorted by name.
func Files(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "list directory %s", dir)
	}
	var files []string
	for _, fi := range infos {
		if fi.IsDir() || !strings.EqualFold(filepath.Ext(fi.Name()), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, fi.Name()))
	}
	sort.Strings(files)
	return files, nil
}
