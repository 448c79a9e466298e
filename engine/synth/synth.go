package synth

import (
	"path/filepath"
	"time"

	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/iconset"
)

// PackageName is the LaTeX package name for an icon-set prefix.
func PackageName(prefix string) string {
	return "texicons-" + prefix
}

// Options control package synthesis.
type Options struct {
	Date       time.Time // package date; zero omits the date
	Docs       bool      // generate the documentation file
	Dependency string    // package required by the style file, empty for none
}

// DefaultOptions returns options with docs enabled and a fontspec dependency.
func DefaultOptions(date time.Time) Options {
	return Options{Date: date, Docs: true, Dependency: "fontspec"}
}

// FontCopy is a font asset to copy into a package.
type FontCopy struct {
	Source string // path of the asset
	Target string // file name inside the package directory
}

// Package is the synthesized, not yet written, package for one icon set.
type Package struct {
	Prefix string
	Style  string // content of the style file
	Docs   string // content of the documentation file, empty if disabled
	Fonts  []FontCopy
}

// StyleFile is the file name of the style file.
func (pkg *Package) StyleFile() string {
	return PackageName(pkg.Prefix) + ".sty"
}

// DocsFile is the file name of the documentation file.
func (pkg *Package) DocsFile() string {
	return PackageName(pkg.Prefix) + ".tex"
}

// Files lists the names of all files of pkg relative to its directory, in
// the order Write creates them.
func (pkg *Package) Files() []string {
	files := []string{pkg.StyleFile()}
	if pkg.Docs != "" {
		files = append(files, pkg.DocsFile())
	}
	for _, f := range pkg.Fonts {
		files = append(files, f.Target)
	}
	return files
}

type fontBindings struct {
	ControlSequence string
	File            string
}

type styleBindings struct {
	Package    string
	Date       string
	Info       string
	Version    string
	Dependency string
	Fonts      []fontBindings
	Mappings   []string
}

type mappingBindings struct {
	Prefix    string
	Name      string
	Font      string
	Codepoint string
}

type docsBindings struct {
	Package string
	Prefix  string
	Info    string
	Rows    []string
}

// Synthesize renders set into a package. It does not touch the file system.
// Every glyph must refer to one of the set's font bindings.
func Synthesize(set *iconset.IconSet, opts Options) (*Package, error) {
	if set.Prefix == "" {
		return nil, core.Error(core.EINVALID, "icon set without prefix")
	}
	if len(set.Fonts) == 0 {
		return nil, core.Error(core.EINVALID, "icon set %s has no font", set.Prefix)
	}
	pkg := &Package{Prefix: set.Prefix}
	style := styleBindings{
		Package:    PackageName(set.Prefix),
		Info:       set.Info(),
		Version:    TemplatesVersion,
		Dependency: opts.Dependency,
	}
	if !opts.Date.IsZero() {
		style.Date = opts.Date.UTC().Format("2006/01/02")
	}
	targets := make(map[string]string) // cleaned source -> target
	sources := make(map[string]string) // target -> cleaned source
	for _, b := range set.Fonts {
		src := filepath.Clean(b.Asset)
		file, ok := targets[src]
		if !ok {
			file = filepath.Base(src)
			if _, taken := sources[file]; taken {
				file = b.Family + "-" + file
			}
			if _, taken := sources[file]; taken {
				return nil, core.Error(core.EINVALID, "icon set %s: font assets clash at %s", set.Prefix, file)
			}
			targets[src], sources[file] = file, src
			pkg.Fonts = append(pkg.Fonts, FontCopy{Source: b.Asset, Target: file})
		}
		style.Fonts = append(style.Fonts, fontBindings{ControlSequence: b.ControlSequence(), File: file})
	}
	docs := docsBindings{Package: style.Package, Prefix: set.Prefix, Info: style.Info}
	for _, g := range set.Glyphs.Glyphs() {
		binding, ok := set.Binding(g.Family)
		if !ok {
			return nil, core.Error(core.EINTERNAL, "glyph %s:%s refers to unknown font family %q",
				set.Prefix, g.Name, g.Family)
		}
		m := mappingBindings{
			Prefix:    set.Prefix,
			Name:      g.Name,
			Font:      binding.ControlSequence(),
			Codepoint: g.Codepoint,
		}
		line, err := Render(MappingTemplate, m)
		if err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "render mapping %s:%s", set.Prefix, g.Name)
		}
		style.Mappings = append(style.Mappings, line)
		if opts.Docs {
			row, err := Render(DocsRowTemplate, m)
			if err != nil {
				return nil, core.WrapError(err, core.EINTERNAL, "render docs row %s:%s", set.Prefix, g.Name)
			}
			docs.Rows = append(docs.Rows, row)
		}
	}
	text, err := Render(StyleTemplate, style)
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "render style file for %s", set.Prefix)
	}
	pkg.Style = platformLines(text)
	if opts.Docs {
		text, err = Render(DocsTemplate, docs)
		if err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "render docs for %s", set.Prefix)
		}
		pkg.Docs = platformLines(text)
	}
	tracer().Debugf("synthesized package %s with %d glyphs", style.Package, len(style.Mappings))
	return pkg, nil
}
