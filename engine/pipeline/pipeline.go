package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/config"
	"github.com/npillmayer/texicons/core/extract"
	"github.com/npillmayer/texicons/core/filter"
	"github.com/npillmayer/texicons/core/font"
	"github.com/npillmayer/texicons/core/iconset"
	"github.com/npillmayer/texicons/core/locate/resources"
	"github.com/npillmayer/texicons/core/svgnorm"
	"github.com/npillmayer/texicons/engine/synth"
	"github.com/npillmayer/texicons/input/codepoints"
	"github.com/npillmayer/texicons/input/iconify"
	"github.com/spf13/afero"
)

// Pipeline processes icon sets with a fixed configuration. A pipeline is not
// safe for concurrent use; every run gets a fresh report.
type Pipeline struct {
	Fs         afero.Fs
	Config     *config.Config
	Lists      filter.Lists
	Normalizer svgnorm.Normalizer
	Options    synth.Options
	report     *Report
}

// New creates a pipeline working on fs. Package options are derived from
// conf; the package date is given by the caller.
func New(fs afero.Fs, conf *config.Config, lists filter.Lists, date time.Time) *Pipeline {
	opts := synth.DefaultOptions(date)
	opts.Docs = conf.Docs
	return &Pipeline{
		Fs:         fs,
		Config:     conf,
		Lists:      lists,
		Normalizer: svgnorm.NewMinifier(),
		Options:    opts,
		report:     &Report{},
	}
}

// Report is the report of the current or last run.
func (p *Pipeline) Report() *Report {
	return p.report
}

func (p *Pipeline) start() {
	p.report = &Report{}
}

// record adds the outcome of processing one set to the report. Fatal errors
// are passed on, errors disqualifying only the set are swallowed.
func (p *Pipeline) record(prefix string, err error) error {
	if err == nil {
		p.report.Processed = append(p.report.Processed, prefix)
		return nil
	}
	if core.IsFatal(err) {
		tracer().P("set", prefix).Errorf("aborting: %v", err)
		return err
	}
	tracer().P("set", prefix).Errorf("skipping set: %v", err)
	p.report.Failed = append(p.report.Failed, Failure{Prefix: prefix, Err: err})
	return nil
}

func (p *Pipeline) excluded(prefix string) bool {
	if p.Lists.Include(prefix) {
		return false
	}
	tracer().Debugf("set %s excluded by allow/disallow lists", prefix)
	p.report.Excluded = append(p.report.Excluded, prefix)
	return true
}

// --- Index sets ------------------------------------------------------------

// RunIndex generates packages for all sets of the icon-set index.
func (p *Pipeline) RunIndex(ctx context.Context) (*Report, error) {
	p.start()
	entries, err := codepoints.LoadIndex(p.Fs, p.Config.Index)
	if err != nil {
		return p.report, err
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return p.report, err
		}
		if p.excluded(e.Prefix) {
			continue
		}
		if err := p.record(e.Prefix, p.ProcessCodepointSet(ctx, e)); err != nil {
			return p.report, err
		}
	}
	tracer().Infof("index run: %s", p.report.Summary())
	return p.report, nil
}

// ProcessCodepointSet generates the package of one index set. Nothing is
// written unless the set's input and font assets are complete.
func (p *Pipeline) ProcessCodepointSet(ctx context.Context, e codepoints.Entry) error {
	src, err := e.Source(p.Fs, p.Config.SourceDir)
	if err != nil {
		return err
	}
	if src.FontAsset, err = p.resolve(src.FontAsset); err != nil {
		return err
	}
	for i := range src.Variants {
		if src.Variants[i].FontAsset, err = p.resolve(src.Variants[i].FontAsset); err != nil {
			return err
		}
	}
	set, _, err := Assemble(src, p.Config.DefaultSize, p.Normalizer)
	if err != nil {
		return err
	}
	if err = p.verify(set); err != nil {
		return err
	}
	return p.emit(set)
}

func (p *Pipeline) resolve(asset string) (string, error) {
	return resources.ResolveFontAsset(p.Fs, filepath.Base(asset), filepath.Dir(asset), p.Config.FontsDir)
}

// verify checks the font coverage of set, if configured. Gaps are warnings.
func (p *Pipeline) verify(set *iconset.IconSet) error {
	if !p.Config.VerifyFonts {
		return nil
	}
	for _, b := range set.Fonts {
		f, err := font.LoadScalableFont(p.Fs, b.Asset)
		if err != nil {
			if core.Code(err) == core.EINVALID {
				p.report.warn(set.Prefix, "", "font %s cannot be inspected: %v", b.Asset, err)
				continue
			}
			return err
		}
		glyphs := iconset.NewTable()
		for _, g := range set.Glyphs.Glyphs() {
			if bb, _ := set.Binding(g.Family); bb.Family == b.Family {
				glyphs.Put(g)
			}
		}
		for _, name := range f.Coverage(glyphs) {
			g, _ := glyphs.Get(name)
			p.report.warn(set.Prefix, name, "codepoint %s missing in font %s", g.Codepoint, filepath.Base(b.Asset))
		}
	}
	return nil
}

func (p *Pipeline) emit(set *iconset.IconSet) error {
	pkg, err := synth.Synthesize(set, p.Options)
	if err != nil {
		return err
	}
	written, err := synth.Write(p.Fs, p.Config.OutputDir, pkg)
	p.report.Files = append(p.report.Files, written...)
	return err
}

// --- Iconify sets ----------------------------------------------------------

// RunIconifyDir normalizes all Iconify documents of the configured folder into
// intermediate documents.
func (p *Pipeline) RunIconifyDir(ctx context.Context) (*Report, error) {
	p.start()
	files, err := iconify.Files(p.Fs, p.Config.IconifyDir)
	if err != nil {
		return p.report, err
	}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return p.report, err
		}
		prefix, err := p.ProcessIconify(ctx, path)
		if prefix == "" {
			prefix = baseName(path)
		}
		if errors.Is(err, errExcluded) {
			continue
		}
		if err := p.record(prefix, err); err != nil {
			return p.report, err
		}
	}
	tracer().Infof("iconify run: %s", p.report.Summary())
	return p.report, nil
}

// errExcluded marks a set rejected by the allow/disallow lists.
var errExcluded = errors.New("excluded")

// ProcessIconify normalizes one Iconify document and writes the intermediate
// document {intermediate_dir}/{prefix}.json and the codepoint file
// {intermediate_dir}/{prefix}.codepoints. It returns the set's prefix.
func (p *Pipeline) ProcessIconify(ctx context.Context, path string) (string, error) {
	src, err := iconify.Load(p.Fs, path)
	if err != nil {
		return "", err
	}
	if p.excluded(src.Prefix) {
		return src.Prefix, errExcluded
	}
	set, skipped, err := Assemble(src, p.Config.DefaultSize, p.Normalizer)
	if err != nil {
		return src.Prefix, err
	}
	for _, s := range skipped {
		p.report.warn(set.Prefix, s.Name, "skipped: %v", s.Err)
	}
	dir := p.Config.IntermediateDir
	if err = p.Fs.MkdirAll(dir, 0o755); err != nil {
		return src.Prefix, core.WrapError(err, core.EIO, "create folder %s", dir)
	}
	docPath := filepath.Join(dir, set.Prefix+".json")
	f, err := p.Fs.Create(docPath)
	if err != nil {
		return src.Prefix, core.WrapError(err, core.EIO, "write intermediate document %s", docPath)
	}
	err = iconset.WriteDocument(f, iconset.DocumentOf(set))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return src.Prefix, core.WrapError(err, core.EIO, "write intermediate document %s", docPath)
	}
	cpPath := filepath.Join(dir, set.Prefix+".codepoints")
	if err = afero.WriteFile(p.Fs, cpPath, []byte(extract.FormatCodepoints(set.Glyphs)), 0o644); err != nil {
		return src.Prefix, core.WrapError(err, core.EIO, "write codepoints %s", cpPath)
	}
	p.report.Files = append(p.report.Files, docPath, cpPath)
	tracer().Infof("normalized %s: %d glyphs, %d skipped", set.Prefix, set.Glyphs.Len(), len(skipped))
	return set.Prefix, nil
}

// --- Intermediate sets -----------------------------------------------------

// RunIntermediateDir generates packages for all intermediate documents.
func (p *Pipeline) RunIntermediateDir(ctx context.Context) (*Report, error) {
	p.start()
	infos, err := afero.ReadDir(p.Fs, p.Config.IntermediateDir)
	if err != nil {
		return p.report, core.WrapError(err, core.EIO, "list directory %s", p.Config.IntermediateDir)
	}
	var files []string
	for _, fi := range infos {
		if !fi.IsDir() && strings.EqualFold(filepath.Ext(fi.Name()), ".json") {
			files = append(files, filepath.Join(p.Config.IntermediateDir, fi.Name()))
		}
	}
	sort.Strings(files)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return p.report, err
		}
		prefix, err := p.ProcessIntermediate(ctx, path)
		if prefix == "" {
			prefix = baseName(path)
		}
		if errors.Is(err, errExcluded) {
			continue
		}
		if err := p.record(prefix, err); err != nil {
			return p.report, err
		}
	}
	tracer().Infof("intermediate run: %s", p.report.Summary())
	return p.report, nil
}

// ProcessIntermediate generates the package for one intermediate document.
// The font is expected as {fonts_dir}/{prefix}.ttf. It returns the set's
// prefix.
func (p *Pipeline) ProcessIntermediate(ctx context.Context, path string) (string, error) {
	f, err := p.Fs.Open(path)
	if err != nil {
		return "", core.WrapError(err, core.EIO, "open intermediate document %s", path)
	}
	doc, err := iconset.ReadDocument(f)
	f.Close()
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "intermediate document %s is malformed", path)
	}
	if doc.Prefix == "" || doc.FontID == "" {
		return "", core.Error(core.EINVALID, "intermediate document %s lacks prefix or font id", path)
	}
	if p.excluded(doc.Prefix) {
		return doc.Prefix, errExcluded
	}
	if doc.Icons != nil {
		for _, g := range doc.Icons.Glyphs() {
			if !iconset.ValidCodepoint(g.Codepoint) {
				return doc.Prefix, core.Error(core.EINVALID,
					"intermediate document %s: glyph %s has invalid codepoint %q", path, g.Name, g.Codepoint)
			}
		}
	}
	asset, err := resources.ResolveFontAsset(p.Fs, doc.Prefix+".ttf", p.Config.FontsDir)
	if err != nil {
		return doc.Prefix, err
	}
	set := doc.IconSet(asset)
	if err = p.verify(set); err != nil {
		return doc.Prefix, err
	}
	return doc.Prefix, p.emit(set)
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
