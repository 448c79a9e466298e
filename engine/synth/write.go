package synth

import (
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/texicons/core"
	"github.com/spf13/afero"
)

// Dir is the directory of the package for prefix below outDir.
func Dir(outDir, prefix string) string {
	return filepath.Join(outDir, prefix)
}

// Write stores pkg below outDir, creating directories as necessary and
// overwriting existing files. It returns the paths written. Every failure is
// an asset I/O error (core.EIO) naming operation and path.
func Write(fs afero.Fs, outDir string, pkg *Package) ([]string, error) {
	dir := Dir(outDir, pkg.Prefix)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, core.WrapError(err, core.EIO, "create package directory %s", dir)
	}
	var written []string
	write := func(name, content string) error {
		path := filepath.Join(dir, name)
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			return core.WrapError(err, core.EIO, "write package file %s", path)
		}
		written = append(written, path)
		return nil
	}
	if err := write(pkg.StyleFile(), pkg.Style); err != nil {
		return written, err
	}
	if pkg.Docs != "" {
		if err := write(pkg.DocsFile(), pkg.Docs); err != nil {
			return written, err
		}
	}
	for _, f := range pkg.Fonts {
		dst := filepath.Join(dir, f.Target)
		if err := copyFile(fs, f.Source, dst); err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	tracer().Infof("wrote package %s to %s", PackageName(pkg.Prefix), dir)
	return written, nil
}

func copyFile(fs afero.Fs, src, dst string) error {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return nil
	}
	in, err := fs.Open(src)
	if err != nil {
		return core.WrapError(err, core.EIO, "copy font asset %s -> %s: open source", src, dst)
	}
	defer in.Close()
	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return core.WrapError(err, core.EIO, "copy font asset %s -> %s: create target", src, dst)
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return core.WrapError(err, core.EIO, "copy font asset %s -> %s", src, dst)
	}
	if err = out.Close(); err != nil {
		return core.WrapError(err, core.EIO, "copy font asset %s -> %s: close target", src, dst)
	}
	return nil
}
