package resources

import (
	"fmt"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/texicons/core"
	"github.com/spf13/afero"
)

// systemFont looks up an installed font by file name.
var systemFont = findfont.Find

// NotFound returns an application error for a missing font asset.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font asset %s not found", name)
}

// ResolveFontAsset finds the font file name. It tries each of dirs in order,
// then the fonts folder of the user's cache directory, then the fonts
// installed on the system. A missing font is core.EMISSING.
func ResolveFontAsset(fs afero.Fs, name string, dirs ...string) (string, error) {
	if name == "" {
		return "", core.Error(core.EINVALID, "empty font asset name")
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		p := filepath.Join(dir, filepath.Base(name))
		if ok, _ := afero.Exists(fs, p); ok {
			tracer().Debugf("font %s found in %s", name, dir)
			return p, nil
		}
	}
	if cachedir, err := cachePath("fonts"); err == nil {
		p := filepath.Join(cachedir, filepath.Base(name))
		if ok, _ := afero.Exists(fs, p); ok {
			tracer().Debugf("font %s found in cache", name)
			return p, nil
		}
	}
	if fpath, err := systemFont(filepath.Base(name)); err == nil && fpath != "" {
		tracer().Debugf("%s is a system font", name)
		return fpath, nil
	}
	tracer().Infof("font asset %s not found", name)
	return "", NotFound(name)
}
