package resources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/npillmayer/texicons/core"
	"github.com/spf13/afero"
)

// AppKey is the name of the application folder in the user's cache directory.
const AppKey = "texicons"

// Download is a remote file together with its local destination.
type Download struct {
	URL  string
	Path string
}

// Fetcher downloads remote files into a file system.
type Fetcher struct {
	Client *http.Client // nil means http.DefaultClient
	Fs     afero.Fs
}

// Fetch downloads url to the file dst, creating parent folders as
// necessary. Transmission failures and non-2xx responses are
// core.ECONNECTION, failing to store the file is core.EIO.
func (f Fetcher) Fetch(ctx context.Context, url, dst string) error {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "malformed download url %s", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "download %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return core.WrapError(fmt.Errorf("status %s", resp.Status), core.ECONNECTION, "download %s", url)
	}
	if err = f.Fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return core.WrapError(err, core.EIO, "create folder for %s", dst)
	}
	out, err := f.Fs.Create(dst)
	if err != nil {
		return core.WrapError(err, core.EIO, "create file %s", dst)
	}
	_, err = io.Copy(out, resp.Body)
	cerr := out.Close()
	switch {
	case err != nil:
		err = core.WrapError(err, core.ECONNECTION, "download %s to %s", url, dst)
	case cerr != nil:
		err = core.WrapError(cerr, core.EIO, "store download %s", dst)
	}
	if err != nil {
		if rerr := f.Fs.Remove(dst); rerr != nil {
			tracer().Errorf("cannot remove partial download %s: %v", dst, rerr)
		}
		return err
	}
	tracer().Debugf("downloaded %s to %s", url, dst)
	return nil
}

// FetchAll downloads every file of dl in order. It stops at the first failure
// or when ctx is cancelled.
func (f Fetcher) FetchAll(ctx context.Context, dl []Download) error {
	for _, d := range dl {
		if err := ctx.Err(); err != nil {
			return core.WrapError(err, core.ECONNECTION, "fetching cancelled before %s", d.URL)
		}
		if err := f.Fetch(ctx, d.URL, d.Path); err != nil {
			return err
		}
	}
	tracer().Infof("fetched %d files", len(dl))
	return nil
}

// cachePath is the path of a folder in the user's cache directory, below the
// application key. It creates nothing.
func cachePath(subfolders ...string) (string, error) {
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{cachedir, AppKey}, subfolders...)...), nil
}
