package publish

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/config"
	"github.com/npillmayer/texicons/core/filter"
	"github.com/spf13/afero"
)

// Store is the part of the minio client a Publisher needs.
type Store interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Publisher uploads packages into a bucket.
type Publisher struct {
	store     Store
	bucket    string
	region    string
	keyPrefix string
	initOnce  sync.Once
	initErr   error
}

// New creates a publisher on top of an existing store.
func New(store Store, conf config.Publish) *Publisher {
	return &Publisher{
		store:     store,
		bucket:    strings.TrimSpace(conf.Bucket),
		region:    regionOf(conf),
		keyPrefix: strings.Trim(conf.KeyPrefix, "/"),
	}
}

func regionOf(conf config.Publish) string {
	if r := strings.TrimSpace(conf.Region); r != "" {
		return r
	}
	return "us-east-1"
}

// Connect creates a publisher with a minio client for conf. Incomplete
// settings are core.EINVALID.
func Connect(conf config.Publish) (*Publisher, error) {
	endpoint := strings.TrimSpace(conf.Endpoint)
	access := strings.TrimSpace(conf.AccessKey)
	secret := strings.TrimSpace(conf.SecretKey)
	switch {
	case endpoint == "":
		return nil, core.Error(core.EINVALID, "publish endpoint is required")
	case access == "" || secret == "":
		return nil, core.Error(core.EINVALID, "publish access key and secret key are required")
	case strings.TrimSpace(conf.Bucket) == "":
		return nil, core.Error(core.EINVALID, "publish bucket is required")
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: conf.UseSSL,
		Region: regionOf(conf),
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "init storage client for %s", endpoint)
	}
	return New(client, conf), nil
}

func (p *Publisher) ensureBucket(ctx context.Context) error {
	p.initOnce.Do(func() {
		exists, err := p.store.BucketExists(ctx, p.bucket)
		if err != nil {
			p.initErr = err
			return
		}
		if exists {
			return
		}
		tracer().Infof("creating bucket %s", p.bucket)
		p.initErr = p.store.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{Region: p.region})
	})
	return p.initErr
}

// Key is the object key of file of the package prefix.
func (p *Publisher) Key(prefix, file string) string {
	if p.keyPrefix == "" {
		return path.Join(prefix, file)
	}
	return path.Join(p.keyPrefix, prefix, file)
}

// ContentType guesses the content type of a package file from its extension.
func ContentType(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".sty", ".tex":
		return "text/x-tex"
	case ".ttf":
		return "font/ttf"
	case ".otf":
		return "font/otf"
	}
	return "application/octet-stream"
}

// PublishPackage uploads all files of the package folder dir (the folder of
// prefix) in name order and returns their keys. Any failure is fatal for the
// run: reading a file is core.EIO, storing it core.ECONNECTION.
func (p *Publisher) PublishPackage(ctx context.Context, fs afero.Fs, dir, prefix string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "list package folder %s", dir)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })
	if err = p.ensureBucket(ctx); err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "ensure bucket %s", p.bucket)
	}
	var keys []string
	for _, fi := range infos {
		if fi.IsDir() {
			continue
		}
		key := p.Key(prefix, fi.Name())
		if err = p.put(ctx, fs, filepath.Join(dir, fi.Name()), key, fi.Size()); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	tracer().Infof("published %s: %d files", prefix, len(keys))
	return keys, nil
}

func (p *Publisher) put(ctx context.Context, fs afero.Fs, file, key string, size int64) error {
	f, err := fs.Open(file)
	if err != nil {
		return core.WrapError(err, core.EIO, "open package file %s", file)
	}
	defer f.Close()
	_, err = p.store.PutObject(ctx, p.bucket, key, f, size, minio.PutObjectOptions{
		ContentType: ContentType(file),
	})
	if err != nil {
		return core.WrapError(err, core.ECONNECTION, "upload %s to %s/%s", file, p.bucket, key)
	}
	tracer().Debugf("uploaded %s", key)
	return nil
}

// PublishAll uploads every package folder below outDir whose prefix passes
// lists, in name order, and returns the prefixes published.
func (p *Publisher) PublishAll(ctx context.Context, fs afero.Fs, outDir string, lists filter.Lists) ([]string, error) {
	infos, err := afero.ReadDir(fs, outDir)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "list output folder %s", outDir)
	}
	var prefixes []string
	for _, fi := range infos {
		if !fi.IsDir() {
			continue
		}
		if !lists.Include(fi.Name()) {
			tracer().Debugf("package %s is excluded from publishing", fi.Name())
			continue
		}
		if _, err := p.PublishPackage(ctx, fs, filepath.Join(outDir, fi.Name()), fi.Name()); err != nil {
			return prefixes, err
		}
		prefixes = append(prefixes, fi.Name())
	}
	return prefixes, nil
}
