package config

import (
	"bytes"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/npillmayer/texicons/core"
	"github.com/npillmayer/texicons/core/filter"
	"github.com/spf13/afero"
)

// DefaultFile is the name of the configuration file looked for if none is given.
const DefaultFile = "texicons.toml"

// EnvPrefix prefixes every environment variable of the configuration.
const EnvPrefix = "TEXICONS_"

// Config is the run configuration.
type Config struct {
	Index           string  `toml:"index" env:"INDEX"`
	SourceDir       string  `toml:"source_dir" env:"SOURCE_DIR"`
	IconifyDir      string  `toml:"iconify_dir" env:"ICONIFY_DIR"`
	FontsDir        string  `toml:"fonts_dir" env:"FONTS_DIR"`
	IntermediateDir string  `toml:"intermediate_dir" env:"INTERMEDIATE_DIR"`
	OutputDir       string  `toml:"output_dir" env:"OUTPUT_DIR"`
	AllowFile       string  `toml:"allow_file" env:"ALLOW_FILE"`
	DisallowFile    string  `toml:"disallow_file" env:"DISALLOW_FILE"`
	DefaultSize     float64 `toml:"default_size" env:"DEFAULT_SIZE"`
	Docs            bool    `toml:"docs" env:"DOCS"`
	VerifyFonts     bool    `toml:"verify_fonts" env:"VERIFY_FONTS"`
	Date            string  `toml:"date" env:"DATE"`
	Trace           string  `toml:"trace" env:"TRACE"`
	Publish         Publish `toml:"publish" envPrefix:"PUBLISH_"`
}

// Publish configures the upload of packages to S3-compatible storage.
type Publish struct {
	Endpoint  string `toml:"endpoint" env:"ENDPOINT"`
	Bucket    string `toml:"bucket" env:"BUCKET"`
	AccessKey string `toml:"access_key" env:"ACCESS_KEY"`
	SecretKey string `toml:"secret_key" env:"SECRET_KEY"`
	UseSSL    bool   `toml:"use_ssl" env:"USE_SSL"`
	KeyPrefix string `toml:"key_prefix" env:"KEY_PREFIX"`
	Region    string `toml:"region" env:"REGION"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Index:           "icon-sets/index.json",
		SourceDir:       "icon-sets",
		IconifyDir:      "icon-sets/json",
		FontsDir:        "temp/fonts",
		IntermediateDir: "temp/icon-sets",
		OutputDir:       "packages",
		AllowFile:       ".allow",
		DisallowFile:    ".disallow",
		DefaultSize:     24,
		Docs:            true,
		Trace:           "Info",
		Publish:         Publish{UseSSL: true, KeyPrefix: "texicons"},
	}
}

// Load reads the configuration file at path on top of the defaults and
// applies environment overrides. A missing file is accepted if path is
// DefaultFile, any other missing file is core.EMISSING.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultFile
	}
	data, err := afero.ReadFile(fs, path)
	switch {
	case errors.Is(err, os.ErrNotExist) && path == DefaultFile:
		tracer().Debugf("no configuration file, using defaults")
	case errors.Is(err, os.ErrNotExist):
		return nil, core.WrapError(err, core.EMISSING, "configuration file %s not found", path)
	case err != nil:
		return nil, core.WrapError(err, core.EIO, "read configuration file %s", path)
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "configuration file %s", path)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			tracer().Errorf("configuration file %s: unknown keys %v", path, undec)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "configuration from environment")
	}
	if cfg.DefaultSize <= 0 {
		return nil, core.Error(core.EINVALID, "default_size must be positive, is %g", cfg.DefaultSize)
	}
	tracer().Debugf("configuration: %+v", cfg.redacted())
	return cfg, nil
}

func (c *Config) redacted() Config {
	r := *c
	if r.Publish.SecretKey != "" {
		r.Publish.SecretKey = "***"
	}
	return r
}

// LoadEnvFile sets environment variables from a dotenv file. Variables
// already present in the environment win. A missing file is not an error.
func LoadEnvFile(fs afero.Fs, path string) error {
	data, err := afero.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return core.WrapError(err, core.EIO, "read env file %s", path)
	}
	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return core.WrapError(err, core.EINVALID, "env file %s", path)
	}
	for k, v := range vars {
		if _, set := os.LookupEnv(k); !set {
			os.Setenv(k, v)
		}
	}
	return nil
}

type reproducible struct {
	Epoch string `env:"SOURCE_DATE_EPOCH"`
}

// PackageDate is the date written into generated packages: the configured
// date, else SOURCE_DATE_EPOCH, else now.
func (c *Config) PackageDate(now func() time.Time) (time.Time, error) {
	if d := strings.TrimSpace(c.Date); d != "" {
		for _, layout := range []string{"2006-01-02", "2006/01/02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t, nil
			}
		}
		return time.Time{}, core.Error(core.EINVALID, "malformed date %q", d)
	}
	var r reproducible
	if err := env.Parse(&r); err != nil {
		return time.Time{}, core.WrapError(err, core.EINVALID, "SOURCE_DATE_EPOCH")
	}
	if r.Epoch != "" {
		secs, err := strconv.ParseInt(r.Epoch, 10, 64)
		if err != nil {
			return time.Time{}, core.WrapError(err, core.EINVALID, "malformed SOURCE_DATE_EPOCH %q", r.Epoch)
		}
		return time.Unix(secs, 0).UTC(), nil
	}
	return now().UTC(), nil
}

// LoadLists reads the allow and disallow lists named by c. A missing list
// file is an empty list.
func LoadLists(fs afero.Fs, c *Config) (filter.Lists, error) {
	var lists filter.Lists
	var err error
	if lists.Allow, err = readList(fs, c.AllowFile); err != nil {
		return lists, err
	}
	if lists.Disallow, err = readList(fs, c.DisallowFile); err != nil {
		return lists, err
	}
	tracer().Debugf("%d allowed, %d disallowed prefixes", len(lists.Allow), len(lists.Disallow))
	return lists, nil
}

func readList(fs afero.Fs, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := fs.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, core.WrapError(err, core.EIO, "open list file %s", path)
	}
	defer f.Close()
	list, err := filter.ReadList(f)
	if err != nil {
		return nil, core.WrapError(err, core.EIO, "read list file %s", path)
	}
	return list, nil
}
