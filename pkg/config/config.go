package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileOptions mirrors Options with optional fields so a config file can
// set only some of them.
type fileOptions struct {
	Relative    *bool   `yaml:"relative"`
	Incremental *bool   `yaml:"incremental"`
	SinceStart  *bool   `yaml:"since_start"`
	Monotonic   *bool   `yaml:"monotonic"`
	Unique      *bool   `yaml:"unique"`
	Format      *string `yaml:"format"`
}

// Load reads options from path, applies environment overrides, and
// validates the result. An empty path falls back to $LINESTAMP_CONFIG and
// then to ~/.config/linestamp/config.yaml; a missing fallback file is not
// an error, a missing explicitly named file is.
func Load(path string) (*Options, error) {
	opts := DefaultOptions()

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".config", "linestamp", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		switch {
		case err == nil:
			var file fileOptions
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
			file.apply(opts)
		case os.IsNotExist(err) && !explicit:
			// No fallback config file; defaults stand.
		default:
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	opts.applyEnvironmentOverrides()

	if err := Validate(opts); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return opts, nil
}

func (f *fileOptions) apply(opts *Options) {
	if f.Relative != nil {
		opts.Relative = *f.Relative
	}
	if f.Incremental != nil {
		opts.Incremental = *f.Incremental
	}
	if f.SinceStart != nil {
		opts.SinceStart = *f.SinceStart
	}
	if f.Monotonic != nil {
		opts.Monotonic = *f.Monotonic
	}
	if f.Unique != nil {
		opts.Unique = *f.Unique
	}
	if f.Format != nil {
		opts.SetFormat(*f.Format)
	}
}

// Validate checks option consistency and resolves mode interactions the
// way the original getopt loop did: an explicit format always wins,
// either delta mode otherwise forces the bare time-of-day format, and
// incremental wins over since-start when both are requested. Validate is
// safe to call again after flag merging.
func Validate(o *Options) error {
	if o == nil {
		return errors.New("options are required")
	}

	if strings.TrimSpace(o.Format) == "" {
		return errors.New("format: must not be empty")
	}

	if (o.Incremental || o.SinceStart) && !o.FormatSet {
		o.Format = DefaultDeltaFormat
	}

	if o.Incremental && o.SinceStart {
		o.SinceStart = false
	}

	return nil
}
