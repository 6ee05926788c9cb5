// Package config provides the configuration loader for dexopt.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file searched for in the working directory
// and its ancestors.
const Filename = "dexopt.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file. The file is
// discovered by walking upwards from the working directory; a run without
// one gets the built-in defaults.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration starting from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, err := discover(cwd)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := &domain.Config{}
		cfg.ApplyDefaults()
		return cfg, nil
	}
	l.Logger.Info("using config file: " + path)
	return Load(path)
}

// discover walks from dir to the filesystem root looking for Filename.
// It returns the empty string when no configuration file exists.
func discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}
	for {
		candidate := filepath.Join(dir, Filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(err, "failed to probe config file"), "path", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := &domain.Config{
		PackageName:   file.Package,
		CompilerPath:  file.Compiler,
		LoaderPath:    file.Loader,
		ServiceName:   file.Service,
		CompileFilter: file.Filter,
		RecordFile:    file.RecordFile,
	}
	if len(file.VendorCodes) > 0 {
		cfg.VendorCodes = make(map[string]domain.VendorCodes, len(file.VendorCodes))
		for vendor, codes := range file.VendorCodes {
			cfg.VendorCodes[vendor] = codes
		}
	}
	if file.Platform != nil {
		cfg.Platform = &domain.PlatformProfile{
			APILevel:     file.Platform.APILevel,
			PreviewAPI:   file.Platform.Preview,
			Manufacturer: file.Platform.Manufacturer,
		}
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
