package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mlorenz/buildstamp/pkg/errors"
	"github.com/mlorenz/buildstamp/pkg/gen"
)

// Config describes one generation run. It is populated from defaults, an
// optional buildstamp.toml file, and command-line flags, in that order.
type Config struct {
	Output OutputConfig `toml:"output"`
	Stamps StampsConfig `toml:"stamps"`
}

// OutputConfig selects where the generated file goes and how it is declared.
type OutputConfig struct {
	// File is the path of the generated source file.
	File string `toml:"file"`

	// Package is the package clause of the generated file. Defaults to the
	// GOPACKAGE environment variable, which go generate sets to the package
	// containing the //go:generate directive.
	Package string `toml:"package"`

	// Prefix is prepended to every generated identifier.
	Prefix string `toml:"prefix"`
}

// StampsConfig selects which shapes the generated file declares.
type StampsConfig struct {
	Names []string `toml:"names"`
}

// DefaultConfigFile is the config filename looked up in the working
// directory when --config is not given.
const DefaultConfigFile = appName + ".toml"

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			File:    "buildstamp_gen.go",
			Package: os.Getenv("GOPACKAGE"),
			Prefix:  "Build",
		},
		Stamps: StampsConfig{
			Names: []string{"datetime", "datetime_str", "unix", "version_str"},
		},
	}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// tries DefaultConfigFile and silently keeps the defaults when it does not
// exist; an explicit path must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// Shapes resolves the configured stamp names. Unknown names are fatal: a
// typo must abort the build rather than silently drop a constant.
func (c Config) Shapes() ([]gen.Shape, error) {
	shapes, err := gen.ParseShapes(c.Stamps.Names)
	if err != nil {
		return nil, err
	}
	if len(shapes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no stamps configured")
	}
	return shapes, nil
}
