package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pathname/pkg/pathname"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Log formats accepted in log_format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ProjectConfig holds settings read from pathname.yaml, overridable through
// PATHNAME_* environment variables.
type ProjectConfig struct {
	MaxConcurrentReads int    `yaml:"max_concurrent_reads" envconfig:"MAX_CONCURRENT_READS"`
	DirMode            string `yaml:"dir_mode" envconfig:"DIR_MODE"`
	VerifyAncestors    bool   `yaml:"verify_ancestors" envconfig:"VERIFY_ANCESTORS"`
	LogFormat          string `yaml:"log_format" envconfig:"LOG_FORMAT"`
	Verbose            bool   `yaml:"verbose" envconfig:"VERBOSE"`
}

// Default returns the configuration used when neither a file nor the
// environment sets a value.
func Default() *ProjectConfig {
	return &ProjectConfig{
		MaxConcurrentReads: pathname.DefaultMaxConcurrentReads,
		DirMode:            fmt.Sprintf("%04o", pathname.DefaultDirMode),
		LogFormat:          LogFormatConsole,
	}
}

// Load reads pathname.yaml from dir on top of the defaults.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, pathname.ConfigFileName))
}

// LoadFile reads the config file at path on top of the defaults.
// Keys absent from the file keep their default values.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pathname.ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with PATHNAME_* environment variables that are set.
func ApplyEnv(cfg *ProjectConfig) error {
	if err := envconfig.Process(pathname.EnvPrefix, cfg); err != nil {
		return fmt.Errorf("%w: %v", pathname.ErrInvalidConfig, err)
	}
	return nil
}

// Resolve builds the effective configuration: defaults, then the config file,
// then the environment. An explicit path must exist; the implicit
// pathname.yaml in dir is optional.
func Resolve(dir, explicitPath string) (*ProjectConfig, error) {
	var (
		cfg *ProjectConfig
		err error
	)
	if explicitPath != "" {
		cfg, err = LoadFile(explicitPath)
		if errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, explicitPath)
		}
	} else {
		cfg, err = Load(dir)
		if errors.Is(err, ErrConfigNotFound) {
			cfg, err = Default(), nil
		}
	}
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges. Errors wrap pathname.ErrInvalidConfig.
func (c *ProjectConfig) Validate() error {
	if c.MaxConcurrentReads < 0 {
		return fmt.Errorf("%w: max_concurrent_reads must be >= 0, got %d", pathname.ErrInvalidConfig, c.MaxConcurrentReads)
	}
	if _, err := c.FileMode(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log_format must be %q or %q, got %q", pathname.ErrInvalidConfig, LogFormatConsole, LogFormatJSON, c.LogFormat)
	}
	return nil
}

// FileMode parses DirMode as an octal permission, e.g. "0755".
// An empty DirMode yields pathname.DefaultDirMode.
func (c *ProjectConfig) FileMode() (fs.FileMode, error) {
	if c.DirMode == "" {
		return pathname.DefaultDirMode, nil
	}
	mode, err := strconv.ParseUint(c.DirMode, 8, 32)
	if err != nil || mode > 0o777 {
		return 0, fmt.Errorf("%w: dir_mode must be an octal permission like 0755, got %q", pathname.ErrInvalidConfig, c.DirMode)
	}
	return fs.FileMode(mode), nil
}
