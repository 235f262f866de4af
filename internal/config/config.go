package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-animalpage/pkg/page"
)

// Conventional file names, resolved against the working directory.
const (
	DefaultDataPath     = "animals_data.json"
	DefaultTemplatePath = "animals_template.html"
	DefaultOutputPath   = "animals.html"
	DefaultLogLevel     = "warn"
)

// Candidates lists the optional config files probed by Discover, in order.
var Candidates = []string{"animalpage.yaml", "animalpage.yml", "animalpage.toml"}

// Config holds the run configuration. Every field has a default so the tool
// runs without any config file.
type Config struct {
	Data     string `yaml:"data" toml:"data"`
	Template string `yaml:"template" toml:"template"`
	Output   string `yaml:"output" toml:"output"`

	// Target is "file" (write Output) or "template" (overwrite Template).
	Target string `yaml:"target" toml:"target"`

	// Sanitize strips markup from field values before embedding them.
	Sanitize bool `yaml:"sanitize" toml:"sanitize"`

	Log LogConfig `yaml:"log" toml:"log"`
}

// LogConfig configures diagnostics logging.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the conventional configuration.
func Default() *Config {
	return &Config{
		Data:     DefaultDataPath,
		Template: DefaultTemplatePath,
		Output:   DefaultOutputPath,
		Target:   string(page.TargetFile),
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults. The
// format is chosen by extension: .toml is TOML, anything else YAML.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Discover loads the first candidate file present in dir, or returns the
// defaults when none exists. The second return value is the file used, empty
// when defaults apply.
func Discover(dir string) (*Config, string, error) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := page.ParseTarget(c.Target); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Resolve returns a copy with relative paths anchored at dir.
func (c *Config) Resolve(dir string) *Config {
	out := *c
	out.Data = resolvePath(dir, c.Data)
	out.Template = resolvePath(dir, c.Template)
	out.Output = resolvePath(dir, c.Output)
	return &out
}

// PageConfig converts the configuration into page assembler settings.
func (c *Config) PageConfig() (page.Config, error) {
	target, err := page.ParseTarget(c.Target)
	if err != nil {
		return page.Config{}, fmt.Errorf("config: %w", err)
	}
	return page.Config{
		TemplatePath: c.Template,
		OutputPath:   c.Output,
		Target:       target,
	}, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if strings.TrimSpace(c.Data) == "" {
		c.Data = def.Data
	}
	if strings.TrimSpace(c.Template) == "" {
		c.Template = def.Template
	}
	if strings.TrimSpace(c.Output) == "" {
		c.Output = def.Output
	}
	if strings.TrimSpace(c.Target) == "" {
		c.Target = def.Target
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = def.Log.Level
	}
}

func resolvePath(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
