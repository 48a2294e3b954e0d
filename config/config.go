// Package config loads kestrel.yml, the per-project settings for R class
// generation. Values come from, in increasing priority: built-in defaults,
// the config file, KESTREL_* environment variables, and command flags
// applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/kestrel/javaclass"
	"github.com/simonhull/firebird-suite/kestrel/manifest"
	"github.com/simonhull/firebird-suite/kestrel/rclass"
)

// FileName is the config file looked up in the working directory.
const FileName = "kestrel.yml"

// EnvPrefix prefixes environment overrides, e.g. KESTREL_OUTPUT_DIR.
const EnvPrefix = "KESTREL"

// Config represents kestrel.yml
type Config struct {
	Manifest  string       `mapstructure:"manifest" yaml:"manifest"`
	Package   string       `mapstructure:"package" yaml:"package,omitempty"`
	ClassName string       `mapstructure:"class_name" yaml:"class_name"`
	Final     bool         `mapstructure:"final" yaml:"final"`
	Comments  bool         `mapstructure:"comments" yaml:"comments"`
	Header    string       `mapstructure:"header" yaml:"header"`
	Output    OutputConfig `mapstructure:"output" yaml:"output"`
	Format    FormatConfig `mapstructure:"format" yaml:"format"`

	// File is the config file that was read, empty when defaults were used.
	File string `mapstructure:"-" yaml:"-"`
}

// OutputConfig defines where generated files go
type OutputConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Symbols string `mapstructure:"symbols" yaml:"symbols,omitempty"`
}

// FormatConfig controls the layout of generated source
type FormatConfig struct {
	Indent         string `mapstructure:"indent" yaml:"indent"`
	AttribsPerLine int    `mapstructure:"attribs_per_line" yaml:"attribs_per_line"`
}

// Default returns a config with the built-in defaults
func Default() *Config {
	return &Config{
		Manifest:  "resources.yml",
		ClassName: rclass.DefaultClassName,
		Final:     true,
		Comments:  true,
		Header:    rclass.DefaultHeader,
		Output:    OutputConfig{Dir: "gen"},
		Format: FormatConfig{
			Indent:         javaclass.DefaultIndent,
			AttribsPerLine: javaclass.DefaultAttribsPerLine,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("package", d.Package)
	v.SetDefault("class_name", d.ClassName)
	v.SetDefault("final", d.Final)
	v.SetDefault("comments", d.Comments)
	v.SetDefault("header", d.Header)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.symbols", d.Output.Symbols)
	v.SetDefault("format.indent", d.Format.Indent)
	v.SetDefault("format.attribs_per_line", d.Format.AttribsPerLine)
}

// Load reads the config at path. An empty path looks for kestrel.yml in
// the working directory and falls back to defaults when there is none; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, ".yml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", displayPath(path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func displayPath(path string) string {
	if path == "" {
		return FileName
	}
	return path
}

// Validate rejects settings that cannot produce a class.
func (c *Config) Validate() error {
	var errs []error
	if c.Manifest == "" {
		errs = append(errs, errors.New("manifest: path is required"))
	}
	if c.Package != "" && !manifest.IsPackageName(c.Package) {
		errs = append(errs, fmt.Errorf("package: %q is not a valid Java package name", c.Package))
	}
	switch {
	case c.ClassName == "":
		errs = append(errs, errors.New("class_name: must not be empty"))
	case !manifest.IsJavaIdentifier(c.ClassName):
		errs = append(errs, fmt.Errorf("class_name: %q is not a valid Java class name", c.ClassName))
	}
	if c.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir: must not be empty"))
	}
	if c.Format.AttribsPerLine <= 0 {
		errs = append(errs, fmt.Errorf("format.attribs_per_line: must be positive, got %d", c.Format.AttribsPerLine))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Options maps the config onto rclass builder options.
func (c *Config) Options() rclass.Options {
	return rclass.Options{
		Package:   c.Package,
		ClassName: c.ClassName,
		Final:     c.Final,
		Comments:  c.Comments,
		Header:    c.Header,
		Format: javaclass.Format{
			Indent:         c.Format.Indent,
			AttribsPerLine: c.Format.AttribsPerLine,
		},
	}
}

// Save writes the config as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
