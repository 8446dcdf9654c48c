// Package config loads projectpack settings from built-in defaults, an optional YAML
// file and PROJECTPACK_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"projectpack/pkg/combine"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "PROJECTPACK_"

	// EnvConfigPath names the config file when --config is not given.
	EnvConfigPath = EnvPrefix + "CONFIG"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Config is the full projectpack configuration.
type Config struct {
	Exclude ExcludeConfig `koanf:"exclude" yaml:"exclude"`
	Output  OutputConfig  `koanf:"output" yaml:"output"`
	Server  ServerConfig  `koanf:"server" yaml:"server"`
	Log     LogConfig     `koanf:"log" yaml:"log"`
}

// ExcludeConfig holds the three exclusion sets.
type ExcludeConfig struct {
	// Dirs are substrings; a directory whose relative path contains one is pruned.
	Dirs []string `koanf:"dirs" yaml:"dirs"`
	// Extensions are matched case-insensitively against the text after the last dot.
	Extensions []string `koanf:"extensions" yaml:"extensions"`
	// Files are exact bare filenames.
	Files []string `koanf:"files" yaml:"files"`
}

// OutputConfig controls the written document.
type OutputConfig struct {
	Default string `koanf:"default" yaml:"default"`
	Title   string `koanf:"title" yaml:"title"`
}

// ServerConfig is the listen address of the form front end.
type ServerConfig struct {
	Host string `koanf:"host" yaml:"host"`
	Port int    `koanf:"port" yaml:"port"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Debug bool `koanf:"debug" yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Exclude: ExcludeConfig{
			Dirs:       append([]string(nil), combine.DefaultExcludedDirs...),
			Extensions: append([]string(nil), combine.DefaultExcludedExtensions...),
			Files:      append([]string(nil), combine.DefaultExcludedFilenames...),
		},
		Output: OutputConfig{
			Default: combine.DefaultOutput,
			Title:   combine.DefaultTitle,
		},
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
	}
}

// ResolvePath returns flagPath, or the PROJECTPACK_CONFIG value when flagPath is empty.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

// Load builds the configuration. Defaults are overridden by the YAML file at path (if
// path is non-empty the file must exist) and then by environment variables:
//
//	PROJECTPACK_EXCLUDE_DIRS=vendor,node_modules -> exclude.dirs
//	PROJECTPACK_OUTPUT_DEFAULT=bundle.txt        -> output.default
//	PROJECTPACK_SERVER_PORT=9000                 -> server.port
//
// Lists in the file or environment replace the defaults rather than extend them.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	defaults, err := yamlv3.Marshal(Default())
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults: %w", err)
	}
	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values that would make a run or the server unusable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Default) == "" {
		return fmt.Errorf("output.default cannot be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

// Exclusions converts the exclude section into the value the scanner consumes.
func (c *Config) Exclusions() combine.Exclusions {
	return combine.NewExclusions(c.Exclude.Dirs, c.Exclude.Extensions, c.Exclude.Files)
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yamlv3.Marshal(c)
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// envKeyValue maps PROJECTPACK_SECTION_FIELD_NAME to section.field_name and converts
// list, integer and boolean values. Returning an empty key skips the variable.
func envKeyValue(key, value string) (string, interface{}) {
	if key == EnvConfigPath {
		return "", nil
	}

	lower := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.SplitN(lower, "_", 2)
	if len(parts) != 2 {
		return "", nil
	}
	path := parts[0] + "." + parts[1]

	switch path {
	case "exclude.dirs", "exclude.extensions", "exclude.files":
		return path, splitList(value)
	case "server.port":
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return path, n
		}
	case "log.debug":
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return path, b
		}
	}
	return path, value
}

// splitList splits a comma-separated value, trimming blanks.
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
