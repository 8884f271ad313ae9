package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"luisgen/internal/gen"
)

const (
	// DefaultTool is the tool name recorded in generated headers.
	DefaultTool = "luisgen"
	// DefaultLogLevel is the level used when none is configured.
	DefaultLogLevel = "info"
)

// ErrNoTarget is returned by Validate when no artifact was requested.
var ErrNoTarget = errors.New("no output requested: enable cs and/or ts")

// Config is the configuration of one generation run.
type Config struct {
	// CSharp requests the C# artifact.
	CSharp bool `yaml:"cs,omitempty"`
	// Class is the C# class name, optionally qualified with a namespace.
	Class string `yaml:"class,omitempty"`
	// Namespace is the C# namespace when Class is not qualified.
	Namespace string `yaml:"namespace,omitempty"`
	// TypeScript requests the TypeScript artifact.
	TypeScript bool `yaml:"ts,omitempty"`
	// Interface is the TypeScript interface name.
	Interface string `yaml:"interface,omitempty"`
	// Output is the output directory. Empty means the input's directory.
	Output string `yaml:"output,omitempty"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level,omitempty"`
	// Tool is the tool name recorded in generated headers.
	Tool string `yaml:"tool,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and applies defaults.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Namespace == "" {
		c.Namespace = gen.DefaultNamespace
	}

	if c.Tool == "" {
		c.Tool = DefaultTool
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
}

// Validate reports configurations that cannot produce any output.
func (c *Config) Validate() error {
	if !c.CSharp && !c.TypeScript {
		return ErrNoTarget
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// CSharpTarget returns the namespace and class name of the C# artifact.
// The class is empty when none was configured.
func (c *Config) CSharpTarget() (namespace, class string) {
	ns, cls := SplitQualified(c.Class)
	if ns == "" {
		ns = c.Namespace
	}

	if ns == "" {
		ns = gen.DefaultNamespace
	}

	return ns, cls
}

// SplitQualified splits "A.B.C" into namespace "A.B" and name "C". A name
// without dots has an empty namespace.
func SplitQualified(qualified string) (namespace, name string) {
	i := strings.LastIndex(qualified, ".")
	if i < 0 {
		return "", qualified
	}

	return qualified[:i], qualified[i+1:]
}

// ParseLevel converts a configured log level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}
