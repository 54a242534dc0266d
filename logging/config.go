// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RegistryConfig describes a [*Registry] in YAML:
//
//	default: app
//	loggers:
//	  - name: app
//	    sink: console
//	    level: info
//	    flushLevel: error
type RegistryConfig struct {
	// Default is the key of the default logger. Empty means [Null].
	Default string `yaml:"default"`

	// Loggers lists the loggers to register.
	Loggers []LoggerConfig `yaml:"loggers"`
}

// LoggerConfig describes a single logger of a [RegistryConfig].
type LoggerConfig struct {
	// Name is the logger name and registration key.
	Name string `yaml:"name"`

	// Sink is the kind of logger. Empty means [SinkConsole].
	//
	// In YAML, an unquoted null selects [SinkNull] while ~ and an empty
	// value select [SinkConsole].
	Sink Sink `yaml:"sink"`

	// Level is the minimum level. Empty means the factory level.
	Level string `yaml:"level"`

	// FlushLevel is the console flush level. Empty means the factory one.
	FlushLevel string `yaml:"flushLevel"`
}

// UnmarshalYAML implements [yaml.Unmarshaler].
//
// Null scalars never reach a field unmarshaler, so the sink is
// resolved from the mapping node. Unknown sinks cause [ErrUnknownSink].
func (lc *LoggerConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain LoggerConfig
	var out plain
	if err := node.Decode(&out); err != nil {
		return err
	}
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		key, value := node.Content[idx], node.Content[idx+1]
		if key.Value == "sink" && value.ShortTag() == "!!null" && strings.EqualFold(value.Value, "null") {
			out.Sink = SinkNull
		}
	}
	if !out.Sink.valid() {
		return fmt.Errorf("%w: logger %q: %q", ErrUnknownSink, out.Name, out.Sink)
	}
	*lc = LoggerConfig(out)
	return nil
}

// LoadConfig parses a [*RegistryConfig] from r.
func LoadConfig(r io.Reader) (*RegistryConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var config RegistryConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing logging config: %w", err)
	}
	return &config, nil
}

// LoadConfigFile parses a [*RegistryConfig] from the file at path.
func LoadConfigFile(path string) (*RegistryConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadConfig(file)
}

// Build creates the loggers using factory and registers them in a new
// [*Registry], using the strict registration family.
func (c *RegistryConfig) Build(factory *Factory) (*Registry, error) {
	registry := NewRegistry()
	for _, lc := range c.Loggers {
		logger, err := lc.build(*factory)
		if err != nil {
			return nil, err
		}
		if err := registry.RegisterAs(lc.Name, logger); err != nil {
			return nil, err
		}
	}
	if c.Default != "" {
		logger, found := registry.Get(c.Default)
		if !found {
			return nil, fmt.Errorf("%w: default %q", ErrLoggerNotFound, c.Default)
		}
		registry.SetDefaultLogger(logger)
	}
	return registry, nil
}

func (lc LoggerConfig) build(factory Factory) (Logger, error) {
	if lc.Level != "" {
		level, err := ParseLevel(lc.Level)
		if err != nil {
			return nil, fmt.Errorf("logger %q: %w", lc.Name, err)
		}
		factory.Level = level
	}
	if lc.FlushLevel != "" {
		level, err := ParseLevel(lc.FlushLevel)
		if err != nil {
			return nil, fmt.Errorf("logger %q: %w", lc.Name, err)
		}
		factory.FlushLevel = level
	}
	return factory.CreateSinkLogger(lc.Name, lc.Sink)
}
