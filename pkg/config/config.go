// Package config loads the optional .glox.yml settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"glox/pkg/interpreter"
)

// FileName is the settings file Find looks for.
const FileName = ".glox.yml"

var ErrNotFound = errors.New(FileName + " not found")

type Config struct {
	Path string `yaml:"-"`

	// Prompt is printed before each REPL line.
	Prompt string `yaml:"prompt"`
	// Echo makes the REPL print the value of bare expression statements.
	Echo bool `yaml:"echo"`
	// MaxCallDepth bounds recursion before a stack overflow error.
	MaxCallDepth int `yaml:"max_call_depth"`
	// Natives lists the built-in functions defined as globals.
	Natives []string `yaml:"natives"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

func Default() *Config {
	return &Config{
		Prompt:       ":> ",
		Echo:         true,
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
		Natives:      []string{"clock"},
	}
}

// Load parses a settings file. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}
	cfg.Path = absPath

	return cfg, nil
}

// Decode reads settings from r on top of Default and validates them. An
// empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Find walks from dir up to the filesystem root and loads the first
// settings file it meets.
func Find(dir string) (*Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", dir, err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return Load(candidate)
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: stat %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotFound
		}
		dir = parent
	}
}

// Globals returns the native functions selected by Natives.
func (c *Config) Globals() map[string]any {
	globals := make(map[string]any, len(c.Natives))
	for _, name := range c.Natives {
		globals[name] = interpreter.Natives[name]
	}
	return globals
}

func (c *Config) validate() error {
	var errs ValidationError
	switch {
	case c.MaxCallDepth <= 0:
		errs.Issues = append(errs.Issues,
			fmt.Sprintf("max_call_depth must be positive, got %d", c.MaxCallDepth))
	case c.MaxCallDepth > interpreter.MaxCallDepthLimit:
		errs.Issues = append(errs.Issues,
			fmt.Sprintf("max_call_depth must be at most %d, got %d",
				interpreter.MaxCallDepthLimit, c.MaxCallDepth))
	}
	for i, name := range c.Natives {
		if _, ok := interpreter.Natives[name]; !ok {
			errs.Issues = append(errs.Issues,
				fmt.Sprintf("natives[%d]: unknown native %q (known: %s)", i, name, knownNatives()))
		}
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func knownNatives() string {
	names := make([]string, 0, len(interpreter.Natives))
	for name := range interpreter.Natives {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
