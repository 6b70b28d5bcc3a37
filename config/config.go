// Package config loads the mailshare YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/mailshare/classify"
	"github.com/revelaction/mailshare/render"
	"github.com/revelaction/mailshare/tagger"
)

// Tagger kinds
const (
	TaggerRule    = "rule"
	TaggerCommand = "command"
)

// DefaultOutputPath is the file the classified lines of a text file go to.
const DefaultOutputPath = "emails_classified.txt"

var ErrInvalid = errors.New("invalid configuration")

// Config holds all mailshare configuration.
type Config struct {
	// Sentences scored together
	BatchSize int `yaml:"batch_size"`

	Tagger TaggerConfig `yaml:"tagger"`

	Scoring ScoringConfig `yaml:"scoring"`

	Output OutputConfig `yaml:"output"`

	Log LogConfig `yaml:"log"`
}

// TaggerConfig selects and tunes the part of speech tagger.
type TaggerConfig struct {
	Kind string `yaml:"kind"` // rule, command

	// argv of the external tagger, used by the command kind
	Command   []string `yaml:"command"`
	BatchSize int      `yaml:"batch_size"`
	Procs     int      `yaml:"procs"`
}

type ScoringConfig struct {
	Uniform bool      `yaml:"uniform"`
	Weights []float64 `yaml:"weights"`
}

type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Scores bool   `yaml:"scores"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console, json
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BatchSize: classify.DefaultBatchSize,
		Tagger: TaggerConfig{
			Kind:      TaggerRule,
			BatchSize: tagger.DefaultBatchSize,
			Procs:     1,
		},
		Scoring: ScoringConfig{
			Weights: append([]float64(nil), classify.DefaultWeights[:]...),
		},
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Format: render.Defaultformat,
			Scores: true,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size must be positive, got %d", ErrInvalid, c.BatchSize)
	}

	if c.Tagger.BatchSize <= 0 {
		return fmt.Errorf("%w: tagger.batch_size must be positive, got %d", ErrInvalid, c.Tagger.BatchSize)
	}

	if c.Tagger.Procs < 1 {
		return fmt.Errorf("%w: tagger.procs must be at least 1, got %d", ErrInvalid, c.Tagger.Procs)
	}

	switch c.Tagger.Kind {
	case TaggerRule:
	case TaggerCommand:
		if len(c.Tagger.Command) == 0 {
			return fmt.Errorf("%w: tagger.command is empty", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown tagger kind %q (valid: %s, %s)", ErrInvalid, c.Tagger.Kind, TaggerRule, TaggerCommand)
	}

	if len(c.Scoring.Weights) != len(classify.Weights{}) {
		return fmt.Errorf("%w: scoring.weights needs %d values, got %d", ErrInvalid, len(classify.Weights{}), len(c.Scoring.Weights))
	}

	if !slices.Contains(render.SupportedFormats(), c.Output.Format) {
		return fmt.Errorf("%w: invalid output format %q (valid: %v)", ErrInvalid, c.Output.Format, render.SupportedFormats())
	}

	return nil
}

// Aggregator returns the score aggregator the scoring section selects.
func (c *Config) Aggregator() classify.Aggregator {
	if c.Scoring.Uniform {
		return classify.Uniform()
	}

	var w classify.Weights
	copy(w[:], c.Scoring.Weights)
	return classify.Weighted(w)
}

// Options returns the classifier options of the configuration.
func (c *Config) Options() []classify.Option {
	return []classify.Option{
		classify.WithBatchSize(c.BatchSize),
		classify.WithTaggerBatchSize(c.Tagger.BatchSize),
		classify.WithAggregator(c.Aggregator()),
	}
}

// NewTagger builds the tagger the tagger section selects.
func (c *Config) NewTagger() (tagger.Tagger, error) {
	if c.Tagger.Kind == TaggerCommand {
		return tagger.NewCommand(c.Tagger.Command, c.Tagger.Procs)
	}
	return tagger.NewRule(), nil
}
