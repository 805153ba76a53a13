package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that failed to parse or validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Point is a grid cell in configuration form.
type Point struct {
	X int `yaml:"x" validate:"gte=0"`
	Y int `yaml:"y" validate:"gte=0"`
}

// Search describes one momentum search over the configured grid.
type Search struct {
	// Name identifies the search in logs, metrics and output.
	Name string `yaml:"name" validate:"required"`

	// MinRun is the number of straight cells required before turning or stopping.
	MinRun int `yaml:"min_run" validate:"gte=0"`

	// MaxRun is the number of straight cells after which a turn is forced.
	MaxRun int `yaml:"max_run" validate:"gte=1,gtefield=MinRun"`

	// Start defaults to the origin when omitted.
	Start *Point `yaml:"start,omitempty"`

	// Target defaults to the bottom-right corner when omitted.
	Target *Point `yaml:"target,omitempty"`

	// MaxCost, if set, abandons routes more expensive than this.
	MaxCost *int64 `yaml:"max_cost,omitempty" validate:"omitempty,gte=0"`

	// Path requests the cheapest route in the output.
	Path bool `yaml:"path,omitempty"`
}

// Logging configures structured logging.
type Logging struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`

	// Format is console or json.
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Metrics configures the Prometheus text-file export.
type Metrics struct {
	// File, if set, receives the metrics in text exposition format after a run.
	File string `yaml:"file,omitempty"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" validate:"required"`
}

// Config is the root configuration document.
type Config struct {
	// Grid is the path of the digit grid. A command-line argument overrides it.
	Grid string `yaml:"grid,omitempty"`

	// Concurrency bounds parallel searches; 0 means one per CPU.
	Concurrency int `yaml:"concurrency" validate:"gte=0"`

	Searches []Search `yaml:"searches" validate:"required,min=1,unique=Name,dive"`
	Logging  Logging  `yaml:"logging"`
	Metrics  Metrics  `yaml:"metrics"`
}

// Default returns the configuration used when no file is given: the
// classic pair of searches, info-level console logging.
func Default() *Config {
	return &Config{
		Searches: []Search{
			{Name: "part1", MinRun: 0, MaxRun: 3},
			{Name: "part2", MinRun: 4, MaxRun: 10},
		},
		Logging: Logging{Level: "info", Format: "console"},
		Metrics: Metrics{Namespace: "crucible"},
	}
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document from r over Default's logging and metrics
// settings and validates the result. Searches given in the document replace
// the default searches.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	cfg := Default()
	cfg.Searches = nil
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if len(cfg.Searches) == 0 {
		cfg.Searches = Default().Searches
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint and reports all violations at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must have unique %s values", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value())
	}
}
