// Package config holds the client library's tunables and the YAML mapping
// specs consumed by the CLI.
package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "2s".
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Settings configures the client. PropagationDelay is the module-wide
// settling wait observed after every mapping write; tests set it to zero.
type Settings struct {
	BaseURL          string   `yaml:"base_url" validate:"required,url"`
	RequestTimeout   Duration `yaml:"request_timeout" validate:"gte=0"`
	PropagationDelay Duration `yaml:"propagation_delay" validate:"gte=0"`
	LogLevel         string   `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the settings used when no config file is supplied.
func Default() Settings {
	return Settings{
		BaseURL:          "http://localhost:1234",
		RequestTimeout:   Duration(10 * time.Second),
		PropagationDelay: Duration(2 * time.Second),
		LogLevel:         "info",
	}
}

// Load reads settings from a YAML file, overlaying the defaults, and
// validates the result.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate reports the first constraint the settings violate.
func (s Settings) Validate() error {
	if err := validatorInstance().Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used across
// the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}
