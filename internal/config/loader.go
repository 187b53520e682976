package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// KnownLocales lists the BCP-47 tags the command catalog carries templates
// for. Used by [Validate] to warn about locales that will fall back to
// English templates.
var KnownLocales = []string{"en-IN", "hi-IN", "te-IN", "ta-IN"}

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Useful in tests where configs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	// Server
	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}
	if cfg.Server.TLS != nil {
		if cfg.Server.TLS.CertFile == "" {
			errs = append(errs, errors.New("server.tls.cert_file is required when tls is set"))
		}
		if cfg.Server.TLS.KeyFile == "" {
			errs = append(errs, errors.New("server.tls.key_file is required when tls is set"))
		}
	}

	// Voice
	if cfg.Voice.ProcessingDebounceMs < 0 {
		errs = append(errs, fmt.Errorf("voice.processing_debounce_ms %d must not be negative", cfg.Voice.ProcessingDebounceMs))
	}
	if t := cfg.Voice.Phonetic.PhoneticThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Errorf("voice.phonetic.phonetic_threshold %.2f is out of range (0, 1]", t))
	}
	if t := cfg.Voice.Phonetic.FuzzyThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Errorf("voice.phonetic.fuzzy_threshold %.2f is out of range (0, 1]", t))
	}

	// Unknown locales still work (templates fall back to English), so warn
	// rather than fail.
	if loc := cfg.Voice.DefaultLocale; loc != "" && !slices.Contains(KnownLocales, loc) {
		slog.Warn("default locale has no localised templates; responses will use English",
			"locale", loc,
			"known", KnownLocales,
		)
	}

	return errors.Join(errs...)
}
