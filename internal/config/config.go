// Package config provides the configuration schema and loader for the
// DocVox voice command server.
package config

import "time"

// LogLevel controls log verbosity for the DocVox server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for DocVox.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server ServerConfig `yaml:"server"`
	Voice  VoiceConfig  `yaml:"voice"`
}

// ServerConfig holds network and logging settings for the DocVox server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":8080").
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// TLS configures TLS for the server. When nil, the server runs plain HTTP.
	TLS *TLSConfig `yaml:"tls"`
}

// TLSConfig holds TLS certificate paths for enabling HTTPS.
type TLSConfig struct {
	// CertFile is the path to the PEM-encoded TLS certificate.
	CertFile string `yaml:"cert_file"`

	// KeyFile is the path to the PEM-encoded TLS private key.
	KeyFile string `yaml:"key_file"`
}

// VoiceConfig holds settings for the command recognition pipeline.
type VoiceConfig struct {
	// DefaultLocale is the BCP-47 tag new sessions start in (e.g., "en-IN").
	// Empty means "en-IN".
	DefaultLocale string `yaml:"default_locale"`

	// ProcessingDebounceMs is how long a session stays in the processing
	// state after dispatching a command, in milliseconds. Re-entrant
	// transcript events arriving inside this window are dropped.
	// Zero means the built-in default of one second.
	ProcessingDebounceMs int `yaml:"processing_debounce_ms"`

	// Phonetic configures the optional phonetic trigger correction stage.
	Phonetic PhoneticConfig `yaml:"phonetic"`
}

// PhoneticConfig controls the sound-alike trigger correction applied during
// transcript normalisation. Disabled by default.
type PhoneticConfig struct {
	// Enabled turns the phonetic correction stage on.
	Enabled bool `yaml:"enabled"`

	// PhoneticThreshold is the minimum Jaro-Winkler similarity a
	// metaphone-equivalent candidate must reach, in (0, 1].
	// Zero means the built-in default of 0.70.
	PhoneticThreshold float64 `yaml:"phonetic_threshold"`

	// FuzzyThreshold is the minimum Jaro-Winkler similarity for candidates
	// with no metaphone overlap, in (0, 1]. Zero means the built-in
	// default of 0.85.
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
}

// ProcessingDebounce returns the configured debounce window as a duration,
// or zero when unset.
func (v VoiceConfig) ProcessingDebounce() time.Duration {
	return time.Duration(v.ProcessingDebounceMs) * time.Millisecond
}
