package config

// ConfigDiff describes what changed between two configs.
// Only fields that can be safely hot-reloaded are tracked.
type ConfigDiff struct {
	LogLevelChanged bool
	NewLogLevel     LogLevel

	DefaultLocaleChanged bool
	NewDefaultLocale     string

	DebounceChanged bool
	NewDebounceMs   int

	// PhoneticChanged covers the whole phonetic block: enabling, disabling,
	// or retuning thresholds all rebuild the normaliser the same way.
	PhoneticChanged bool
	NewPhonetic     PhoneticConfig
}

// Changed reports whether any hot-reloadable field differs.
func (d ConfigDiff) Changed() bool {
	return d.LogLevelChanged || d.DefaultLocaleChanged || d.DebounceChanged || d.PhoneticChanged
}

// Diff compares old and new configs and returns what changed.
// Only tracks changes that are safe to apply without restart; the listen
// address and TLS material are deliberately excluded.
func Diff(old, new *Config) ConfigDiff {
	d := ConfigDiff{}

	if old.Server.LogLevel != new.Server.LogLevel {
		d.LogLevelChanged = true
		d.NewLogLevel = new.Server.LogLevel
	}
	if old.Voice.DefaultLocale != new.Voice.DefaultLocale {
		d.DefaultLocaleChanged = true
		d.NewDefaultLocale = new.Voice.DefaultLocale
	}
	if old.Voice.ProcessingDebounceMs != new.Voice.ProcessingDebounceMs {
		d.DebounceChanged = true
		d.NewDebounceMs = new.Voice.ProcessingDebounceMs
	}
	if old.Voice.Phonetic != new.Voice.Phonetic {
		d.PhoneticChanged = true
		d.NewPhonetic = new.Voice.Phonetic
	}

	return d
}
