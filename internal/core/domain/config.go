package domain

// Config is the persisted application configuration.
type Config struct {
	// Strict makes the HTML5 fragment parser the default instead of the
	// relaxed scanner.
	Strict bool

	// PrettyJSON indents JSON tree output by default.
	PrettyJSON bool

	// ExtraVoidTags adds void elements on top of DefaultVoidTags.
	ExtraVoidTags []string

	// ExtraRawTextTags adds raw-text elements on top of
	// DefaultRawTextTags.
	ExtraRawTextTags []string

	// Archive controls the conversion archive.
	Archive ArchiveConfig
}

// ArchiveConfig controls where archived conversions are stored.
type ArchiveConfig struct {
	// Enabled switches the archive on.
	Enabled bool

	// Path is the directory holding the archive database. Empty
	// selects the default location under the user's home directory.
	Path string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Archive: ArchiveConfig{Enabled: true},
	}
}

// Dialect builds the effective parsing dialect from the defaults plus
// any configured extra tags.
func (c *Config) Dialect() Dialect {
	return DefaultDialect().
		WithVoidTags(c.ExtraVoidTags...).
		WithRawTextTags(c.ExtraRawTextTags...)
}
