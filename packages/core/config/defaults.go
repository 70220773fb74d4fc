package config

const (
	// DefaultURLPrefix keeps generated URLs app-relative
	DefaultURLPrefix = "~/"
	// DefaultApplicationPath is the application root of fake contexts
	DefaultApplicationPath = "/"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		URLPrefix:       DefaultURLPrefix,
		ApplicationPath: DefaultApplicationPath,
		Routes:          "",
		NoColor:         BoolPtr(false),
		Verbose:         BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.URLPrefix == defaults.URLPrefix &&
		c.ApplicationPath == defaults.ApplicationPath &&
		c.Routes == defaults.Routes &&
		c.GetNoColor() == defaults.GetNoColor() &&
		c.GetVerbose() == defaults.GetVerbose()
}
