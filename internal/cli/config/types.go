// Package config provides configuration management for the archmap CLI.
//
// Configuration merges four layers, lowest to highest precedence:
// built-in defaults, an archmap.yaml project file, ARCHMAP_ environment
// variables, and command line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	DocsDir      string       `koanf:"docs_dir"`
	OutDir       string       `koanf:"out_dir"`
	ModelName    string       `koanf:"model_name"`
	Format       string       `koanf:"format"`
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	Serve        *ServeConfig `koanf:"serve"`

	// ProjectRoot is the directory the config file was found in, or
	// the working directory otherwise. Relative document and output
	// paths from the file, environment and defaults resolve against
	// it; paths given as flags are taken as-is.
	ProjectRoot string `koanf:"-"`
}

// ServeConfig holds configuration for the preview server.
type ServeConfig struct {
	Port  int  `koanf:"port"`
	Watch bool `koanf:"watch"`
}

// Default configuration values.
const (
	DefaultDocsDir   = "docs"
	DefaultOutDir    = "export"
	DefaultModelName = "Architecture Model"
	DefaultFormat    = "all"
	DefaultOutput    = "table"
	DefaultServePort = 8526
)

// DefaultServeConfig returns a ServeConfig with default values.
func DefaultServeConfig() *ServeConfig {
	return &ServeConfig{Port: DefaultServePort}
}

// GetServeConfig returns the serve config with defaults applied for
// any unset values.
func (c *Config) GetServeConfig() *ServeConfig {
	if c.Serve == nil {
		return DefaultServeConfig()
	}
	s := c.Serve
	if s.Port == 0 {
		s.Port = DefaultServePort
	}
	return s
}
