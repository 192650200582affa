package config

import (
	"fmt"
	"os"
)

// Validate checks option values that commands rely on.
func (c *Config) Validate() error {
	switch c.Format {
	case "archimate", "drawio", "all":
	default:
		return fmt.Errorf("invalid format %q (expected archimate, drawio or all)", c.Format)
	}

	switch c.OutputFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("invalid output %q (expected table, json or yaml)", c.OutputFormat)
	}

	return nil
}

// ValidateDirectories checks that the documents directory exists. Kept
// separate from Validate so help and version work without a project.
func (c *Config) ValidateDirectories() error {
	if _, err := os.Stat(c.DocsDir); os.IsNotExist(err) {
		return fmt.Errorf("documents directory does not exist: %s\nHint: create it or use --docs-dir to point somewhere else", c.DocsDir)
	}
	return nil
}
