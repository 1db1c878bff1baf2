package config

import "fmt"

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if c.Conversion.SpaceLatinInternally && !c.Conversion.SplitWithSpace {
		return fmt.Errorf("conversion.space_latin_internally requires split_with_space")
	}
	return nil
}
