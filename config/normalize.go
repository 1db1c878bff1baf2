package config

import "strings"

func (c *Config) normalize() error {
	c.Reading.Dictionary = strings.TrimSpace(c.Reading.Dictionary)
	switch strings.ToLower(c.Reading.Dictionary) {
	case "":
		c.Reading.Dictionary = "ipa"
	case "ipa", "uni":
		c.Reading.Dictionary = strings.ToLower(c.Reading.Dictionary)
	default:
		expanded, err := expandPath(c.Reading.Dictionary)
		if err != nil {
			return err
		}
		c.Reading.Dictionary = expanded
	}

	for _, p := range []*string{&c.Reading.KanjidicPath, &c.Logging.File, &c.Logging.DumpDir} {
		expanded, err := expandPath(strings.TrimSpace(*p))
		if err != nil {
			return err
		}
		*p = expanded
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	return nil
}
