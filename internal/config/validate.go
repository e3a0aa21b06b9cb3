package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateNaming(); err != nil {
		return err
	}
	if err := c.validateGrouping(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateNaming() error {
	if c.Naming.StartIndex < 0 {
		return errors.New("naming.start_index must be >= 0")
	}
	if !strings.ContainsAny(c.Naming.DateFormat, "YMDN") {
		return fmt.Errorf("naming.date_format %q must contain at least one of Y, M, D or N", c.Naming.DateFormat)
	}
	if strings.EqualFold(c.Naming.ImageExtension, c.Naming.VideoExtension) {
		return errors.New("naming.image_extension and naming.video_extension must differ")
	}
	return nil
}

func (c *Config) validateGrouping() error {
	if err := ensurePositiveMap(map[string]int{
		"grouping.low_jump_minutes": c.Grouping.LowJumpMinutes,
		"grouping.big_jump_minutes": c.Grouping.BigJumpMinutes,
		"grouping.size_limit":       c.Grouping.SizeLimit,
	}); err != nil {
		return err
	}
	if c.Grouping.BigJumpMinutes <= c.Grouping.LowJumpMinutes {
		return errors.New("grouping.big_jump_minutes must be greater than grouping.low_jump_minutes")
	}
	if strings.ContainsAny(c.Grouping.SeriesDir, `/\`) || strings.ContainsAny(c.Grouping.VideoDir, `/\`) {
		return errors.New("grouping.series_dir and grouping.video_dir must be plain directory names")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
