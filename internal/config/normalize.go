package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeNaming()
	c.normalizeGrouping()
	c.normalizeExiftool()
	c.Describe.HDRProgram = strings.TrimSpace(c.Describe.HDRProgram)
	c.Describe.PanoramaProgram = strings.TrimSpace(c.Describe.PanoramaProgram)
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.SavesDir) == "" {
		c.Paths.SavesDir = defaultSavesDir
	}
	if c.Paths.SavesDir, err = expandPath(c.Paths.SavesDir); err != nil {
		return fmt.Errorf("paths.saves_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeNaming() {
	c.Naming.Prefix = strings.TrimSpace(c.Naming.Prefix)
	c.Naming.Name = strings.TrimSpace(c.Naming.Name)
	c.Naming.DateFormat = strings.TrimSpace(c.Naming.DateFormat)
	if c.Naming.DateFormat == "" {
		c.Naming.DateFormat = defaultDateFormat
	}
	c.Naming.ImageExtension = normalizeExtension(c.Naming.ImageExtension, defaultImageExtension)
	c.Naming.VideoExtension = normalizeExtension(c.Naming.VideoExtension, defaultVideoExtension)
	// An empty raw extension disables companion handling, so it has no fallback.
	c.Naming.RawExtension = normalizeExtension(c.Naming.RawExtension, "")
}

func (c *Config) normalizeGrouping() {
	if c.Grouping.LowJumpMinutes <= 0 {
		c.Grouping.LowJumpMinutes = defaultLowJumpMinutes
	}
	if c.Grouping.BigJumpMinutes <= 0 {
		c.Grouping.BigJumpMinutes = defaultBigJumpMinutes
	}
	if c.Grouping.SizeLimit <= 0 {
		c.Grouping.SizeLimit = defaultGroupSizeLimit
	}
	c.Grouping.SeriesDir = strings.TrimSpace(c.Grouping.SeriesDir)
	if c.Grouping.SeriesDir == "" {
		c.Grouping.SeriesDir = defaultSeriesDir
	}
	c.Grouping.VideoDir = strings.TrimSpace(c.Grouping.VideoDir)
	if c.Grouping.VideoDir == "" {
		c.Grouping.VideoDir = defaultVideoDir
	}
	if strings.TrimSpace(c.Grouping.DayFormat) == "" {
		c.Grouping.DayFormat = defaultDayFormat
	}
	c.Grouping.TimeFile = strings.TrimSpace(c.Grouping.TimeFile)
	if c.Grouping.TimeFile == "" {
		c.Grouping.TimeFile = defaultTimeFile
	}
}

func (c *Config) normalizeExiftool() {
	c.Exiftool.Binary = strings.TrimSpace(c.Exiftool.Binary)
	if value, ok := os.LookupEnv("SHOTNAME_EXIFTOOL"); ok && strings.TrimSpace(value) != "" {
		c.Exiftool.Binary = strings.TrimSpace(value)
	}
	if c.Exiftool.Binary == "" {
		c.Exiftool.Binary = defaultExiftoolBinary
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeExtension trims the value and ensures a leading dot while keeping
// the caller's case, because extensions are matched and preserved verbatim.
func normalizeExtension(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if !strings.HasPrefix(value, ".") {
		value = "." + value
	}
	return value
}
