package config

const (
	defaultSavesDir        = "~/.local/share/shotname/saves"
	defaultLogDir          = "~/.local/share/shotname/logs"
	defaultDateFormat      = "YYMM-DD"
	defaultStartIndex      = 1
	defaultImageExtension  = ".JPG"
	defaultVideoExtension  = ".MP4"
	defaultRawExtension    = ".Raw"
	defaultLowJumpMinutes  = 20
	defaultBigJumpMinutes  = 120
	defaultGroupSizeLimit  = 100
	defaultSeriesDir       = "S"
	defaultVideoDir        = "mp4"
	defaultDayFormat       = "YYMMDD_"
	defaultTimeFile        = "timetable.txt"
	defaultExiftoolBinary  = "exiftool"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SavesDir: defaultSavesDir,
			LogDir:   defaultLogDir,
		},
		Naming: Naming{
			DateFormat:      defaultDateFormat,
			StartIndex:      defaultStartIndex,
			PreservePostfix: true,
			ImageExtension:  defaultImageExtension,
			VideoExtension:  defaultVideoExtension,
			RawExtension:    defaultRawExtension,
		},
		Grouping: Grouping{
			LowJumpMinutes: defaultLowJumpMinutes,
			BigJumpMinutes: defaultBigJumpMinutes,
			SizeLimit:      defaultGroupSizeLimit,
			SeriesDir:      defaultSeriesDir,
			VideoDir:       defaultVideoDir,
			DayFormat:      defaultDayFormat,
			TimeFile:       defaultTimeFile,
		},
		Exiftool: Exiftool{
			Enabled: true,
			Binary:  defaultExiftoolBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
