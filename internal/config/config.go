package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/username/czech-holidays/internal/calendar"
)

// EnvPrefix prefixes environment overrides, e.g. CZECH_HOLIDAYS_LOG_LEVEL
const EnvPrefix = "CZECH_HOLIDAYS"

// Config represents application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	ICS    ICSConfig    `mapstructure:"ics"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty = log to stderr
	Level string `mapstructure:"level"`
}

// OutputConfig represents output defaults for the CLI
type OutputConfig struct {
	Format string `mapstructure:"format"` // "auto", "table", "json", "yaml" or "ics"
	Lang   string `mapstructure:"lang"`
	Year   int    `mapstructure:"year"` // 0 = current year
}

// ICSConfig represents iCalendar export settings
type ICSConfig struct {
	ProductID    string `mapstructure:"product_id"`
	CalendarName string `mapstructure:"calendar_name"`
}

// Formats lists the supported output formats
var Formats = []string{"auto", "table", "json", "yaml", "ics"}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Format: "auto",
			Lang:   "cs",
		},
		ICS: ICSConfig{
			ProductID:    "-//czech-holidays//CZ",
			CalendarName: "Státní svátky ČR",
		},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.lang", def.Output.Lang)
	v.SetDefault("output.year", def.Output.Year)
	v.SetDefault("ics.product_id", def.ICS.ProductID)
	v.SetDefault("ics.calendar_name", def.ICS.CalendarName)
}

// Load loads configuration from file. An explicitly given file must exist;
// without one, a missing config.yaml leaves the defaults in place.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.czech-holidays")
		v.AddConfigPath("/etc/czech-holidays")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Log.GetLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	format := strings.ToLower(c.Output.Format)
	valid := false
	for _, f := range Formats {
		if f == format {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("output.format must be one of %s, got '%s'",
			strings.Join(Formats, ", "), c.Output.Format)
	}

	if _, err := calendar.ParseLanguage(c.Output.Lang); err != nil {
		return fmt.Errorf("output.lang: %w", err)
	}

	if c.Output.Year != 0 && c.Output.Year < calendar.MinYear {
		return fmt.Errorf("output.year must be %d or later, got %d", calendar.MinYear, c.Output.Year)
	}

	if c.ICS.ProductID == "" {
		return fmt.Errorf("ics.product_id is required")
	}

	return nil
}

// GetLevel returns the configured log level
func (c *LogConfig) GetLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return level, nil
}

// GetLanguage returns the configured holiday name language
func (c *OutputConfig) GetLanguage() calendar.Language {
	lang, err := calendar.ParseLanguage(c.Lang)
	if err != nil {
		return calendar.Czech
	}
	return lang
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Log.File = os.ExpandEnv(c.Log.File)
	c.ICS.CalendarName = os.ExpandEnv(c.ICS.CalendarName)
}
