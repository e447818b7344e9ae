package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/czech-holidays/internal/calendar"
	"github.com/username/czech-holidays/internal/config"
	"github.com/username/czech-holidays/internal/export"
)

var (
	configPath string
	formatFlag string
	langFlag   string
	outputPath string

	cfg    *config.Config
	logger = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "czech-holidays",
		Short:         "Czech public holidays, working days and shopping days",
		Long:          "Compute Czech public holidays, working days, shopping-restricted days and holidays falling on weekends for any year since 2001",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var l *zap.Logger
			if cfg.Log.File != "" {
				l, err = initFileLogger(cfg.Log)
			} else {
				l, err = initLogger(cfg.Log)
			}
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: auto, table, json, yaml or ics")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Holiday name language (cs or en)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write output to file instead of stdout")

	rootCmd.AddCommand(
		holidaysCmd(),
		workdaysCmd(),
		shoppingDaysCmd(),
		weekendHolidaysCmd(),
		weekendWorkdaysCmd(),
		monthCmd(),
		dayCmd(),
		easterCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newResolver() *calendar.Resolver {
	return calendar.NewResolver(logger)
}

// yearArg returns the year given on the command line, the configured year,
// or the current year, in that order
func yearArg(args []string) (int, error) {
	if len(args) > 0 {
		return calendar.ParseYear(args[0])
	}
	if cfg != nil && cfg.Output.Year != 0 {
		return cfg.Output.Year, nil
	}
	return time.Now().Year(), nil
}

func language() (calendar.Language, error) {
	if langFlag != "" {
		return calendar.ParseLanguage(langFlag)
	}
	return cfg.Output.GetLanguage(), nil
}

// outputFormat resolves "auto" to a table on terminals and JSON otherwise
func outputFormat(out *os.File) (export.Format, error) {
	name := cfg.Output.Format
	if formatFlag != "" {
		name = formatFlag
	}
	if strings.EqualFold(name, "auto") || name == "" {
		if term.IsTerminal(int(out.Fd())) {
			return export.FormatTable, nil
		}
		return export.FormatJSON, nil
	}
	return export.ParseFormat(name)
}

// render opens the output and hands a configured exporter to write
func render(write func(w io.Writer, exp *export.Exporter) error) error {
	out := os.Stdout
	if outputPath != "" {
		if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
			return fmt.Errorf("failed to create output path: %w", err)
		}
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	format, err := outputFormat(out)
	if err != nil {
		return err
	}
	lang, err := language()
	if err != nil {
		return err
	}

	exp := export.New(format, export.Options{
		Lang:         lang,
		ProductID:    cfg.ICS.ProductID,
		CalendarName: cfg.ICS.CalendarName,
	}, logger)

	if err := write(out, exp); err != nil {
		return err
	}

	if outputPath != "" {
		logger.Info("Output written",
			zap.String("file", outputPath),
			zap.String("format", string(format)))
	}
	return nil
}

func initLogger(logCfg config.LogConfig) (*zap.Logger, error) {
	level, err := logCfg.GetLevel()
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logCfg config.LogConfig) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logCfg.File,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level, err := logCfg.GetLevel()
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core), nil
}
