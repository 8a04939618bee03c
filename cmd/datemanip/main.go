package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/datemanip/internal/config"
	"github.com/username/datemanip/internal/datemanip"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "datemanip",
		Short:         "Date ranges and date arithmetic",
		Long:          "Compute calendar-aligned date ranges and shift dates by years, months, weeks, days, hours, minutes or seconds",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			level, _ := cfg.LogLevel()
			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, level)
				if err != nil {
					return initLogger(level) // Fallback to console
				}
				return nil
			}
			return initLogger(level)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml, $HOME/.datemanip, /etc/datemanip)")

	rootCmd.AddCommand(rangeCmd())
	rootCmd.AddCommand(modifyCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(localesCmd())

	return rootCmd
}

func newService() *datemanip.Service {
	return datemanip.New(
		datemanip.WithMessages(cfg.MessageTable()),
		datemanip.WithLogger(logger),
	)
}

func initLogger(level zapcore.Level) error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func initFileLogger(logFile string, level zapcore.Level) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core), nil
}
