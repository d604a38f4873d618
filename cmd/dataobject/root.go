package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dataobject/internal/config"
	"dataobject/trace"
)

func newRootCmd() *cobra.Command {
	var (
		configFile string
		undo       func()
		logger     *zap.Logger
	)

	rootCmd := &cobra.Command{
		Use:           "dataobject",
		Short:         "Evaluate and inspect dynamic data object values",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitConfiguration(cmd, configFile); err != nil {
				return err
			}

			level := config.GetLogLevel()
			if config.TraceEnabled() {
				level = "debug"
			}
			logger = setupLogger(level, config.GetLogFormat())
			undo = zap.ReplaceGlobals(logger)

			trace.Init(config.TraceEnabled(), config.TraceFilters(), logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
			if undo != nil {
				undo()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "configuration file")
	flags.String("log-level", "info", "log level")
	flags.String("log-format", "console", "log encoding (console or json)")
	flags.Bool("trace", false, "trace evaluation steps")
	flags.StringSlice("trace-filter", nil, "operations to trace (glob, e.g. 'compare.*')")

	rootCmd.AddCommand(newEvalCmd(), newConformCmd(), newInspectCmd())
	return rootCmd
}

// setupLogger builds a logger writing to stderr so command output on
// stdout stays clean
func setupLogger(logLevel, encoding string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: encoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(logLevel)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}
