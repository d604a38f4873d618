package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix      = "DATAOBJECT"
	logLevel    = "log_level"
	logFormat   = "log_format"
	trace       = "trace"
	traceFilter = "trace_filter"
	suites      = "suites"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	DefaultSuiteDir  = "conformance/testdata"
)

var v *viper.Viper

// InitConfiguration layers flags over environment variables over the
// optional config file. Environment variables use the DATAOBJECT_ prefix.
func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("error", err, "config file", configFile)
			return fmt.Errorf("fail to read config file %s: %w", configFile, err)
		}
		zap.S().Debugf("using config file: %v", v.ConfigFileUsed())
	}

	// Bind the current command's flags to viper
	return bindFlags(cmd, v)
}

// bindFlags binds each cobra flag to its viper key. Dashes in flag names
// become underscores, so --log-level reads log_level from the config file
// and DATAOBJECT_LOG_LEVEL from the environment.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Name == "config" {
			return
		}

		key := strings.ReplaceAll(f.Name, "-", "_")
		if bindErr := v.BindEnv(key, prefix+"_"+strings.ToUpper(key)); bindErr != nil {
			err = bindErr
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

func get() *viper.Viper {
	if v == nil {
		v = viper.New()
	}
	return v
}

// GetLogLevel returns the configured zap level name
func GetLogLevel() string {
	if lvl := get().GetString(logLevel); lvl != "" {
		return lvl
	}
	return defaultLogLevel
}

// GetLogFormat returns "console" or "json"
func GetLogFormat() string {
	switch f := strings.ToLower(get().GetString(logFormat)); f {
	case "json", "console":
		return f
	default:
		return defaultLogFormat
	}
}

// TraceEnabled reports whether evaluation steps are traced
func TraceEnabled() bool {
	return get().GetBool(trace)
}

// TraceFilters returns the operation patterns to trace; empty means all.
// A single string is split on commas.
func TraceFilters() []string {
	return stringList(get().Get(traceFilter))
}

// SuitePaths returns the conformance suite locations to run by default
func SuitePaths() []string {
	paths := stringList(get().Get(suites))
	if len(paths) == 0 {
		return []string{DefaultSuiteDir}
	}
	return paths
}

func stringList(raw any) []string {
	var items []string
	switch val := raw.(type) {
	case nil:
		return nil
	case string:
		items = strings.Split(val, ",")
	case []string:
		items = val
	case []any:
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
	default:
		items = []string{fmt.Sprint(val)}
	}

	out := items[:0:0]
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
