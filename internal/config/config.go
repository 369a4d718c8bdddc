// Package config provides application configuration structures and helpers.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	OutputText = "text" // One template line per workout.
	OutputJSON = "json" // One JSON object per workout.
)

var ErrInvalidConfig = errors.New("invalid config")

// TrackerConfig holds the configuration settings for the tracker.
type TrackerConfig struct {
	PackagesPath string   // Path to a JSON or YAML packages file
	Output       string   // Output format: text or json
	Strict       bool     // Stop on the first failed package
	LogLevel     string   // zap level name
	LogFile      string   // Optional log file in addition to stderr
	Args         []string // Positional CODE:v1,v2,... packages
	Logger       *zap.SugaredLogger
}

// NewTrackerConfig creates a TrackerConfig from command line flags, the JSON
// config file and environment variables.
func NewTrackerConfig() (*TrackerConfig, error) {
	return loadTrackerConfig(flag.CommandLine, os.Args[1:])
}

func loadTrackerConfig(fs *flag.FlagSet, args []string) (*TrackerConfig, error) {
	// 0) defaults
	cfg := &TrackerConfig{
		Output:   OutputText,
		LogLevel: "info",
	}

	// 1) flags
	var fPath, fLogFile, fConf strFlag
	fOutput := strFlag{v: cfg.Output}
	fLevel := strFlag{v: cfg.LogLevel}
	var fStrict boolFlag

	fs.Var(&fPath, "f", "path to packages file (.json, .yaml)")
	fs.Var(&fOutput, "o", "output format: text, json")
	fs.Var(&fStrict, "s", "stop on the first failed package")
	fs.Var(&fLevel, "l", "log level")
	fs.Var(&fLogFile, "log-file", "path to log file")
	fs.Var(&fConf, "c", "Path to JSON config file")
	fs.Var(&fConf, "config", "Path to JSON config file (alias)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.PackagesPath = fPath.v
	cfg.Output = fOutput.v
	cfg.Strict = fStrict.v
	cfg.LogLevel = fLevel.v
	cfg.LogFile = fLogFile.v
	cfg.Args = fs.Args()

	// 2) JSON, fills only what flags left unset
	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}

	if fConf.v != "" {
		js, err := loadTrackerJSON(fConf.v)
		if err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
		if js.PackagesFile != nil && !fPath.set {
			cfg.PackagesPath = *js.PackagesFile
		}
		if js.Output != nil && !fOutput.set {
			cfg.Output = *js.Output
		}
		if js.Strict != nil && !fStrict.set {
			cfg.Strict = *js.Strict
		}
		if js.LogLevel != nil && !fLevel.set {
			cfg.LogLevel = *js.LogLevel
		}
		if js.LogFile != nil && !fLogFile.set {
			cfg.LogFile = *js.LogFile
		}
	}

	// 3) environment
	readTrackerEnvironment(cfg)

	if cfg.Output != OutputText && cfg.Output != OutputJSON {
		return nil, fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputText, OutputJSON, cfg.Output)
	}

	logger, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger.Sugar()

	return cfg, nil
}

func newLogger(level, file string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logCfg.OutputPaths = []string{"stderr"}
	if file != "" {
		logCfg.OutputPaths = append(logCfg.OutputPaths, file)
	}

	logger, err := logCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func readTrackerEnvironment(cfg *TrackerConfig) {
	if path := os.Getenv("PACKAGES_FILE"); path != "" {
		cfg.PackagesPath = path
	}

	if output := os.Getenv("OUTPUT"); output != "" {
		cfg.Output = output
	}

	strictEnv := os.Getenv("STRICT")
	if strictEnv != "" {
		v, err := strconv.ParseBool(strictEnv)
		if err == nil {
			cfg.Strict = v
		} else {
			log.Printf("invalid STRICT env var: %v", err)
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	if file := os.Getenv("LOG_FILE"); file != "" {
		cfg.LogFile = file
	}
}
