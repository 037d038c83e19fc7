package commands

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the diagnostic logger shared by all commands. The root command
// replaces it before any subcommand runs.
var Logger = zap.NewNop()

// LogLevel controls Logger's level at runtime so that a loaded config can
// lower or raise it.
var LogLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Verbose is set by the root --verbose flag.
var Verbose bool

// NewLogger builds the production logger writing JSON to stderr at the
// given level.
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	LogLevel.SetLevel(level)

	cfg := zap.NewProductionConfig()
	cfg.Level = LogLevel
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named("extcmd"), nil
}
