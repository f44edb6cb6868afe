package logging

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the development style logger used by every binary in the repo.
// Output goes to the given paths, stdout when none are given.
func New(debug bool, outputPaths ...string) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}
	loggerConfig.OutputPaths = outputPaths
	loggerConfig.ErrorOutputPaths = outputPaths
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
