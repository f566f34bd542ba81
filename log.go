package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is safe to use before initLogger runs
var logger = zap.NewNop().Sugar()

// initLogger sets up logger to write to stderr, as JSON if json is
// set and at debug level if debug is
func initLogger(debug, json bool) error {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	var zl *zap.Logger
	if json {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		var err error
		zl, err = config.Build()
		if err != nil {
			return err
		}
	} else {
		encoder := zap.NewDevelopmentEncoderConfig()
		encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zl = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoder),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}
	logger = zl.Sugar()
	return nil
}
