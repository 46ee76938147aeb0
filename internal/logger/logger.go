// Package logger owns the process-wide zap logger. Lambda ships stdout to
// CloudWatch, so production output is one JSON object per line.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

// New builds a logger. debug switches to the console encoder at debug level.
func New(debug bool) (*zap.Logger, error) {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		// every request must leave its prompt/reply entry
		config.Sampling = nil
	}

	l, err := config.Build()
	if err != nil {
		return nil, err
	}
	if fn := os.Getenv("AWS_LAMBDA_FUNCTION_NAME"); fn != "" {
		l = l.With(zap.String("function", fn))
	}
	return l, nil
}

// Init sets the global logger once; later calls are no-ops.
func Init(debug bool) error {
	var err error
	once.Do(func() {
		globalLogger, err = New(debug)
	})
	return err
}

// Get returns the global logger, or a production logger if Init was not called.
func Get() *zap.Logger {
	if globalLogger == nil {
		l, _ := zap.NewProduction()
		return l
	}
	return globalLogger
}

// Sync flushes buffered entries. Call before the process exits.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

func Named(name string) *zap.Logger {
	return Get().Named(name)
}
