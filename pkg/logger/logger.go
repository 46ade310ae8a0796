package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	var err error
	L, err = New()
	if err != nil {
		panic(err)
	}
}

// New builds the production JSON logger. Output goes to stderr because
// stdout is reserved for the console report, and stack traces are off.
func New(opts ...zap.Option) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	return config.Build(opts...)
}

func levelFromEnv() zapcore.Level {
	level, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// WithComponent returns a logger tagged with the component field, used by
// the repository, service, cache and handler layers.
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
