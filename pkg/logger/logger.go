package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/gamemarket/internal/config"
)

const (
	timeLayout  = "15:04:05 02-01-2006"
	serviceName = "gamemarket"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces the global zap logger used by every package through zap.L().
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	encoding, encodeLevel, encodeTime, err := encoderFor(conf.LogFormat)
	if err != nil {
		return err
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     encodeTime,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    encodeLevel,
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Sampling:         nil,
		Encoding:         encoding,
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	if encoding == "json" {
		logger = logger.With(zap.String("service", serviceName))
	}

	zap.ReplaceGlobals(logger)

	return nil
}

// encoderFor maps LOG_FORMAT to a zap encoding with matching level and time encoders.
func encoderFor(format string) (string, zapcore.LevelEncoder, zapcore.TimeEncoder, error) {
	switch format {
	case "", "console":
		return "console", zapcore.CapitalColorLevelEncoder, zapcore.TimeEncoderOfLayout(timeLayout), nil
	case "json":
		return "json", zapcore.LowercaseLevelEncoder, zapcore.ISO8601TimeEncoder, nil
	default:
		return "", nil, nil, fmt.Errorf("unsupported log format: %s", format)
	}
}
