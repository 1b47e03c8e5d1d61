// Package logger builds zap loggers from a small file-oriented
// configuration.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Path string
	// Level is the minimum level a message must have to be logged.
	Level zapcore.Level
	// Mode controls how the log file is written.
	Mode FileMode
	// DevMode, if enabled, causes DPanic-level logs to panic.
	DevMode bool
}

func New(conf Config) (*zap.Logger, error) {
	if conf.Path == "" {
		return zap.NewNop(), nil
	}
	w, err := OpenFile(conf.Path, conf.Mode)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		w,
		conf.Level,
	)
	var opts []zap.Option
	if conf.DevMode {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...), nil
}
