// Package llog builds the zap logger used for minire diagnostics from the
// log section of the configuration.
package llog

import (
	"io"
	"os"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tanema/minire/src/conf"
)

// New creates a console logger writing to stderr.
func New(cfg conf.Log) (*zap.Logger, error) {
	return NewWriter(cfg, os.Stderr)
}

// NewWriter creates a console logger writing to w at the configured level with
// timestamps formatted by the configured strftime format.
func NewWriter(cfg conf.Log, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", cfg.Level)
	}
	format := cfg.TimeFormat
	if format == "" {
		format = conf.DEFAULTTIMEFORMAT
	}
	strf, err := strftime.New(format)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid time format '%v'", format)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(strf.FormatString(t))
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core), nil
}
