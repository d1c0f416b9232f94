package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// NewGormLogger routes gorm's logging through slog. SQL statements are only
// traced when the slog logger has debug enabled.
func NewGormLogger(logger *slog.Logger) gormlogger.Interface {
	level, slogLevel := gormlogger.Warn, slog.LevelWarn
	switch {
	case logger.Enabled(context.Background(), slog.LevelDebug):
		level, slogLevel = gormlogger.Info, slog.LevelDebug
	case !logger.Enabled(context.Background(), slog.LevelWarn):
		level, slogLevel = gormlogger.Error, slog.LevelError
	}

	return gormlogger.New(slogWriter{logger: logger, level: slogLevel}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type slogWriter struct {
	logger *slog.Logger
	level  slog.Level
}

func (w slogWriter) Printf(format string, args ...any) {
	w.logger.Log(context.Background(), w.level, fmt.Sprintf(format, args...), "component", "gorm")
}
