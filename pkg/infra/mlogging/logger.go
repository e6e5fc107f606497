// 指示: miu200521358
// Package mlogging は slog のロガー構築を提供する。
package mlogging

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 既定のローテーション設定。
const (
	DefaultMaxSize    = 10
	DefaultMaxBackups = 3
	DefaultMaxAge     = 28
)

// RunIDKey は実行IDのログ属性名を表す。
const RunIDKey = "run"

// Config はロガー構築設定を表す。
type Config struct {
	// Filename はログファイルを表す。空の場合は Fallback へ出力する。
	Filename   string
	Level      string
	Verbose    bool
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Fallback   io.Writer
}

// Logger は実行IDを付与したロガーと出力先を保持する。
type Logger struct {
	*slog.Logger
	RunID  string
	writer io.Writer
}

// New はロガーを生成する。
func New(config Config) *Logger {
	level := ParseLevel(config.Level, slog.LevelInfo)
	if config.Verbose {
		level = slog.LevelDebug
	}

	var writer io.Writer = config.Fallback
	if strings.TrimSpace(config.Filename) != "" {
		writer = &lumberjack.Logger{
			Filename:   config.Filename,
			MaxSize:    valueOrDefault(config.MaxSize, DefaultMaxSize),
			MaxBackups: valueOrDefault(config.MaxBackups, DefaultMaxBackups),
			MaxAge:     valueOrDefault(config.MaxAge, DefaultMaxAge),
			Compress:   config.Compress,
		}
	}
	if writer == nil {
		writer = io.Discard
	}

	runID := uuid.NewString()
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(handler).With(slog.String(RunIDKey, runID)),
		RunID:  runID,
		writer: writer,
	}
}

// Close はログファイルを閉じる。ファイル出力でない場合は何もしない。
func (l *Logger) Close() error {
	if closer, ok := l.writer.(*lumberjack.Logger); ok {
		return closer.Close()
	}
	return nil
}

// ParseLevel はレベル名または数値を slog のレベルへ変換する。
func ParseLevel(value string, defaultLevel slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return defaultLevel
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		return slog.Level(n)
	}
	return defaultLevel
}

func valueOrDefault(value int, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
