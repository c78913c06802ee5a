// Package logger файловый логгер с уровнями в стиле printf
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger логгер, пишущий одновременно в файл и stdout
type Logger struct {
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	level Level
	file  *os.File
}

// parseLevel разбирает уровень логирования из конфигурации
func parseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}

// New создает логгер, пишущий в указанный файл и stdout
// Если filePath пустой, пишет только в stdout
func New(filePath string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	var file *os.File

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file %q: %w", filePath, err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	flags := log.LstdFlags | log.Lmicroseconds

	return &Logger{
		debug: log.New(out, "DEBUG ", flags),
		info:  log.New(out, "INFO  ", flags),
		warn:  log.New(out, "WARN  ", flags),
		err:   log.New(out, "ERROR ", flags),
		level: lvl,
		file:  file,
	}, nil
}

// Debug логирует сообщение с уровнем DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level <= LevelDebug {
		l.debug.Printf(format, v...)
	}
}

// Info логирует сообщение с уровнем INFO
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level <= LevelInfo {
		l.info.Printf(format, v...)
	}
}

// Warn логирует сообщение с уровнем WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	if l.level <= LevelWarn {
		l.warn.Printf(format, v...)
	}
}

// Error логирует сообщение с уровнем ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.err.Printf(format, v...)
}

// Fatal логирует сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.err.Printf(format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}
