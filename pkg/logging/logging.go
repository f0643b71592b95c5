package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var DefaultLevel = "info"

const (
	LogLevel = "DEQR_LOG_LEVEL"
	LogPath  = "DEQR_LOG_FILE"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type Config struct {
	Level      Level
	FilePath   string
	AlsoStderr bool
}

type logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
}

var defaultLogger = newLogger()

func newLogger() *logger {
	l := log.New(os.Stderr, "", log.LstdFlags|log.LUTC)
	return &logger{
		level:  LevelInfo,
		logger: l,
	}
}

// ConfigureDefault 基于环境变量与编译时默认值配置全局日志。
func ConfigureDefault() error {
	cfg := buildDefaultConfig()
	return defaultLogger.configure(cfg)
}

func buildDefaultConfig() Config {
	levelStr := firstNonEmpty(os.Getenv(LogLevel), DefaultLevel)
	return Config{
		Level:      parseLevel(levelStr),
		FilePath:   os.Getenv(LogPath),
		AlsoStderr: true,
	}
}

func (l *logger) configure(cfg Config) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	var writers []io.Writer
	if cfg.FilePath != "" {
		f, err := openFile(cfg.FilePath)
		if err != nil {
			return err
		}
		l.file = f
		writers = append(writers, f)
	}
	if cfg.AlsoStderr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	l.logger.SetOutput(io.MultiWriter(writers...))
	l.level = cfg.Level
	return nil
}

func openFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

func parseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *logger) logf(level Level, format string, args ...any) {
	l.mu.Lock()
	enabled := level >= l.level
	logger := l.logger
	l.mu.Unlock()
	if !enabled || logger == nil {
		return
	}
	logger.Printf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
}

// Debugf 输出调试日志。
func Debugf(format string, args ...any) {
	defaultLogger.logf(LevelDebug, format, args...)
}

// Infof 输出信息级别日志。
func Infof(format string, args ...any) {
	defaultLogger.logf(LevelInfo, format, args...)
}

// Warnf 输出警告级别日志。
func Warnf(format string, args ...any) {
	defaultLogger.logf(LevelWarn, format, args...)
}

// Errorf 输出错误级别日志。
func Errorf(format string, args ...any) {
	defaultLogger.logf(LevelError, format, args...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
