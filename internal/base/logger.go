package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/flightline-dev/flightline/internal/interfaces/global"
)

const LevelFatal = slog.Level(12)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelFatal:      color.New(color.FgRed, color.Bold),
}

var levelNames = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARN",
	slog.LevelError: "ERROR",
	LevelFatal:      "FATAL",
}

// consoleHandler renders records as colored single lines on stdout and,
// when a log file is open, mirrors them there uncolored.
type consoleHandler struct {
	mu      *sync.Mutex
	level   slog.Leveler
	logFile *os.File
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	name, ok := levelNames[record.Level]
	if !ok {
		name = record.Level.String()
	}
	timestamp := record.Time.Format("2006-01-02 15:04:05.000")

	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := levelColors[record.Level]; ok {
		_, _ = fmt.Fprintf(os.Stdout, "%s [%s] %s\n", timestamp, c.Sprint(name), record.Message)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "%s [%s] %s\n", timestamp, name, record.Message)
	}
	if h.logFile != nil {
		_, _ = fmt.Fprintf(h.logFile, "%s [%s] %s\n", timestamp, name, record.Message)
	}
	return nil
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(_ string) slog.Handler { return h }

type Logger struct {
	logger  *slog.Logger
	level   *slog.LevelVar
	logFile *os.File
	handler *consoleHandler
}

func NewLogger() *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	handler := &consoleHandler{mu: &sync.Mutex{}, level: level}
	return &Logger{
		logger:  slog.New(handler),
		level:   level,
		handler: handler,
	}
}

func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	}
	if err := os.MkdirAll("logs", global.DefaultDirectoryPermission); err != nil {
		l.Warn("Could not create log directory, file logging disabled")
		return
	}
	name := filepath.Join("logs", time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		l.WarnF("Could not open log file %s, file logging disabled", name)
		return
	}
	l.logFile = file
	l.handler.logFile = file
}

type loggerShutdown struct {
	logger *Logger
}

func (s *loggerShutdown) Invoke(_ context.Context) error {
	if s.logger.logFile == nil {
		return nil
	}
	s.logger.handler.mu.Lock()
	defer s.logger.handler.mu.Unlock()
	s.logger.handler.logFile = nil
	return s.logger.logFile.Close()
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &loggerShutdown{logger: l}
}

func (l *Logger) log(level slog.Level, msg string) {
	l.logger.Log(context.Background(), level, msg)
}

func (l *Logger) Debug(msg string, _ ...interface{}) { l.log(slog.LevelDebug, msg) }

func (l *Logger) DebugF(msg string, v ...interface{}) { l.log(slog.LevelDebug, fmt.Sprintf(msg, v...)) }

func (l *Logger) Info(msg string, _ ...interface{}) { l.log(slog.LevelInfo, msg) }

func (l *Logger) InfoF(msg string, v ...interface{}) { l.log(slog.LevelInfo, fmt.Sprintf(msg, v...)) }

func (l *Logger) Warn(msg string, _ ...interface{}) { l.log(slog.LevelWarn, msg) }

func (l *Logger) WarnF(msg string, v ...interface{}) { l.log(slog.LevelWarn, fmt.Sprintf(msg, v...)) }

func (l *Logger) Error(msg string, _ ...interface{}) { l.log(slog.LevelError, msg) }

func (l *Logger) ErrorF(msg string, v ...interface{}) { l.log(slog.LevelError, fmt.Sprintf(msg, v...)) }

func (l *Logger) Fatal(msg string, _ ...interface{}) { l.log(LevelFatal, msg) }

func (l *Logger) FatalF(msg string, v ...interface{}) { l.log(LevelFatal, fmt.Sprintf(msg, v...)) }

// Slog exposes the underlying slog logger for middleware that wants one.
func (l *Logger) Slog() *slog.Logger { return l.logger }
