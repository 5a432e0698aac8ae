package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

// Logger writes messages at a single level. The package level instances
// Error, Warn, Info, Debug and Trace share one zerolog backend.
type Logger struct {
	level LogLevel
}

var (
	mux          sync.RWMutex
	currentLevel = INFO
	output       io.Writer
	backend      zerolog.Logger

	Error = &Logger{level: ERROR}
	Warn  = &Logger{level: WARN}
	Info  = &Logger{level: INFO}
	Debug = &Logger{level: DEBUG}
	Trace = &Logger{level: TRACE}
)

func init() {
	SetOutput(os.Stderr)
}

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	Warn.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

// IsValidLogLevel reports whether value names a known level.
func IsValidLogLevel(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error", "warn", "info", "debug", "trace":
		return true
	}
	return false
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func (s LogLevel) zerologLevel() zerolog.Level {
	switch s {
	case ERROR:
		return zerolog.ErrorLevel
	case WARN:
		return zerolog.WarnLevel
	case INFO:
		return zerolog.InfoLevel
	case DEBUG:
		return zerolog.DebugLevel
	case TRACE:
		return zerolog.TraceLevel
	}
	return zerolog.InfoLevel
}

// SetOutput redirects all loggers to w. Colors are only used on a terminal.
func SetOutput(w io.Writer) {
	mux.Lock()
	defer mux.Unlock()
	output = w
	rebuild()
}

func Initialize(logLevel LogLevel) {
	mux.Lock()
	currentLevel = logLevel
	rebuild()
	mux.Unlock()

	Debug.Printf("Initialize loggers: '%s'", logLevel.String())
}

func IsLogLevel(logLevel LogLevel) bool {
	mux.RLock()
	defer mux.RUnlock()
	return currentLevel >= logLevel
}

func rebuild() {
	_, isTerminal := output.(*os.File)
	writer := zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal,
	}
	backend = zerolog.New(writer).
		Level(currentLevel.zerologLevel()).
		With().
		Timestamp().
		Logger()
}

func (s *Logger) write(message string) {
	mux.RLock()
	l := backend
	mux.RUnlock()
	l.WithLevel(s.level.zerologLevel()).Msg(message)
}

func (s *Logger) Print(v ...interface{}) {
	s.write(fmt.Sprint(v...))
}

func (s *Logger) Printf(format string, v ...interface{}) {
	s.write(fmt.Sprintf(format, v...))
}

func (s *Logger) Println(v ...interface{}) {
	s.write(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
