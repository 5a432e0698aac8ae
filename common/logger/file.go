package logger

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogToFile writes the log to path in addition to stderr. The file is rotated
// when it grows past 10 MB. Close the returned writer on exit.
func LogToFile(path string) io.Closer {
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	SetOutput(io.MultiWriter(os.Stderr, file))
	return file
}
