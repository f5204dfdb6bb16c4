package utils

import (
	"io"
	"os"
	"path"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logInstance zerolog.Logger
	logLock     sync.Mutex

	logVerbosity  = zerolog.InfoLevel
	logFileWriter io.Writer
)

func init() {
	updateLogInstance()
}

func updateLogInstance() {
	writer := io.Writer(os.Stderr)
	if logFileWriter != nil {
		writer = io.MultiWriter(os.Stderr, logFileWriter)
	}
	logInstance = zerolog.New(writer).
		Level(logVerbosity).
		With().Timestamp().Caller().
		Logger()
}

// Logger returns the process-wide logger. Packages derive sub-loggers from
// it with their own module context.
func Logger() *zerolog.Logger {
	logLock.Lock()
	defer logLock.Unlock()
	return &logInstance
}

// SetLogVerbosity sets the global log level.
func SetLogVerbosity(level zerolog.Level) {
	logLock.Lock()
	defer logLock.Unlock()
	logVerbosity = level
	updateLogInstance()
}

// AddLogFile adds a rotating file sink next to the console output. Sub-loggers
// derived before this call keep writing to the old sinks, so wire it up before
// anything else logs.
func AddLogFile(filepath string, maxSize int, rotateCount int, rotateMaxAge int) {
	logLock.Lock()
	defer logLock.Unlock()
	logFileWriter = &lumberjack.Logger{
		Filename:   filepath,
		MaxSize:    maxSize,
		MaxBackups: rotateCount,
		MaxAge:     rotateMaxAge,
	}
	updateLogInstance()
}

// AddLogFileWithDir is AddLogFile with the folder and file name kept separate,
// creating the folder when absent.
func AddLogFileWithDir(folder, filename string, maxSize int, rotateCount int, rotateMaxAge int) error {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return err
	}
	AddLogFile(path.Join(folder, filename), maxSize, rotateCount, rotateMaxAge)
	return nil
}
