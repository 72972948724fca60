package logger

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"watchdog/api/internal/config"

	"github.com/golang-cz/devslog"
	"github.com/google/uuid"
)

type Logger struct{}

func Init(config *config.Config) Logger {
	slogOpts := &slog.HandlerOptions{}

	if !config.Prod_env {
		slogOpts.Level = slog.LevelDebug
	}

	// new logger with options
	opts := &devslog.Options{
		HandlerOptions:    slogOpts,
		MaxSlicePrintSize: 4,
		SortKeys:          true,
		NewLineAfterLog:   true,
	}

	logger := slog.New(devslog.NewHandler(os.Stdout, opts))

	slog.SetDefault(logger)

	return Logger{}
}

// example Info("msg", LS_CHARITIES, false, "charity_id", "...")
func (l Logger) Info(message string, logStream Logstream, isTemplate bool, args ...any) {
	var skip int

	if isTemplate {
		skip = 2
	} else {
		skip = 1
	}

	_, file, line, _ := runtime.Caller(skip)
	printLog(LL_INFO, message, logStream, file, line, args...)
}

func (l Logger) Error(message string, logStream Logstream, isTemplate bool, args ...any) {
	var skip int

	if isTemplate {
		skip = 2
	} else {
		skip = 1
	}

	_, file, line, _ := runtime.Caller(skip)
	printLog(LL_ERROR, message, logStream, file, line, args...)
}

// logs and terminates the process
func (l Logger) Fatal(message string, logStream Logstream, isTemplate bool, args ...any) {
	var skip int

	if isTemplate {
		skip = 2
	} else {
		skip = 1
	}

	_, file, line, _ := runtime.Caller(skip)
	printLog(LL_FATAL, message, logStream, file, line, args...)
	os.Exit(1)
}

func (l Logger) Debug(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)

	printLog(LL_DEBUG, message, LS_CHARITIES, file, line, args...)
}

func printLog(ll LogLevel, message string, logStream Logstream, file string, line int, args ...any) {
	args = append(args, "stream", logStream.ToString(), "source", file+":"+strconv.Itoa(line))
	switch ll {
	case LL_ERROR:
		slog.Error(message, args...)
	case LL_INFO:
		slog.Info(message, args...)
	case LL_FATAL:
		slog.Error(message, args...)
	case LL_DEBUG:
		slog.Debug(message, args...)
	}
}

func GenErrorId() string {
	var errorId string
	uuid, err := uuid.NewRandom()
	if err != nil {
		errorId = NA
	} else {
		errorId = uuid.String()
	}
	return errorId
}
