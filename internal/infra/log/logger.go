package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger        = zap.NewNop() // file logger, everything at the configured level
	consoleLogger = zap.NewNop() // terminal, SUCCESS and ERROR lines only
	mu            sync.Mutex
	logFile       *rotatingLogWriter
)

// Options configures Init.
type Options struct {
	Dir   string // directory holding app.log; empty disables the file log
	Level string // debug, info, warn, error
}

// Init builds the file and console loggers. Until it is called every helper
// is a no-op, so packages can log freely from tests.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	fileLogger := zap.NewNop()
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
		writer, err := openLogFile(filepath.Join(opts.Dir, "app.log"))
		if err != nil {
			return err
		}
		fileConfig := zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			FunctionKey:    zapcore.OmitKey,
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05"),
			EncodeDuration: zapcore.SecondsDurationEncoder,
		}
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(fileConfig), zapcore.AddSync(writer), level)
		fileLogger = zap.New(core)
		logFile = writer
	}

	consoleConfig := zap.NewDevelopmentConfig()
	consoleConfig.EncoderConfig.EncodeLevel = customLevelEncoder
	consoleConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleConfig.EncoderConfig.EncodeCaller = nil
	consoleConfig.Development = false
	consoleConfig.DisableStacktrace = true
	consoleConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	console, err := consoleConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to build console logger: %w", err)
	}

	Logger = fileLogger
	consoleLogger = console
	return nil
}

// Sync flushes both loggers and closes the log file.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	_ = Logger.Sync()
	_ = consoleLogger.Sync()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	Logger = zap.NewNop()
	consoleLogger = zap.NewNop()
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

func customLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString(colorCyan + "DEBUG" + colorReset)
	case zapcore.InfoLevel:
		enc.AppendString(colorGreen + "SUCCESS" + colorReset) // console INFO is only used for success lines
	case zapcore.WarnLevel:
		enc.AppendString(colorYellow + "WARN" + colorReset)
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		enc.AppendString(colorRed + level.CapitalString() + colorReset)
	default:
		enc.AppendString(colorWhite + level.String() + colorReset)
	}
}

// LogInfo writes to the file log.
func LogInfo(message string, fields ...zap.Field) {
	Logger.Info(message, fields...)
}

// LogSuccess writes to the file log and prints a check line on the console.
func LogSuccess(message string, fields ...zap.Field) {
	Logger.Info(message, fields...)
	if ms := extractDuration(fields); ms > 0 {
		consoleLogger.Info(fmt.Sprintf("✓ %s (%dms)", message, ms))
		return
	}
	consoleLogger.Info("✓ " + message)
}

// LogError writes to the file log and prints a cross line on the console.
func LogError(message string, fields ...zap.Field) {
	Logger.Error(message, fields...)
	if err := extractError(fields); err != "" {
		consoleLogger.Error(fmt.Sprintf("✗ %s: %s", message, err))
		return
	}
	consoleLogger.Error("✗ " + message)
}

// LogWarn writes to the file log.
func LogWarn(message string, fields ...zap.Field) {
	Logger.Warn(message, fields...)
}

// LogDebug writes to the file log.
func LogDebug(message string, fields ...zap.Field) {
	Logger.Debug(message, fields...)
}

func extractDuration(fields []zap.Field) int64 {
	for _, field := range fields {
		if field.Key == "duration_ms" && field.Type == zapcore.Int64Type {
			return field.Integer
		}
	}
	return 0
}

func extractError(fields []zap.Field) string {
	for _, field := range fields {
		if field.Type != zapcore.ErrorType || field.Interface == nil {
			continue
		}
		if err, ok := field.Interface.(error); ok {
			return err.Error()
		}
	}
	return ""
}
