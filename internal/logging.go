package internal

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger installs the global zap logger. Info (and debug, when verbose)
// goes to stdout; warnings and errors always go to stderr.
func InitLogger(verbose bool) {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "level",
		TimeKey:       "",
		CallerKey:     "",
		FunctionKey:   "",
		StacktraceKey: "",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
	}

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)

	lowCutoff := zapcore.InfoLevel
	if verbose {
		lowCutoff = zapcore.DebugLevel
	}

	stdoutCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= lowCutoff && l < zapcore.WarnLevel
		}))
	stderrCore := zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr),
		zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.WarnLevel
		}))

	zap.ReplaceGlobals(zap.New(zapcore.NewTee(stdoutCore, stderrCore)))
}
