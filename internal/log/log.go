// Package log builds the zap logger used by the command line.
//
// Info entries go to stdout and warnings and errors go to stderr, both as the
// bare message so user-facing output stays readable. Debug entries are shown
// only in verbose mode, on stderr with a level prefix. An optional log file
// receives every entry as JSON.
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var bufferPool = buffer.NewPool()

// NewCliLogger creates the command line logger.
// logFile may be nil.
func NewCliLogger(stdout io.Writer, stderr io.Writer, logFile io.Writer, verbose bool) *zap.Logger {
	var cores []zapcore.Core

	if logFile != nil {
		cores = append(cores, fileCore(logFile))
	}

	cores = append(cores, stdoutCore(stdout), stderrCore(stderr))

	if verbose {
		cores = append(cores, debugCore(stderr))
	}

	return zap.New(zapcore.NewTee(cores...))
}

// NewNop returns a logger that discards everything.
func NewNop() *zap.Logger {
	return zap.NewNop()
}

// stdoutCore writes info messages without decoration.
func stdoutCore(stdout io.Writer) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l == zapcore.InfoLevel
	})

	return zapcore.NewCore(messageEncoder(), zapcore.AddSync(stdout), levels)
}

// stderrCore writes warnings and errors without decoration.
func stderrCore(stderr io.Writer) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= zapcore.WarnLevel
	})

	return zapcore.NewCore(messageEncoder(), zapcore.AddSync(stderr), levels)
}

// debugCore writes debug messages with the level and structured fields.
func debugCore(stderr io.Writer) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l == zapcore.DebugLevel
	})

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "message",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	})

	return zapcore.NewCore(encoder, zapcore.AddSync(stderr), levels)
}

// fileCore writes all levels as JSON with time, level and message.
func fileCore(logFile io.Writer) zapcore.Core {
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})

	return zapcore.NewCore(encoder, zapcore.AddSync(logFile), zapcore.DebugLevel)
}

// messageEncoder prints only the message followed by a newline.
// Structured fields, including those added by With, are dropped.
func messageEncoder() zapcore.Encoder {
	return &messageOnlyEncoder{ObjectEncoder: zapcore.NewMapObjectEncoder()}
}

type messageOnlyEncoder struct {
	zapcore.ObjectEncoder
}

func (e *messageOnlyEncoder) Clone() zapcore.Encoder {
	return &messageOnlyEncoder{ObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (e *messageOnlyEncoder) EncodeEntry(entry zapcore.Entry, _ []zapcore.Field) (*buffer.Buffer, error) {
	buf := bufferPool.Get()
	buf.AppendString(entry.Message)
	buf.AppendByte('\n')

	return buf, nil
}
