package logger

import (
	"log/slog"
	"reflect"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Type records a Go type under the key "type".
// If t is nil, it returns an empty Attr.
func Type(t reflect.Type) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("type", t.String())
}

// Path records a violation path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Count records a number of items under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
