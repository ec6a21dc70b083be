// Package logger provides a small factory around Go's slog package used by
// the validator to report schema defects and traversal summaries.
//
// New builds a *slog.Logger from functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   - WithLevel / WithLevelName – minimum level
//   - WithOutput – destination writer
//   - WithAttr – static attributes on every record
//   - WithContextExtractors / WithContextValue – attributes pulled from the
//     context.Context passed to the *Context logging methods
//
// Discard returns a logger that drops everything; it is the validator's
// default so that importing the library never produces output on its own.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	v := validator.New(validator.WithLogger(log))
//
// Helper constructors in attr.go (Error, Type, Path, Count, Duration) keep
// attribute names consistent. Error returns an empty attribute for a nil
// error so it can be passed unconditionally.
package logger
