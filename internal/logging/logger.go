// Package logging provides the structured logging facade used by the parsers,
// the classifier and the import pipeline. Call sites depend on the Logger
// interface only; logrus sits behind LogrusAdapter.
package logging

// Logger is the structured logger handed to every component.
type Logger interface {
	// Debug logs per-line parsing and classification decisions.
	Debug(msg string, fields ...Field)

	// Info logs per-document and per-run progress.
	Info(msg string, fields ...Field)

	Warn(msg string, fields ...Field)

	Error(msg string, fields ...Field)

	// WithError returns a child logger carrying err.
	WithError(err error) Logger

	// WithField returns a child logger carrying one extra field.
	WithField(key string, value interface{}) Logger

	// WithFields returns a child logger carrying the given fields.
	WithFields(fields ...Field) Logger

	// Fatal logs and terminates the process.
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted message and terminates the process.
	Fatalf(msg string, args ...interface{})
}

// Field is a single key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field inline.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
