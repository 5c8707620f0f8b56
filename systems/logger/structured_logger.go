package logger

import (
	"os"

	"github.com/lumen-home/light/plugins/common"
	"github.com/sirupsen/logrus"
)

// Structured logger on top of logrus, for deployments that feed
// log collectors instead of a terminal.
type structuredLogger struct {
	logger *logrus.Logger
}

// NewStructuredLogger constructs a new logrus-based logger.
func NewStructuredLogger() common.ILoggerProvider {
	l := logrus.New()
	l.Out = os.Stdout
	l.Formatter = &logrus.JSONFormatter{}
	l.Level = logrus.DebugLevel

	return &structuredLogger{logger: l}
}

// Debug prints debug level message.
func (p *structuredLogger) Debug(msg string, fields ...string) {
	p.logger.WithFields(logrusFields(fields...)).Debug(msg)
}

// Info prints info level message.
func (p *structuredLogger) Info(msg string, fields ...string) {
	p.logger.WithFields(logrusFields(fields...)).Info(msg)
}

// Warn prints warning level message.
func (p *structuredLogger) Warn(msg string, fields ...string) {
	p.logger.WithFields(logrusFields(fields...)).Warn(msg)
}

// Error prints error level message.
func (p *structuredLogger) Error(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, err.Error())
	p.logger.WithFields(logrusFields(fields...)).Error(msg)
}

// Fatal prints fatal level message and exits.
func (p *structuredLogger) Fatal(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, err.Error())
	p.logger.WithFields(logrusFields(fields...)).Fatal(msg)
}

// Flush is not needed for logrus.
func (p *structuredLogger) Flush() {
}

// Converts variadic key/value pairs into logrus fields.
func logrusFields(fields ...string) logrus.Fields {
	result := logrus.Fields{}
	for k, v := range withFields(fields...) {
		result[k] = v
	}

	return result
}
