// Package common contains shared data available for all light integrations.
package common

// ILoggerProvider defines logger which will be passed to every subsystem.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
	Flush()
}

// ISettings describes interface used by every configurable component.
// After un-marshaling raw config, internal validation is invoked
// and then this method is called.
type ISettings interface {
	Validate() error
}
