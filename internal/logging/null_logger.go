package logging

import "github.com/vvka-141/bbgen/pkg/bbgen"

var _ bbgen.Logger = (*NullLogger)(nil)

// NullLogger drops every message. Tests hand it to collectors and writers
// that require a bbgen.Logger.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (*NullLogger) Verbose(string, ...interface{}) {}

func (*NullLogger) Info(string, ...interface{}) {}

func (*NullLogger) Error(string, ...interface{}) {}
