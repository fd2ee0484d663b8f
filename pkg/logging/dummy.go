package logging

import "context"

// DummyLogger drops everything. Hand it to chatty dependencies that demand a
// logger when logging is disabled.
type DummyLogger struct{}

func (d DummyLogger) WithContext(context.Context) Logger { return d }
func (d DummyLogger) WithField(string, interface{}) Logger { return d }
func (d DummyLogger) WithFields(Fields) Logger { return d }
func (d DummyLogger) WithError(error) Logger { return d }
func (d DummyLogger) Trace(...interface{}) {}
func (d DummyLogger) Debug(...interface{}) {}
func (d DummyLogger) Info(...interface{}) {}
func (d DummyLogger) Warn(...interface{}) {}
func (d DummyLogger) Error(...interface{}) {}
func (d DummyLogger) Fatal(...interface{}) {}
func (d DummyLogger) Tracef(string, ...interface{}) {}
func (d DummyLogger) Debugf(string, ...interface{}) {}
func (d DummyLogger) Infof(string, ...interface{}) {}
func (d DummyLogger) Warnf(string, ...interface{}) {}
func (d DummyLogger) Errorf(string, ...interface{}) {}
func (d DummyLogger) Fatalf(string, ...interface{}) {}
func (d DummyLogger) IsTracing() bool { return false }
func (d DummyLogger) IsDebugging() bool { return false }
