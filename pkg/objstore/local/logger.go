package local

import (
	"strings"

	"github.com/treeverse/revwalk/pkg/logging"
)

// BadgerLogger adapts our Logger to badger's logging interface.
type BadgerLogger struct {
	logging.Logger
}

func (l *BadgerLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Errorf(strings.TrimSuffix(format, "\n"), args...)
}

func (l *BadgerLogger) Warningf(format string, args ...interface{}) {
	l.Logger.Warnf(strings.TrimSuffix(format, "\n"), args...)
}

func (l *BadgerLogger) Infof(format string, args ...interface{}) {
	l.Logger.Infof(strings.TrimSuffix(format, "\n"), args...)
}

func (l *BadgerLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debugf(strings.TrimSuffix(format, "\n"), args...)
}
