package partitioning

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger is shared by the geometry packages. It only reports warnings
// unless replaced through SetLogger.
var logger logrus.FieldLogger = &logrus.Logger{
	Out:       os.Stderr,
	Formatter: &logrus.TextFormatter{DisableTimestamp: true},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.WarnLevel,
}

// SetLogger replaces the logger used by the geometry packages. A nil logger
// is ignored.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the logger used by the geometry packages.
func Logger() logrus.FieldLogger {
	return logger
}
