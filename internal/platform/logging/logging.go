package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a JSON logger at the given level. Unknown levels fall back
// to info rather than failing startup.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
