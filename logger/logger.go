package logger

import (
	"io"
	"os"
	"path/filepath"

	"DESTool/configloader"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// NewLogger returns the application logger. In debug mode it writes JSON
// to development.log in the config dir, otherwise it discards everything
// below error level.
func NewLogger(config *configloader.AppConfig) (*logrus.Entry, error) {
	var log *logrus.Logger
	if config.Debug {
		var err error
		log, err = newDevelopmentLogger(config)
		if err != nil {
			return nil, err
		}
	} else {
		log = newProductionLogger()
	}

	log.Formatter = &logrus.JSONFormatter{}

	return log.WithFields(logrus.Fields{
		"debug":   config.Debug,
		"version": config.Version,
	}), nil
}

func getLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

func newDevelopmentLogger(config *configloader.AppConfig) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(getLogLevel())
	file, err := os.OpenFile(filepath.Join(config.ConfigDir, "development.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, errors.Errorf("unable to log to file: %v", err)
	}
	log.SetOutput(file)
	return log, nil
}

func newProductionLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.ErrorLevel)
	return log
}
