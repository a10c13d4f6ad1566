package log

import (
	"io"
	"os"

	"github.com/jesseduffield/pathcheck/pkg/config"
	"github.com/jesseduffield/pathcheck/pkg/inputs"
	"github.com/sirupsen/logrus"
)

const developmentLogFilename = "development.log"

// NewLogger returns a new logger. The returned closer releases the development
// log file, if one was opened.
func NewLogger(config *config.AppConfig) (*logrus.Entry, io.Closer, error) {
	var log *logrus.Logger
	var closer io.Closer = nopCloser{}
	if config.Debug || os.Getenv("DEBUG") == "TRUE" {
		var file *os.File
		var err error
		log, file, err = newDevelopmentLogger(config)
		if err != nil {
			return nil, nil, err
		}
		closer = file
	} else {
		log = newProductionLogger()
	}

	// highly recommended: tail -f development.log | humanlog
	// https://github.com/aybabtme/humanlog
	log.Formatter = &logrus.JSONFormatter{}

	return log.WithFields(logrus.Fields{
		"debug":      config.Debug,
		"version":    config.Version,
		"commit":     config.Commit,
		"buildDate":  config.BuildDate,
		"configFile": config.ConfigFilename(),
	}), closer, nil
}

func getLogLevel() logrus.Level {
	strLevel := os.Getenv("LOG_LEVEL")
	level, err := logrus.ParseLevel(strLevel)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

func newDevelopmentLogger(config *config.AppConfig) (*logrus.Logger, *os.File, error) {
	log := logrus.New()
	log.SetLevel(getLogLevel())
	file, err := inputs.NewValidator(nil, config.ConfigDir).OpenAppend(developmentLogFilename, 0o666)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(file)
	return log, file, nil
}

func newProductionLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.ErrorLevel)
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
