package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// Init creates the package level logger, reading the level from
// LOG_LEVEL and defaulting to info on a missing or invalid value.
func Init() {
	Logger = logrus.New()
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

func init() {
	Init()
}
