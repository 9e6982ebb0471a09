package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/scalaxyz/hausnation-backend/models"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

var logPath, _ = filepath.Abs("./data")
var logFile = filepath.Join(logPath, "hausnation.log")

// InitLogger configures the shared logrus instance from the config file.
// Logs go to both stdout and data/hausnation.log.
func InitLogger(config models.ConfigStruct) {
	level, err := logrus.ParseLevel(config.HausnationLogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	err = os.MkdirAll(logPath, os.ModePerm)
	if err != nil {
		Log.Error("failed to create directory for log file. error: " + err.Error())
		return
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Log.Error("failed to open log file, logging to stdout only. error: " + err.Error())
		return
	}

	Log.SetOutput(io.MultiWriter(os.Stdout, file))
}
