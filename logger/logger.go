package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init is called.
var Log = logrus.New()

// Init configures the global logger.
// level is any logrus level name ("debug", "info", ...), unknown values fall back to info.
// format "json" selects the JSON formatter, anything else the text formatter.
func Init(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// InitFromEnv reads LOG_LEVEL and LOG_FORMAT, defaulting to "info" and "text".
func InitFromEnv() {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	Init(level, os.Getenv("LOG_FORMAT"))
}

// Silence discards all output. Used by tests.
func Silence() {
	Log.SetOutput(io.Discard)
}
