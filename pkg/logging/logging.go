// Package logging configures the structured logger shared by the optimizer,
// exposure controller, batch driver, and HTTP server.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// Init initializes the package-level structured logger. logLevel, when
// empty, falls back to LOG_LEVEL or a development/production default.
func Init(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("invalid LOG_LEVEL, using info")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)

	logger = log
	return log
}

// Get returns the package-level logger, initializing it with defaults if
// Init has not been called yet.
func Get() *logrus.Logger {
	if logger == nil {
		return Init("info", false)
	}
	return logger
}

// WithOptimizationContext returns a log entry carrying the identifiers that
// tie a constraint-building or solve event back to one batch run.
func WithOptimizationContext(optimizationID, sport, site string) *logrus.Entry {
	return Get().WithFields(logrus.Fields{
		"optimization_id": optimizationID,
		"sport":           sport,
		"site":            site,
	})
}

// WithBatchContext returns a log entry carrying a batch run's identifier and
// the index of the lineup currently being solved within it.
func WithBatchContext(optimizationID string, index, total int) *logrus.Entry {
	return Get().WithFields(logrus.Fields{
		"optimization_id": optimizationID,
		"batch_index":     index,
		"batch_total":     total,
	})
}

// WithHTTPContext returns a log entry carrying request method/path context.
func WithHTTPContext(method, path string) *logrus.Entry {
	return Get().WithFields(logrus.Fields{
		"http_method": method,
		"http_path":   path,
	})
}
