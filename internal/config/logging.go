package config

import (
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
)

func SetupLogger(level, format string) error {
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	logger.SetLevel(lvl)
	logger.SetOutput(os.Stdout)

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logger.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
