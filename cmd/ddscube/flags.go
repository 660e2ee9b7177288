package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/texforge/ddscube/internal/logger"
)

var (
	outputPath string
	logLevel   string
	logFormat  string
	debug      bool
)

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

// buildLogger resolves the effective logger from flags and the config file.
// Flags set explicitly on the command line win over config values.
func buildLogger(c *cli.Command, cfg Config) logger.Logger {
	level := logLevel
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		level = cfg.LogLevel
	}
	format := logFormat
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		format = cfg.LogFormat
	}
	if debug {
		level = "debug"
	}

	lv := logger.ParseLevel(level)
	switch format {
	case "json":
		return logger.JSON(os.Stderr, lv)
	case "text":
		return logger.Text(os.Stderr, lv)
	default:
		return logger.Pretty(os.Stderr, lv)
	}
}
