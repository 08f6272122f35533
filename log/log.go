package log

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

var base = newBase()

func newBase() *log.Logger {
	l := log.New()
	l.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	l.SetOutput(os.Stderr)
	l.SetLevel(log.WarnLevel)
	return l
}

// NewLogger returns a logger tagged with the module name. All loggers share
// one base, so SetLevel and SetFormat apply to every module.
func NewLogger(module string) *Logger {
	return &Logger{base.WithField("name", module)}
}

func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func SetFormat(format string) error {
	switch format {
	case "", "text":
		base.SetFormatter(&log.TextFormatter{})
	case "json":
		base.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
