package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

// logLevelFlag implements flag.Value for setting a slog level.
type logLevelFlag struct {
	value slog.Level
}

var _ flag.Value = (*logLevelFlag)(nil)

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"ERROR": slog.LevelError,
	}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	l.value = v
	return nil
}
