// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

// Setup installs a console logger writing to w at the given level.
// Unknown levels fall back to info.
func Setup(level string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	color := false
	if f, ok := w.(*os.File); ok {
		color = log.IsTerminal(f.Fd())
	}

	lvl := log.ParseLevel(level)
	if level == "" {
		lvl = log.InfoLevel
	}

	log.DefaultLogger = log.Logger{
		Level:      lvl,
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:      w,
			ColorOutput: color,
			QuoteString: true,
		},
	}
}
