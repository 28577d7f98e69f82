// Package utils holds driver-side helpers shared by the lvflow commands.
package utils

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
	colorBold    = 1
	colorGray    = 90
)

func colorize(s any, c int, noColor bool) string {
	if noColor {
		return fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// Level maps a -v count onto a zerolog level: 0 is Info, 1 is Debug and
// anything higher is Trace. Negative values silence everything below Warn.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity < 0:
		return zerolog.WarnLevel
	case verbosity == 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger returns a console logger writing to out at the level chosen by
// verbosity. Lines read `HH:MM:SS | LEVEL | message key=value`.
func SetupLogger(out io.Writer, verbosity int, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: noColor}
	cw.FormatLevel = func(i any) string { return formatLevel(i, noColor) }
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}

	return zerolog.New(cw).Level(Level(verbosity)).With().Timestamp().Logger()
}

func formatLevel(i any, noColor bool) string {
	ll, ok := i.(string)
	if !ok {
		if i == nil {
			return colorize("| ???   |", colorBold, noColor)
		}
		return strings.ToUpper(fmt.Sprintf("| %-5s |", i))
	}

	switch ll {
	case zerolog.LevelTraceValue:
		return colorize("| TRACE |", colorMagenta, noColor)
	case zerolog.LevelDebugValue:
		return colorize("| DEBUG |", colorYellow, noColor)
	case zerolog.LevelInfoValue:
		return colorize("| INFO  |", colorGreen, noColor)
	case zerolog.LevelWarnValue:
		return colorize("| WARN  |", colorRed, noColor)
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return colorize(colorize("| "+strings.ToUpper(ll)+" |", colorRed, noColor), colorBold, noColor)
	default:
		return colorize(ll, colorGray, noColor)
	}
}

// Millis renders d as fractional milliseconds, the unit the driver reports.
func Millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000.0, 'f', 3, 64)
}
