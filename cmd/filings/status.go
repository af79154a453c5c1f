package main

import (
	"fmt"
	"time"
)

const timeRounding = 10 * time.Millisecond

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
)

func renderStatusLine(label, message string, colorize bool) string {
	line := fmt.Sprintf("  %-12s [WARN] %s", label+":", message)
	if colorize {
		return ansiYellow + line + ansiReset
	}
	return line
}
