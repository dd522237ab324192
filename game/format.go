package game

import "fmt"

// FormatMillis renders milliseconds as SS.cc, seconds are not wrapped at a minute
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d.%02d", ms/1000, (ms%1000)/10)
}

// FormatBest renders an optional best time, absent records show as -.--
func FormatBest(ms *int64) string {
	if ms == nil {
		return "-.--"
	}
	return FormatMillis(*ms)
}
