// =====================================
// Colorfy string by ANSI color
//
// inspired by github.com/fatih/color
// =====================================

package utils

import "fmt"

// Foreground text colors used by reports
const (
	ANSIColorFgRed    = 31
	ANSIColorFgGreen  = 32
	ANSIColorFgYellow = 33
)

// Color wrap with ANSI color
func Color(color int, s string) string {
	return fmt.Sprintf("\033[1;%dm%s\033[0m", color, s)
}

// Colorizer wraps strings with ANSI color only when enabled,
// the zero value is a no-op colorizer.
type Colorizer struct {
	Enabled bool
}

// Color wrap s with color if enabled
func (c Colorizer) Color(color int, s string) string {
	if !c.Enabled {
		return s
	}

	return Color(color, s)
}
