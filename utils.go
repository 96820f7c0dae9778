package utils

import (
	"io"
	"strings"
)

// Dedent removes the common leading indentation of every non-blank line,
// and trims the leading and trailing blank lines.
//
// useful to write long help text for cobra commands inside indented code.
func Dedent(v string) string {
	lines := strings.Split(v, "\n")

	prefix := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if prefix < 0 || indent < prefix {
			prefix = indent
		}
	}

	for i, line := range lines {
		if len(line) >= prefix && prefix > 0 {
			lines[i] = line[prefix:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// CloseQuietly closes io.Closer and ignores the error
func CloseQuietly(v io.Closer) {
	_ = v.Close()
}
