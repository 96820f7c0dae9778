package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal whether fp is attached to a terminal
func IsTerminal(fp *os.File) bool {
	if fp == nil {
		return false
	}

	return term.IsTerminal(int(fp.Fd()))
}
