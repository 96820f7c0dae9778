package config

import "runtime"

// Keys of settings, command line flags share the same names
const (
	KeyDebug      = "debug"
	KeyConfig     = "config"
	KeyInput      = "input"
	KeyThreshold  = "threshold"
	KeyWorkers    = "workers"
	KeyMaxSubsets = "max_subsets"
	KeyTieBreak   = "tie_break"
	KeyFormat     = "format"
	KeyColor      = "color"
	KeyWatch      = "watch"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultInput share file read when no input is configured
const DefaultInput = "input.json"

// SetDefaults set default values of all keys
func (s *config) SetDefaults() {
	s.SetDefault(KeyDebug, false)
	s.SetDefault(KeyInput, DefaultInput)
	s.SetDefault(KeyThreshold, 0)
	s.SetDefault(KeyWorkers, runtime.NumCPU())
	s.SetDefault(KeyMaxSubsets, 0)
	s.SetDefault(KeyTieBreak, "smallest")
	s.SetDefault(KeyFormat, FormatText)
	s.SetDefault(KeyColor, ColorAuto)
	s.SetDefault(KeyWatch, false)
}
