package config

import (
	"github.com/Laisky/errors/v2"

	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
)

// Audit settings of one audit run
type Audit struct {
	Input      string
	// Threshold overrides the k declared by the share file when > 0
	Threshold  int
	Workers    int
	MaxSubsets uint64
	TieBreak   shamir.TieBreak
	Format     string
	Color      string
	Watch      bool
}

// Audit read and validate audit settings
func (s *config) Audit() (*Audit, error) {
	a := &Audit{
		Input:      s.GetString(KeyInput),
		Threshold:  s.GetInt(KeyThreshold),
		Workers:    s.GetInt(KeyWorkers),
		MaxSubsets: s.GetUint64(KeyMaxSubsets),
		Format:     s.GetString(KeyFormat),
		Color:      s.GetString(KeyColor),
		Watch:      s.GetBool(KeyWatch),
	}

	var err error
	if a.TieBreak, err = shamir.ParseTieBreak(s.GetString(KeyTieBreak)); err != nil {
		return nil, errors.Wrap(err, KeyTieBreak)
	}

	switch {
	case a.Input == "":
		return nil, errors.Errorf("%s should not be empty", KeyInput)
	case a.Threshold < 0:
		return nil, errors.Errorf("%s should not be negative, got %d", KeyThreshold, a.Threshold)
	case a.Workers < 1:
		return nil, errors.Errorf("%s should be at least 1, got %d", KeyWorkers, a.Workers)
	}

	switch a.Format {
	case FormatText, FormatJSON:
	default:
		return nil, errors.Errorf("unknown %s %q", KeyFormat, a.Format)
	}

	switch a.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, errors.Errorf("unknown %s %q", KeyColor, a.Color)
	}

	return a, nil
}

// Options engine options of the audit
func (a *Audit) Options() []shamir.Option {
	return []shamir.Option{
		shamir.WithWorkers(a.Workers),
		shamir.WithMaxSubsets(a.MaxSubsets),
		shamir.WithTieBreak(a.TieBreak),
	}
}
