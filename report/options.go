package report

import "github.com/Laisky/errors/v2"

const defaultRankingLimit = 5

type option struct {
	color        bool
	rankingLimit int
}

func (o *option) fillDefault() *option {
	o.rankingLimit = defaultRankingLimit
	return o
}

func (o *option) applyOpts(optfs ...Option) (*option, error) {
	for _, optf := range optfs {
		if err := optf(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Option optional arguments for the text report
type Option func(*option) error

// WithColor colorize the transcript by ANSI escapes
func WithColor(enable bool) Option {
	return func(o *option) error {
		o.color = enable
		return nil
	}
}

// WithRankingLimit list at most n runner-up secrets, 0 hides them.
// default is 5.
func WithRankingLimit(n int) Option {
	return func(o *option) error {
		if n < 0 {
			return errors.Errorf("ranking limit should not be negative, got %d", n)
		}

		o.rankingLimit = n
		return nil
	}
}
