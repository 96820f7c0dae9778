package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	type args struct {
		color int
		s     string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"fg-red", args{ANSIColorFgRed, "yo"}, "\033[1;31myo\033[0m"},
		{"fg-green", args{ANSIColorFgGreen, "ok"}, "\033[1;32mok\033[0m"},
		{"fg-yellow", args{ANSIColorFgYellow, "hmm"}, "\033[1;33mhmm\033[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Color(tt.args.color, tt.args.s); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorizer(t *testing.T) {
	t.Parallel()

	require.Equal(t, "plain", Colorizer{}.Color(ANSIColorFgRed, "plain"))
	require.Equal(t, Color(ANSIColorFgRed, "red"), Colorizer{Enabled: true}.Color(ANSIColorFgRed, "red"))
}
