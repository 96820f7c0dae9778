package json

import (
	"github.com/Laisky/errors/v2"
	"github.com/tailscale/hujson"
)

// Standardize strips comments and trailing commas, returns standard json
//
// the input may be modified in place.
func Standardize(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, errors.Wrap(err, "parse hujson")
	}

	ast.Standardize()
	return ast.Pack(), nil
}
