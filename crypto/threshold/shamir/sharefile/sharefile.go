// Package sharefile decodes share files
//
// A share file is a JSON object, comments and trailing commas are allowed:
//
//	{
//	    // n is advisory, k is the threshold
//	    "keys": {"n": 4, "k": 3},
//	    "1": {"base": "10", "value": "4"},
//	    "2": {"base": "2", "value": "111"},
//	}
//
// every key made of decimal digits, optionally signed, is the x of one share,
// its value holds y encoded in base 2 to 36. Other keys are ignored.
// x must be positive, written without sign, and fit in int64.
package sharefile

import (
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	jsoniter "github.com/json-iterator/go"

	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
	"github.com/Laisky/shamir-audit/json"
	"github.com/Laisky/shamir-audit/log"
)

const (
	keysField  = "keys"
	nField     = "n"
	kField     = "k"
	baseField  = "base"
	valueField = "value"

	minBase = 2
	maxBase = 36
)

// Document decoded share file
type Document struct {
	// N declared number of shares, 0 if absent
	N int
	// K threshold, 0 if absent
	K int
	// Shares in document order
	Shares []shamir.Share
}

// Load read and decode the share file at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read share file %q", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse share file %q", path)
	}

	return doc, nil
}

// Parse decode a share file, shares keep the order they appear in data.
//
// Shares are validated by shamir.NewShareSet.
func Parse(data []byte) (*Document, error) {
	data, err := json.Standardize(append([]byte(nil), data...))
	if err != nil {
		return nil, err
	}

	logger := log.Shared.Named("sharefile")
	iter := json.NewIterator(data)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.Errorf("share file should be a json object")
	}

	doc := new(Document)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		if field == keysField {
			err = doc.readKeys(it)
			return err == nil
		}

		if !isShareKey(field) {
			logger.Debug("skip non-share field", zap.String("field", field))
			it.Skip()
			return true
		}

		x, xerr := parseAbscissa(field)
		if xerr != nil {
			err = xerr
			return false
		}

		y, rerr := readOrdinate(it)
		if rerr != nil {
			err = errors.Wrapf(rerr, "share %q", field)
			return false
		}

		doc.Shares = append(doc.Shares, shamir.Share{X: x, Y: y})
		return true
	})
	if err != nil {
		return nil, err
	}
	if iter.Error != nil {
		return nil, errors.Wrap(iter.Error, "decode share file")
	}

	if _, err = shamir.NewShareSet(doc.Shares...); err != nil {
		return nil, errors.Wrap(err, "validate shares")
	}

	logger.Debug("parsed share file",
		zap.Int("n", doc.N),
		zap.Int("k", doc.K),
		zap.Int("shares", len(doc.Shares)))
	return doc, nil
}

// isShareKey whether field is a signed or unsigned decimal integer
func isShareKey(field string) bool {
	digits := strings.TrimLeft(field, "+-")
	if len(field)-len(digits) > 1 || digits == "" {
		return false
	}

	return strings.Trim(digits, "0123456789") == ""
}

func parseAbscissa(field string) (int64, error) {
	if field[0] == '+' {
		return 0, errors.Wrapf(shamir.ErrInvalidAbscissa, "share %q should not carry a sign", field)
	}

	x, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(shamir.ErrInvalidAbscissa, "share %q: %v", field, err)
	}
	if x <= 0 {
		return 0, errors.Wrapf(shamir.ErrInvalidAbscissa, "share %q", field)
	}

	return x, nil
}

func (d *Document) readKeys(it *jsoniter.Iterator) (err error) {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		return errors.Errorf("%q should be an object", keysField)
	}

	it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		var target *int
		switch field {
		case nField:
			target = &d.N
		case kField:
			target = &d.K
		default:
			it.Skip()
			return true
		}

		v, ierr := anyToInt(it.ReadAny())
		if ierr != nil {
			err = errors.Wrapf(ierr, "%s.%s", keysField, field)
			return false
		}

		*target = int(v)
		return true
	})

	return err
}

// readOrdinate read {"base": ..., "value": ...}
func readOrdinate(it *jsoniter.Iterator) (*big.Int, error) {
	if it.WhatIsNext() != jsoniter.ObjectValue {
		return nil, errors.Errorf("share should be an object with %q and %q", baseField, valueField)
	}

	var (
		base     int64
		value    string
		hasValue bool
		err      error
	)
	it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch field {
		case baseField:
			if base, err = anyToInt(it.ReadAny()); err != nil {
				err = errors.Wrap(err, baseField)
				return false
			}
		case valueField:
			value = strings.TrimSpace(it.ReadAny().ToString())
			hasValue = true
		default:
			it.Skip()
		}

		return true
	})
	if err != nil {
		return nil, err
	}

	switch {
	case base < minBase || base > maxBase:
		return nil, errors.Errorf("base should be in [%d, %d], got %d", minBase, maxBase, base)
	case !hasValue || value == "":
		return nil, errors.Errorf("missing %q", valueField)
	}

	y, ok := new(big.Int).SetString(value, int(base))
	if !ok {
		return nil, errors.Errorf("%q is not a base %d number", value, base)
	}

	return y, nil
}

// anyToInt accept a json integer or a string holding one
func anyToInt(v jsoniter.Any) (int64, error) {
	switch v.ValueType() {
	case jsoniter.NumberValue, jsoniter.StringValue:
		s := strings.TrimSpace(v.ToString())
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, errors.Errorf("%q is not an integer", s)
		}

		return n, nil
	default:
		return 0, errors.Errorf("expect integer, got %s", v.ToString())
	}
}
