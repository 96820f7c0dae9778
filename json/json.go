// Package json implements encoding and decoding of JSON by json-iterator,
// compatible with encoding/json.
//
// input documents written by humans may contain comments and trailing commas,
// use Standardize to turn them into standard json first.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

// API json-iterator config compatible with encoding/json
var API = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// Marshal marshal v to bytes
	Marshal = API.Marshal
	// MarshalIndent marshal v to bytes with indent
	MarshalIndent = API.MarshalIndent
	// Unmarshal unmarshal standard json
	Unmarshal = API.Unmarshal
)

// NewIterator create streaming iterator over standard json data,
// the iterator visits object fields in document order.
func NewIterator(data []byte) *jsoniter.Iterator {
	return jsoniter.ParseBytes(API, data)
}
