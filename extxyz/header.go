// SPDX-License-Identifier: MIT

package extxyz

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"
)

// header is the typed view of the recognised comment-line keys.
type header struct {
	Energy       *float64  `mapstructure:"energy"`
	Multiplicity int       `mapstructure:"multiplicity"`
	Frequencies  []float64 `mapstructure:"frequencies"`
	Symmetry     int       `mapstructure:"symmetry"`
	Moments      []float64 `mapstructure:"moments"`
}

// parseInfo splits an Extended XYZ comment line into lower-cased keys.
// Values are a string, a []string when they hold several whitespace
// separated words or none at all, or true for a bare flag.
func parseInfo(line string) (map[string]any, error) {
	info := make(map[string]any)
	rs := []rune(line)
	n := len(rs)
	k := 0
	for k < n {
		if unicode.IsSpace(rs[k]) {
			k++
			continue
		}
		start := k
		for k < n && rs[k] != '=' && !unicode.IsSpace(rs[k]) {
			k++
		}
		key := strings.ToLower(string(rs[start:k]))
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrMalformed, line)
		}
		if k >= n || rs[k] != '=' {
			info[key] = true
			continue
		}
		k++ // '='

		var raw string
		if k < n && rs[k] == '"' {
			end := k + 1
			for end < n && rs[end] != '"' {
				end++
			}
			if end >= n {
				return nil, fmt.Errorf("%w: unterminated quote for %q", ErrMalformed, key)
			}
			raw = string(rs[k+1 : end])
			k = end + 1
		} else {
			start = k
			for k < n && !unicode.IsSpace(rs[k]) {
				k++
			}
			raw = string(rs[start:k])
		}

		switch words := strings.Fields(raw); len(words) {
		case 0:
			info[key] = []string{}
		case 1:
			info[key] = words[0]
		default:
			info[key] = words
		}
	}

	return info, nil
}

// integralString lets "3" and "3.0" both decode into an int field.
func integralString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}
	v, err := strconv.ParseFloat(data.(string), 64)
	if err != nil {
		return data, nil
	}
	if v != math.Trunc(v) {
		return nil, fmt.Errorf("%q is not an integer", data)
	}

	return int(v), nil
}

// decodeHeader fills a header from info, applying the defaults for absent
// optional keys.
func decodeHeader(info map[string]any) (header, error) {
	h := header{Multiplicity: 1, Symmetry: 1}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       integralString,
		WeaklyTypedInput: true,
		Result:           &h,
	})
	if err != nil {
		return h, err
	}
	if err = dec.Decode(info); err != nil {
		return h, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return h, nil
}
