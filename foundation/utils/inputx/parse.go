// File: parse.go
// Title: Answer Parsing
// Description: Parsers for numeric and yes/no answers shared by the prompt
//              loops and the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-13
// Modified: 2025-02-13
//
// Change History:
// - 2025-02-13 v0.1.0: Initial implementation

package inputx

import (
	"reflect"
	"strconv"

	"golang.org/x/text/cases"
)

// Numeric is the set of types Number can parse.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ParseNumber parses s as T using the bit size of T, so "300" fails for
// uint8 and "-1" fails for any unsigned type.
func ParseNumber[T Numeric](s string) (T, error) {
	var out T
	v := reflect.ValueOf(&out).Elem()

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetUint(n)
	default:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return out, err
		}
		v.SetFloat(f)
	}
	return out, nil
}

var boolAnswers = map[string]bool{
	"yes": true, "y": true, "true": true, "t": true,
	"no": false, "n": false, "false": false, "f": false,
}

// ParseBool maps yes/y/true/t and no/n/false/f, in any case, to a bool.
func ParseBool(s string) (value, ok bool) {
	value, ok = boolAnswers[cases.Fold().String(s)]
	return value, ok
}

// BoolAnswers lists the accepted answers, true ones first.
func BoolAnswers() []string {
	return []string{"yes", "y", "true", "t", "no", "n", "false", "f"}
}
