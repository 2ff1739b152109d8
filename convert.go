package cmdline

import (
	"encoding"
	"fmt"
	"strconv"
	"time"
)

// ValueHandler receives a raw token of a named or positional argument.
// A returned error is reported as ErrInvalidValue.
type ValueHandler func(token string) error

// Converter converts a raw token to a value of type T
type Converter[T any] func(token string) (T, error)

var (
	String   Converter[string]        = func(token string) (string, error) { return token, nil }
	Int      Converter[int]           = strconv.Atoi
	Int64    Converter[int64]         = func(token string) (int64, error) { return strconv.ParseInt(token, 10, 64) }
	Uint     Converter[uint]          = parseUint
	Uint64   Converter[uint64]        = func(token string) (uint64, error) { return strconv.ParseUint(token, 10, 64) }
	Float64  Converter[float64]       = func(token string) (float64, error) { return strconv.ParseFloat(token, 64) }
	Bool     Converter[bool]          = strconv.ParseBool
	Duration Converter[time.Duration] = time.ParseDuration
)

func parseUint(token string) (uint, error) {
	v, err := strconv.ParseUint(token, 10, 0)
	return uint(v), err
}

// Text returns a Converter for types whose pointer implements encoding.TextUnmarshaler
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Converter[T] {
	return func(token string) (T, error) {
		var v T
		err := PT(&v).UnmarshalText([]byte(token))
		return v, err
	}
}

// Handle binds `convert` and `callback`: the callback is called with the converted token
// if conversion succeeds
func Handle[T any](convert Converter[T], callback func(T)) ValueHandler {
	return func(token string) error {
		v, err := convert(token)
		if err != nil {
			return err
		}
		if callback != nil {
			callback(v)
		}
		return nil
	}
}

// Set stores the converted token to `p`
func Set[T any](convert Converter[T], p *T) ValueHandler {
	return Handle(convert, func(v T) {
		*p = v
	})
}

// HandleString passes the raw token to `callback`
func HandleString(callback func(string)) ValueHandler {
	return Handle(String, callback)
}

// Allowed formats typed values for RestrictedTo. Tokens are compared with the
// fmt.Sprint representation of the values.
func Allowed[T any](values ...T) []string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = fmt.Sprint(v)
	}
	return res
}
