package parser

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// For returns the parser tinyinput uses when the caller names only a type.
// The boolean is false when T has no string conversion.
func For[T any]() (Parser[T], bool) {
	if p, ok := builtin[T](); ok {
		return p, true
	}

	var zero T
	if _, ok := any(&zero).(encoding.TextUnmarshaler); ok {
		return Func(func(value string) (T, error) {
			var v T
			if err := any(&v).(encoding.TextUnmarshaler).UnmarshalText([]byte(value)); err != nil {
				var zero T
				return zero, err
			}
			return v, nil
		}), true
	}

	return byKind[T]()
}

// MustFor is like For but panics when T has no string conversion.
func MustFor[T any]() Parser[T] {
	p, ok := For[T]()
	if !ok {
		panic(fmt.Sprintf("parser: no string conversion for %v", reflect.TypeFor[T]()))
	}
	return p
}

func builtin[T any]() (Parser[T], bool) {
	var zero T
	var p any
	switch any(zero).(type) {
	case string:
		p = NewStringParser()
	case bool:
		p = NewBoolParser()
	case int:
		p = NewIntParser[int]()
	case int8:
		p = NewIntParser[int8]()
	case int16:
		p = NewIntParser[int16]()
	case int32:
		p = NewIntParser[int32]()
	case int64:
		p = NewIntParser[int64]()
	case uint:
		p = NewUintParser[uint]()
	case uint8:
		p = NewUintParser[uint8]()
	case uint16:
		p = NewUintParser[uint16]()
	case uint32:
		p = NewUintParser[uint32]()
	case uint64:
		p = NewUintParser[uint64]()
	case uintptr:
		p = NewUintParser[uintptr]()
	case float32:
		p = NewFloatParser[float32]()
	case float64:
		p = NewFloatParser[float64]()
	case complex64:
		p = NewComplexParser[complex64]()
	case complex128:
		p = NewComplexParser[complex128]()
	case time.Duration:
		p = NewDurationParser()
	case []byte:
		p = Func(func(value string) ([]byte, error) { return []byte(value), nil })
	case *big.Int:
		p = Func(func(value string) (*big.Int, error) {
			n, ok := new(big.Int).SetString(strings.TrimSpace(value), 0)
			if !ok {
				return nil, fmt.Errorf("invalid integer %q", value)
			}
			return n, nil
		})
	case *big.Float:
		p = Func(func(value string) (*big.Float, error) {
			f, ok := new(big.Float).SetString(strings.TrimSpace(value))
			if !ok {
				return nil, fmt.Errorf("invalid number %q", value)
			}
			return f, nil
		})
	default:
		return nil, false
	}
	return p.(Parser[T]), true
}

// byKind handles named types such as `type Port uint16` through reflection.
func byKind[T any]() (Parser[T], bool) {
	rt := reflect.TypeFor[T]()

	var conv func(value string, rv reflect.Value) error
	switch rt.Kind() {
	case reflect.String:
		conv = func(value string, rv reflect.Value) error {
			rv.SetString(value)
			return nil
		}
	case reflect.Bool:
		conv = func(value string, rv reflect.Value) error {
			b, err := strconv.ParseBool(strings.TrimSpace(value))
			rv.SetBool(b)
			return err
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		conv = func(value string, rv reflect.Value) error {
			n, err := strconv.ParseInt(strings.TrimSpace(value), 10, rt.Bits())
			rv.SetInt(n)
			return err
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		conv = func(value string, rv reflect.Value) error {
			n, err := strconv.ParseUint(strings.TrimSpace(value), 10, rt.Bits())
			rv.SetUint(n)
			return err
		}
	case reflect.Float32, reflect.Float64:
		conv = func(value string, rv reflect.Value) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(value), rt.Bits())
			rv.SetFloat(f)
			return err
		}
	default:
		return nil, false
	}

	return Func(func(value string) (T, error) {
		var v T
		if err := conv(value, reflect.ValueOf(&v).Elem()); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}), true
}
