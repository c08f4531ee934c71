package tinyinput

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed read.
type ErrorKind int

const (
	// KindIO means the input stream could not produce a line.
	KindIO ErrorKind = iota + 1
	// KindParse means a line was read but could not be converted to the target type.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	// ErrParse matches every KindParse error with errors.Is.
	ErrParse = errors.New("tinyinput: invalid input")

	// ErrInvalidUTF8 is the cause of a KindIO error for a line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

	errUnsupportedType = errors.New("type has no string conversion")
)

// ReadError is the only error type returned by the read functions.
//
// For KindIO, Err holds the underlying failure (io.EOF when the stream ended
// before a line arrived). For KindParse, Err is always nil: why the conversion
// failed is not reported.
type ReadError struct {
	Kind ErrorKind
	Err  error
}

func (e *ReadError) Error() string {
	if e.Kind == KindParse {
		return ErrParse.Error()
	}
	return fmt.Sprintf("tinyinput: read failed: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Is(target error) bool {
	return e.Kind == KindParse && target == ErrParse
}

func ioError(err error) error {
	return &ReadError{Kind: KindIO, Err: err}
}

func parseError() error {
	return &ReadError{Kind: KindParse}
}

// IsIO reports whether err is a KindIO read error.
func IsIO(err error) bool {
	var re *ReadError
	return errors.As(err, &re) && re.Kind == KindIO
}

// IsParse reports whether err is a KindParse read error.
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}
