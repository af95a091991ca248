package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUndefined      = errors.New("undefined")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrOutOfRange     = errors.New("out of range")
	ErrMarshalling    = errors.New("unserialisable")
)

func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether an error corresponds to one of the
// descriptions, looking at both the error message and its chain.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	msg := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(msg, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// New returns an error wrapping the targetError sentinel so that
// errors.Is(err, targetError) holds, with a description appended.
func New(targetError error, description string) error {
	return fmt.Errorf("%w: %v", targetError, description)
}

// Newf is similar to New but accepts a format specifier.
func Newf(targetError error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", targetError, fmt.Sprintf(format, args...))
}

// Ignore returns nil if the error matches one of the target errors, the
// error itself otherwise.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}
