package address

import (
	"errors"
	"fmt"
)

var (
	ErrNotAString    = errors.New("address must be a string")
	ErrInvalidLength = errors.New("invalid address length")
	ErrInvalidHex    = errors.New("invalid hex characters in address")
)

// LengthError reports the body length observed after prefix stripping.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: expected %d hex chars, got %d", ErrInvalidLength, BodyLength, e.Length)
}

func (e *LengthError) Is(err error) bool {
	return err == ErrInvalidLength
}

type Kind int

const (
	KindUnknown Kind = iota
	KindNotAString
	KindInvalidLength
	KindInvalidHex
)

func (k Kind) String() string {
	switch k {
	case KindNotAString:
		return "not_a_string"
	case KindInvalidLength:
		return "invalid_length"
	case KindInvalidHex:
		return "invalid_hex"
	default:
		return "unknown"
	}
}

// KindOf classifies an error returned by this package, looking through wraps.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotAString):
		return KindNotAString
	case errors.Is(err, ErrInvalidLength):
		return KindInvalidLength
	case errors.Is(err, ErrInvalidHex):
		return KindInvalidHex
	default:
		return KindUnknown
	}
}
