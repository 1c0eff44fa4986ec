package pathtext

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Path is the set of path-like types: anything with a string or byte-slice
// underlying type, covering plain paths and OS-native string wrappers.
type Path interface {
	~string | ~[]byte
}

// ErrInvalidEncoding reports that a path is not valid UTF-8.
var ErrInvalidEncoding = errors.New("path is not valid UTF-8")

// ConversionError is returned by String when the path contains bytes that do
// not form valid UTF-8. Path holds the lossy rendition of the offending
// value and Offset the index of the first invalid byte.
type ConversionError struct {
	Path   string
	Offset int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v at byte %d: %q", ErrInvalidEncoding, e.Offset, e.Path)
}

func (e *ConversionError) Unwrap() error {
	return ErrInvalidEncoding
}

// String converts a path-like value to text, failing if it is not valid
// UTF-8. Nothing is substituted or truncated: the caller asked for the exact
// text or an error, and gets exactly one of the two. Use LossyString when a
// best-effort rendition is acceptable.
func String[P Path](p P) (string, error) {
	s := string(p)
	if utf8.ValidString(s) {
		return s, nil
	}
	return "", &ConversionError{
		Path:   LossyString(s),
		Offset: invalidOffset(s),
	}
}

// LossyString converts a path-like value to text unconditionally. Each
// maximal invalid subpart is replaced with a single U+FFFD: a truncated
// multi-byte sequence counts as one subpart, while a stray lone byte is a
// subpart of its own. Valid runs are copied verbatim, so the output can be
// longer or shorter than a rune-per-rune mapping of the input.
func LossyString[P Path](p P) string {
	s := string(p)
	if utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(utf8.RuneError)
			i += invalidSubpartLen(s[i:])
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// invalidSubpartLen returns the length of the maximal invalid subpart at the
// start of s: the lead byte plus every continuation byte that still fits the
// sequence the lead announces. A byte that cannot lead a sequence is a
// one-byte subpart.
func invalidSubpartLen(s string) int {
	lo, hi := byte(0x80), byte(0xBF)
	var need int

	switch b0 := s[0]; {
	case b0 >= 0xC2 && b0 <= 0xDF:
		need = 1
	case b0 == 0xE0:
		need, lo = 2, 0xA0
	case b0 >= 0xE1 && b0 <= 0xEC, b0 == 0xEE, b0 == 0xEF:
		need = 2
	case b0 == 0xED:
		need, hi = 2, 0x9F
	case b0 == 0xF0:
		need, lo = 3, 0x90
	case b0 >= 0xF1 && b0 <= 0xF3:
		need = 3
	case b0 == 0xF4:
		need, hi = 3, 0x8F
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(s); n++ {
		if s[n] < lo || s[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return n
}

func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
