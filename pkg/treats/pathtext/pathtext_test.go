package pathtext

import (
	"errors"
	"strings"
	"testing"
)

func TestString_ValidPath(t *testing.T) {
	t.Parallel()
	const path = "/path/to/whatever"

	out, err := String(path)
	if err != nil {
		t.Fatalf("expected success for valid path, got: %v", err)
	}
	if out != path {
		t.Fatalf("expected %q, got: %q", path, out)
	}
	if lossy := LossyString(path); lossy != out {
		t.Fatalf("expected strict and lossy output to agree on valid input, got: %q vs %q", out, lossy)
	}
}

func TestString_ValidUnicodePath(t *testing.T) {
	t.Parallel()
	const path = "/tmp/média/ファイル.txt"

	out, err := String(path)
	if err != nil || out != path {
		t.Fatalf("expected %q, got: %q, err=%v", path, out, err)
	}
}

func TestString_InvalidPath(t *testing.T) {
	t.Parallel()
	path := "/tmp/bad\xff/file"

	out, err := String(path)
	if err == nil {
		t.Fatalf("expected a conversion error, got: %q", out)
	}
	if out != "" {
		t.Fatalf("expected empty output on failure, got: %q", out)
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected error to wrap ErrInvalidEncoding, got: %v", err)
	}

	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected a *ConversionError, got: %T", err)
	}
	if convErr.Offset != 8 {
		t.Fatalf("expected offset 8, got: %d", convErr.Offset)
	}
	if convErr.Path != "/tmp/bad�/file" {
		t.Fatalf("expected lossy rendition in error, got: %q", convErr.Path)
	}
}

func TestLossyString_ReplacesInvalidBytes(t *testing.T) {
	t.Parallel()
	path := "/tmp/bad\xff/file"

	out := LossyString(path)
	if out != "/tmp/bad�/file" {
		t.Fatalf("expected invalid byte replaced with U+FFFD, got: %q", out)
	}
}

func TestLossyString_ReplacesEveryInvalidByte(t *testing.T) {
	t.Parallel()
	path := "a\xff\xfeb"

	out := LossyString(path)
	if out != "a��b" {
		t.Fatalf("expected one marker per invalid byte, got: %q", out)
	}
	if strings.Count(out, "�") != 2 {
		t.Fatalf("expected two markers, got: %q", out)
	}
}

func TestLossyString_TruncatedSequence(t *testing.T) {
	t.Parallel()
	// "é" is 0xC3 0xA9; a lone 0xC3 is an incomplete sequence.
	out := LossyString("caf\xc3")
	if out != "caf�" {
		t.Fatalf("expected truncated sequence replaced, got: %q", out)
	}
}

func TestLossyString_TruncatedMultiByteSequence(t *testing.T) {
	t.Parallel()
	// 0xF0 0x90 0x80 is a well-formed start of a four-byte sequence that
	// never completes: one subpart, one marker.
	out := LossyString("Hello \xf0\x90\x80World")
	if out != "Hello �World" {
		t.Fatalf("expected one marker for the truncated sequence, got: %q", out)
	}
}

func TestLossyString_InvalidContinuationByte(t *testing.T) {
	t.Parallel()
	// 0x28 cannot continue the sequence 0xF0 opens, so the subpart is the
	// lead byte alone and '(' survives.
	out := LossyString("\xf0\x28end")
	if out != "�(end" {
		t.Fatalf("expected lead byte replaced and '(' preserved, got: %q", out)
	}
}

func TestLossyString_SurrogateBytes(t *testing.T) {
	t.Parallel()
	// 0xED 0xA0 0x80 encodes a surrogate; 0xA0 is out of range after 0xED,
	// so every byte is its own subpart.
	out := LossyString("\xed\xa0\x80x")
	if out != "���x" {
		t.Fatalf("expected three markers for surrogate bytes, got: %q", out)
	}
}

func TestString_TruncatedSequenceErrorRendition(t *testing.T) {
	t.Parallel()
	_, err := String("Hello \xf0\x90\x80World")

	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected a *ConversionError, got: %v", err)
	}
	if convErr.Path != "Hello �World" {
		t.Fatalf("expected one marker in the lossy rendition, got: %q", convErr.Path)
	}
	if convErr.Offset != 6 {
		t.Fatalf("expected offset 6, got: %d", convErr.Offset)
	}
}

func TestLossyString_PreservesExistingMarker(t *testing.T) {
	t.Parallel()
	path := "x�y"
	if out := LossyString(path); out != path {
		t.Fatalf("expected literal U+FFFD preserved, got: %q", out)
	}
}

func TestLossyString_ByteSlice(t *testing.T) {
	t.Parallel()
	raw := []byte{'/', 'd', 0xff, '/', 'f'}

	out := LossyString(raw)
	if out != "/d�/f" {
		t.Fatalf("expected byte slice converted with replacement, got: %q", out)
	}

	if _, err := String(raw); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected strict conversion of invalid bytes to fail, got: %v", err)
	}
}

func TestString_EmptyPath(t *testing.T) {
	t.Parallel()
	out, err := String("")
	if err != nil || out != "" {
		t.Fatalf("expected empty path to convert cleanly, got: %q, err=%v", out, err)
	}
	if lossy := LossyString(""); lossy != "" {
		t.Fatalf("expected empty lossy output, got: %q", lossy)
	}
}

func TestString_DefinedStringType(t *testing.T) {
	t.Parallel()
	type osPath string

	out, err := String(osPath("/var/log"))
	if err != nil || out != "/var/log" {
		t.Fatalf("expected defined string type to convert, got: %q, err=%v", out, err)
	}
}
