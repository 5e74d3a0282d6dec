// Package vlq implements the base64 variable-length quantity encoding used by
// source maps (https://sourcemaps.info/spec.html) to pack signed 32-bit
// integers into printable strings.
//
// Every integer becomes one group of base64 digits. Each digit carries 5 bits
// of payload, the 6th bit (32) tells that more digits of the same group
// follow. The lowest bit of the reassembled group is the sign.
//
//	Encode([]int32{123, 456, 789}) // "2HwcqxB"
//	Decode("2HwcqxB")              // [123 456 789]
package vlq

import (
	"errors"
	"fmt"
	"math"

	"github.com/blukai/vlq/internal/debug"
	"github.com/blukai/vlq/internal/zigzag"
)

// MinInt and MaxInt bound the integers that can be encoded.
const (
	MinInt = math.MinInt32
	MaxInt = math.MaxInt32
)

var (
	// ErrMalformed is matched (with errors.Is) by every decode failure.
	ErrMalformed = errors.New("vlq: malformed input")

	ErrInvalidChar = fmt.Errorf("%w: invalid character", ErrMalformed)
	ErrTruncated   = fmt.Errorf("%w: truncated group", ErrMalformed)

	ErrOutOfRange = errors.New("vlq: value out of int32 range")
)

func appendGroup(dst []byte, n int32) []byte {
	u := zigzag.Encode32(n)

	digits := 0
	for {
		digit := u & digitPayloadMask
		u >>= digitBits
		if u != 0 {
			digit |= continuationBit
		}
		dst = append(dst, encodeTable[digit])
		digits += 1

		if u == 0 {
			break
		}
	}
	debug.Assert(digits <= maxGroupDigits, "group is too long")

	return dst
}

// AppendEncode appends encoded values to dst and returns the extended
// buffer.
func AppendEncode(dst []byte, values ...int32) []byte {
	for _, n := range values {
		dst = appendGroup(dst, n)
	}
	return dst
}

// Encode concatenates groups of all values, in order, without separators. An
// empty values produces an empty string.
func Encode(values []int32) string {
	if len(values) == 0 {
		return ""
	}
	// most of source map values are small and fit into 1-2 digits
	return string(AppendEncode(make([]byte, 0, len(values)*2), values...))
}

// EncodeSingle is the same as Encode([]int32{n}).
func EncodeSingle(n int32) string {
	return string(appendGroup(make([]byte, 0, maxGroupDigits), n))
}

// EncodeInts is Encode for plain ints. Values outside of [MinInt, MaxInt] are
// rejected with ErrOutOfRange, nothing is encoded in that case.
func EncodeInts(values []int) (string, error) {
	dst := make([]byte, 0, len(values)*2)
	for i, n := range values {
		if n < MinInt || n > MaxInt {
			return "", fmt.Errorf("%w: values[%d] = %d", ErrOutOfRange, i, n)
		}
		dst = appendGroup(dst, int32(n))
	}
	return string(dst), nil
}

// Decode decodes every group of s. On failure it returns nil and an error
// wrapping ErrInvalidChar or ErrTruncated; a partial result is never
// returned. An empty s decodes to an empty, non-nil slice.
//
// Bits of an over-long group that don't fit into 32 bits are dropped.
func Decode(s string) ([]int32, error) {
	values := make([]int32, 0, len(s)/2)

	var (
		value uint32
		shift uint
		open  bool
	)
	for i := 0; i < len(s); i++ {
		digit := decodeTable[s[i]]
		if digit == invalidDigit {
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidChar, s[i], i)
		}

		value += uint32(digit&digitPayloadMask) << shift
		if digit&continuationBit != 0 {
			shift += digitBits
			open = true
			continue
		}

		values = append(values, zigzag.Decode32(value))
		value, shift, open = 0, 0, false
	}
	if open {
		return nil, fmt.Errorf("%w at offset %d", ErrTruncated, len(s))
	}

	return values, nil
}
