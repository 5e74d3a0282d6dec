package vlq

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// mappings field of a source map: generated lines are separated by ';',
// segments of a line by ','. every segment is a vlq string of 1, 4 or 5
// values, but that's not enforced here.
const (
	lineSep    = ';'
	segmentSep = ','
)

// DecodeMappings decodes every segment of a source map mappings string. The
// result is indexed by [line][segment]. Empty lines have no segments.
//
// All malformed segments are reported at once; the returned error is a
// *multierror.Error and each of its errors wraps ErrMalformed.
func DecodeMappings(s string) ([][][]int32, error) {
	lines := strings.Split(s, string(lineSep))
	decoded := make([][][]int32, len(lines))

	var errs *multierror.Error
	for l, line := range lines {
		if line == "" {
			decoded[l] = [][]int32{}
			continue
		}

		segments := strings.Split(line, string(segmentSep))
		decoded[l] = make([][]int32, len(segments))
		for seg, segment := range segments {
			values, err := Decode(segment)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d, segment %d: %w", l, seg, err))
				continue
			}
			decoded[l][seg] = values
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return decoded, nil
}

// EncodeMappings is the inverse of DecodeMappings.
func EncodeMappings(lines [][][]int32) string {
	var buf []byte
	for l, segments := range lines {
		if l > 0 {
			buf = append(buf, lineSep)
		}
		for seg, values := range segments {
			if seg > 0 {
				buf = append(buf, segmentSep)
			}
			buf = AppendEncode(buf, values...)
		}
	}
	return string(buf)
}
