package vlq

import (
	"encoding"
	"fmt"
)

// Values is a sequence of integers that marshals to and from its vlq text
// form, e.g. as a json string field.
type Values []int32

var (
	_ encoding.TextMarshaler   = Values(nil)
	_ encoding.TextUnmarshaler = (*Values)(nil)
	_ fmt.Stringer             = Values(nil)
)

// NOTE(blukai): value receivers, so that Values marshals as text even when
// it's not addressable (a field of a struct passed by value to json.Marshal).
func (v Values) MarshalText() ([]byte, error) {
	return AppendEncode(nil, v...), nil
}

func (v *Values) UnmarshalText(text []byte) error {
	values, err := Decode(string(text))
	if err != nil {
		return fmt.Errorf("could not unmarshal values: %w", err)
	}
	*v = values
	return nil
}

func (v Values) String() string {
	return Encode(v)
}
