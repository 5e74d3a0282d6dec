package zigzag

// Sign-magnitude transform used by base64 vlq (source maps). the sign goes
// into the lowest bit, the magnitude sits above it:
//
//       int32 ->     uint32
// -------------------------
//           0 ->          0
//           1 ->          2
//          -1 ->          3
//         123 ->        246
//  2147483647 -> 4294967294
// -2147483648 ->          1
//
// NOTE(blukai): the magnitude of -2147483648 is 2^31, shifting it left by one
// pushes it out of 32 bits and only the sign bit survives. so "negative zero"
// (1) is what the min value encodes to, and Decode32 maps it back.

func Encode32(n int32) uint32 {
	if n >= 0 {
		return uint32(n) << 1
	}
	// -uint32 wraps, which gives the right magnitude for every negative
	// value including the min one
	return (-uint32(n))<<1 | 1
}

func Decode32(u uint32) int32 {
	mag := u >> 1
	if u&1 == 0 {
		return int32(mag)
	}
	if mag == 0 {
		return -1 << 31
	}
	return -int32(mag)
}
