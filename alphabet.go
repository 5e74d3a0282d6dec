package vlq

// NOTE(blukai): the '=' at position 64 is never produced by the encoder, but
// it's part of the table and therefore decodes (to 64: no continuation bit,
// zero payload).
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

const invalidDigit = 0xff

const (
	digitBits        = 5
	digitPayloadMask = 1<<digitBits - 1 // 0b011111
	continuationBit  = 1 << digitBits   // 0b100000

	// 32 bits of zig-zagged value, 5 bits per digit
	maxGroupDigits = (32 + digitBits - 1) / digitBits
)

var (
	encodeTable [len(alphabet)]byte
	decodeTable [256]byte
)

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalidDigit
	}
	for i := 0; i < len(alphabet); i++ {
		encodeTable[i] = alphabet[i]
		decodeTable[alphabet[i]] = byte(i)
	}
}
