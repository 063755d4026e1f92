package hashid

import (
	"strconv"
	"strings"
)

// Hex adapters map hexadecimal digit strings onto the integer codec.
// The input is chunked into groups of at most 12 hex digits from the right,
// and each chunk is prefixed with a literal 1 nibble before parsing so that
// leading zeros survive the round trip. 13 nibbles fit a uint64.

const hexChunkLen = 12

// EncodeHex encodes a string of hexadecimal digits. It returns "" when the
// input contains a non-hex character.
func (c *Codec) EncodeHex(hexDigits string) string {
	for _, r := range hexDigits {
		if !isHexDigit(r) {
			return ""
		}
	}

	numChunks := (len(hexDigits) + hexChunkLen - 1) / hexChunkLen
	numbers := make([]uint64, numChunks)
	rest := hexDigits
	for i := numChunks - 1; i >= 0; i-- {
		cut := len(rest) - hexChunkLen
		if cut < 0 {
			cut = 0
		}
		n, err := strconv.ParseUint("1"+rest[cut:], 16, 64)
		if err != nil {
			return ""
		}
		numbers[i] = n
		rest = rest[:cut]
	}
	return c.Encode(numbers...)
}

// DecodeHex decodes a hash produced by EncodeHex back into its hex digit
// string, lowercased. It returns "" for anything Decode rejects.
func (c *Codec) DecodeHex(hash string) string {
	var b strings.Builder
	for _, n := range c.Decode(hash) {
		// Drop the sentinel nibble added by EncodeHex.
		b.WriteString(strconv.FormatUint(n, 16)[1:])
	}
	return b.String()
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
