package hashid

// Decode decodes a hash string back into the integer sequence it was
// encoded from. It returns nil for anything that does not decode cleanly:
// malformed input, a hash produced under a different salt or alphabet, or a
// tampered hash. Decoding never panics; the empty string decodes to an
// empty sequence.
//
// A structurally parseable hash is accepted only if re-encoding the
// recovered integers reproduces the input byte for byte. That check is the
// sole integrity mechanism, so it is unconditional.
func (c *Codec) Decode(hash string) []uint64 {
	if hash == "" {
		return nil
	}

	// A padded hash carries guard characters around the payload. Two or
	// three pieces means the first is padding.
	pieces := splitAny([]rune(hash), c.guards)
	i := 0
	if len(pieces) == 2 || len(pieces) == 3 {
		i = 1
	}
	work := pieces[i]
	if len(work) == 0 {
		return nil
	}

	lottery := work[0]
	groups := splitAny(work[1:], c.seps)

	alpha := c.alphabet
	numbers := make([]uint64, 0, len(groups))
	for _, group := range groups {
		alpha = reorder(alpha, c.stepSeed(lottery, alpha))
		n, ok := fromAlphabet(group, alpha)
		if !ok {
			return nil
		}
		numbers = append(numbers, n)
	}

	if c.Encode(numbers...) != hash {
		return nil
	}
	return numbers
}

// fromAlphabet converts a digit group back to an integer. It reports false
// when the group contains a rune outside the alphabet.
func fromAlphabet(group, alphabet []rune) (uint64, bool) {
	base := uint64(len(alphabet))
	var n uint64
	for _, r := range group {
		idx := indexRune(alphabet, r)
		if idx < 0 {
			return 0, false
		}
		n = n*base + uint64(idx)
	}
	return n, true
}
