package hashid

// Encode encodes a sequence of non-negative integers into a single hash
// string. An empty sequence encodes to "". Repeated calls with the same
// input produce byte-identical output.
func (c *Codec) Encode(numbers ...uint64) string {
	if len(numbers) == 0 {
		return ""
	}

	var hashInt uint64
	for i, n := range numbers {
		hashInt += n % uint64(i+100)
	}
	lottery := c.alphabet[hashInt%uint64(len(c.alphabet))]

	out := make([]rune, 0, c.minLength+2*len(numbers))
	out = append(out, lottery)

	// Each group is written in a freshly permuted alphabet seeded from the
	// lottery character, the salt, and the previous group's alphabet. The
	// decoder replays exactly this sequence of permutations.
	alpha := c.alphabet
	for i, n := range numbers {
		alpha = reorder(alpha, c.stepSeed(lottery, alpha))
		digits := toAlphabet(n, alpha)
		out = append(out, digits...)

		if i+1 < len(numbers) {
			v := n % (uint64(digits[0]) + uint64(i))
			out = append(out, c.seps[v%uint64(len(c.seps))])
		}
	}

	if len(out) < c.minLength {
		out = c.ensureLength(out, alpha, hashInt)
	}
	return string(out)
}

// toAlphabet converts n to digits in the given alphabet's base, most
// significant digit first. Zero encodes to a single digit.
func toAlphabet(n uint64, alphabet []rune) []rune {
	base := uint64(len(alphabet))
	if n == 0 {
		return []rune{alphabet[0]}
	}
	digits := make([]rune, 0, 8)
	for n > 0 {
		digits = append(digits, alphabet[n%base])
		n /= base
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// ensureLength pads hash up to the configured minimum: first with one or
// two guard characters picked from the input checksum, then by repeatedly
// wrapping the hash in halves of a self-shuffled alphabet and trimming
// symmetrically to the target. alphabet is the working alphabet left over
// from the encoding loop.
func (c *Codec) ensureLength(hash, alphabet []rune, hashInt uint64) []rune {
	numGuards := uint64(len(c.guards))

	guard := c.guards[(hashInt+uint64(hash[0]))%numGuards]
	hash = append([]rune{guard}, hash...)
	if len(hash) < c.minLength {
		guard = c.guards[(hashInt+uint64(hash[2]))%numGuards]
		hash = append(hash, guard)
	}

	half := len(alphabet) / 2
	for len(hash) < c.minLength {
		alphabet = reorder(alphabet, alphabet)
		wrapped := make([]rune, 0, len(alphabet)+len(hash))
		wrapped = append(wrapped, alphabet[half:]...)
		wrapped = append(wrapped, hash...)
		wrapped = append(wrapped, alphabet[:half]...)
		hash = wrapped

		if excess := len(hash) - c.minLength; excess > 0 {
			hash = hash[excess/2 : excess/2+c.minLength]
		}
	}
	return hash
}
