package hashid

// reorder permutes seq with a salt-seeded variant of Fisher-Yates.
// It is a pure function of (seq, salt): encode and decode both depend on
// reconstructing identical permutations from the same inputs. An empty
// salt is the identity permutation.
//
// seq and salt may alias; the salt runes are read from the caller's slice
// while the swaps happen on a local copy.
func reorder(seq, salt []rune) []rune {
	if len(salt) == 0 {
		return seq
	}
	buf := make([]rune, len(seq))
	copy(buf, seq)

	saltIdx, sum := 0, 0
	for i := len(buf) - 1; i > 0; i-- {
		saltIdx %= len(salt)
		code := int(salt[saltIdx])
		sum += code
		j := (code + saltIdx + sum) % i
		buf[i], buf[j] = buf[j], buf[i]
		saltIdx++
	}
	return buf
}
