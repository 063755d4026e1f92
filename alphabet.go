package hashid

// Character-set operations over ordered rune sequences. Order is
// semantically significant everywhere in this package: the same characters
// in a different order produce different hashes.

// unique removes duplicate runes, keeping the last occurrence of each.
func unique(s []rune) []rune {
	seen := make(map[rune]bool, len(s))
	out := make([]rune, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		if seen[s[i]] {
			continue
		}
		seen[s[i]] = true
		out = append(out, s[i])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// intersect returns the runes of a that also occur in b, in a's order.
func intersect(a, b []rune) []rune {
	out := make([]rune, 0, len(a))
	for _, r := range a {
		if indexRune(b, r) >= 0 {
			out = append(out, r)
		}
	}
	return out
}

// exclude returns the runes of from that do not occur in remove,
// in from's order.
func exclude(remove, from []rune) []rune {
	out := make([]rune, 0, len(from))
	for _, r := range from {
		if indexRune(remove, r) < 0 {
			out = append(out, r)
		}
	}
	return out
}

// indexRune returns the index of r in s, or -1.
func indexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}

// splitAny splits s on every rune contained in set, keeping empty pieces.
// A non-empty s always yields at least one piece.
func splitAny(s, set []rune) [][]rune {
	out := make([][]rune, 0, 4)
	start := 0
	for i, r := range s {
		if indexRune(set, r) >= 0 {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
