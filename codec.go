// Package hashid encodes non-negative integers to short, salt-keyed strings
// and decodes them back. The output is obfuscated, not encrypted: anyone who
// knows the salt and alphabet can reverse it. Hashes produced with the same
// salt, minimum length, and alphabet are interoperable across
// implementations of the same algorithm.
package hashid

import (
	"math"
	"strings"
)

// DefaultAlphabet is the alphabet used when the caller supplies none, or
// when the supplied alphabet is unusable.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// sepCandidates are the characters eligible to become group separators.
// They are chosen to avoid accidental English curse words in output.
const sepCandidates = "cfhistuCFHISTU"

const (
	minAlphabetLen = 16
	sepRatio       = 3.5
	guardRatio     = 12
)

// Codec encodes integer sequences to hash strings and back. It is immutable
// after construction and safe for concurrent use; every call works on local
// copies of the alphabet state.
type Codec struct {
	salt      []rune
	alphabet  []rune
	seps      []rune
	guards    []rune
	minLength int
}

// New returns a Codec for the given salt with the default alphabet and no
// minimum hash length.
func New(salt string) *Codec {
	return NewCodec(salt, 0, DefaultAlphabet)
}

// NewCodec returns a Codec built from a salt, a minimum hash length, and a
// candidate alphabet. Construction never fails: an alphabet that contains a
// space, or that is too small once separator candidates are set aside, is
// silently replaced by DefaultAlphabet.
//
// The partitioning below is order-sensitive. Changing any step changes
// every hash the codec produces.
func NewCodec(salt string, minLength int, alphabet string) *Codec {
	saltRunes := []rune(salt)
	if minLength < 0 {
		minLength = 0
	}

	alpha := unique([]rune(alphabet))
	seps := intersect([]rune(sepCandidates), alpha)
	alpha = exclude(seps, alpha)
	if strings.ContainsRune(alphabet, ' ') || len(alpha)+len(seps) < minAlphabetLen {
		def := unique([]rune(DefaultAlphabet))
		seps = intersect([]rune(sepCandidates), def)
		alpha = exclude(seps, def)
	}

	seps = reorder(seps, saltRunes)
	minSeps := int(math.Ceil(float64(len(alpha)) / sepRatio))
	if minSeps == 1 {
		minSeps = 2
	}
	if len(seps) < minSeps {
		diff := minSeps - len(seps)
		seps = append(seps, alpha[:diff]...)
		alpha = alpha[diff:]
	}

	alpha = reorder(alpha, saltRunes)
	numGuards := int(math.Ceil(float64(len(alpha)) / guardRatio))
	var guards []rune
	if len(alpha) < 3 {
		guards = seps[:numGuards]
		seps = seps[numGuards:]
	} else {
		guards = alpha[:numGuards]
		alpha = alpha[numGuards:]
	}

	return &Codec{
		salt:      saltRunes,
		alphabet:  alpha,
		seps:      seps,
		guards:    guards,
		minLength: minLength,
	}
}

// MinLength returns the configured minimum hash length.
func (c *Codec) MinLength() int {
	return c.minLength
}

// stepSeed builds the shuffle salt for one digit group: the first
// len(alphabet) runes of lottery + salt + alphabet. Both encode and decode
// derive their per-group alphabets from this seed.
func (c *Codec) stepSeed(lottery rune, alphabet []rune) []rune {
	seed := make([]rune, 0, 1+len(c.salt)+len(alphabet))
	seed = append(seed, lottery)
	seed = append(seed, c.salt...)
	seed = append(seed, alphabet...)
	if len(seed) > len(alphabet) {
		seed = seed[:len(alphabet)]
	}
	return seed
}
