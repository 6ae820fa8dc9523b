package glyphweave

import (
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
)

// maxTokenLen bounds the length of seed tokens accepted by [ParseSeed].
const maxTokenLen = 64

// tokenBytes is the amount of entropy in freshly generated seeds.
const tokenBytes = 8

// Seed identifies one artwork. Identical tokens yield identical random
// streams, noise fields and thus identical output.
//
// Tokens are base58 strings, which survive URLs and file names without
// escaping.
type Seed struct {
	token string
	state [4]uint32
}

// NewSeed returns a seed derived from a non-deterministic source.
func NewSeed() Seed {
	var b [tokenBytes]byte
	rand.Read(b[:])
	s, err := ParseSeed(base58.Encode(b[:]))
	if err != nil {
		panic(fmt.Sprintf("glyphweave: generated token failed to parse: %s", err))
	}
	return s
}

// ParseSeed decodes a seed token. It returns an error wrapping
// [ErrInvalidSeedToken] if the token is empty, too long, or not valid
// base58.
func ParseSeed(token string) (Seed, error) {
	if token == "" {
		return Seed{}, fmt.Errorf("%w: empty token", ErrInvalidSeedToken)
	}
	if len(token) > maxTokenLen {
		return Seed{}, fmt.Errorf("%w: token longer than %d characters", ErrInvalidSeedToken, maxTokenLen)
	}
	b, err := base58.Decode(token)
	if err != nil {
		return Seed{}, fmt.Errorf("%w: %q: %s", ErrInvalidSeedToken, token, err)
	}
	return Seed{token: token, state: cyrb128(b)}, nil
}

// ResolveSeed returns the seed for token, failing closed: an empty token
// yields a fresh seed, and so does a malformed one, in which case ok is
// false.
func ResolveSeed(token string) (s Seed, ok bool) {
	if token == "" {
		return NewSeed(), true
	}
	s, err := ParseSeed(token)
	if err != nil {
		return NewSeed(), false
	}
	return s, true
}

// Token returns the seed's printable token.
func (s Seed) Token() string { return s.token }

func (s Seed) String() string { return s.token }

// IsZero reports whether s is the zero Seed, which has no token.
func (s Seed) IsZero() bool { return s.token == "" }

// State returns the four state words derived from the token.
func (s Seed) State() [4]uint32 { return s.state }

// Rand returns a new random stream positioned at the start of the seed's
// sequence. Every call returns an independent stream producing the same
// values.
func (s Seed) Rand() *Rand {
	return newRand(s.state)
}

// cyrb128 hashes b into four 32-bit words.
func cyrb128(b []byte) [4]uint32 {
	h1, h2, h3, h4 := uint32(1779033703), uint32(3144134277), uint32(1013904242), uint32(2773480762)
	for _, c := range b {
		k := uint32(c)
		h1 = h2 ^ ((h1 ^ k) * 597399067)
		h2 = h3 ^ ((h2 ^ k) * 2869860233)
		h3 = h4 ^ ((h3 ^ k) * 951274213)
		h4 = h1 ^ ((h4 ^ k) * 2716044179)
	}
	h1 = (h3 ^ (h1 >> 18)) * 597399067
	h2 = (h4 ^ (h2 >> 22)) * 2869860233
	h3 = (h1 ^ (h3 >> 17)) * 951274213
	h4 = (h2 ^ (h4 >> 19)) * 2716044179
	h1 ^= h2 ^ h3 ^ h4
	h2 ^= h1
	h3 ^= h1
	h4 ^= h1
	return [4]uint32{h1, h2, h3, h4}
}
