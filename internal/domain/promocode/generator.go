package promocode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"
)

const (
	DefaultPrefix   = "PROMO"
	DefaultAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	groupCount = 2
	groupSize  = 4
)

// ambiguousChars are never allowed in an alphabet: they are easy to misread
// when a lead reads a code out to a sales agent.
const ambiguousChars = "0O1I"

var (
	ErrInvalidAlphabet = errors.New("invalid promo code alphabet")
	ErrInvalidPrefix   = errors.New("invalid promo code prefix")
)

var prefixRegex = regexp.MustCompile(`^[A-Z0-9]{1,16}$`)

type Generator interface {
	Generate() (Code, error)
}

// RandomGenerator produces candidates shaped PREFIX-XXXX-XXXX. It does not
// know about existing codes; uniqueness is claimed by the store on insert.
type RandomGenerator struct {
	prefix   string
	alphabet []byte
	max      *big.Int
	rand     io.Reader
}

func NewRandomGenerator(prefix, alphabet string) (*RandomGenerator, error) {
	return NewRandomGeneratorWithReader(prefix, alphabet, rand.Reader)
}

// NewRandomGeneratorWithReader is NewRandomGenerator with an explicit entropy source.
func NewRandomGeneratorWithReader(prefix, alphabet string, r io.Reader) (*RandomGenerator, error) {
	if !prefixRegex.MatchString(prefix) {
		return nil, fmt.Errorf("%w: %q must be 1-16 upper-case letters or digits", ErrInvalidPrefix, prefix)
	}
	if err := validateAlphabet(alphabet); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.Reader
	}

	return &RandomGenerator{
		prefix:   prefix,
		alphabet: []byte(alphabet),
		max:      big.NewInt(int64(len(alphabet))),
		rand:     r,
	}, nil
}

func (g *RandomGenerator) Generate() (Code, error) {
	var b strings.Builder
	b.Grow(len(g.prefix) + groupCount*(groupSize+1))
	b.WriteString(g.prefix)

	for range groupCount {
		b.WriteByte('-')
		for range groupSize {
			n, err := rand.Int(g.rand, g.max)
			if err != nil {
				return "", fmt.Errorf("read randomness: %w", err)
			}
			b.WriteByte(g.alphabet[n.Int64()])
		}
	}
	return Code(b.String()), nil
}

func validateAlphabet(alphabet string) error {
	if len(alphabet) < 2 {
		return fmt.Errorf("%w: needs at least 2 characters", ErrInvalidAlphabet)
	}
	seen := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return fmt.Errorf("%w: %q is not an upper-case letter or digit", ErrInvalidAlphabet, r)
		}
		if strings.ContainsRune(ambiguousChars, r) {
			return fmt.Errorf("%w: %q is visually ambiguous", ErrInvalidAlphabet, r)
		}
		if _, dup := seen[r]; dup {
			return fmt.Errorf("%w: %q appears twice", ErrInvalidAlphabet, r)
		}
		seen[r] = struct{}{}
	}
	return nil
}
