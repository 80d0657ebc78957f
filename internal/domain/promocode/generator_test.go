//go:build unit

package promocode_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"promo-code-service/internal/domain/promocode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultShape = regexp.MustCompile(`^PROMO-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy source closed") }

func TestRandomGenerator(t *testing.T) {
	t.Run("produces PREFIX-XXXX-XXXX from the default alphabet", func(t *testing.T) {
		gen, err := promocode.NewRandomGenerator(promocode.DefaultPrefix, promocode.DefaultAlphabet)
		require.NoError(t, err)

		for range 200 {
			code, err := gen.Generate()
			require.NoError(t, err)
			assert.Regexp(t, defaultShape, code.String())

			body := strings.TrimPrefix(code.String(), "PROMO-")
			assert.NotContainsf(t, body, "0", "code %s", code)
			assert.NotContainsf(t, body, "O", "code %s", code)
			assert.NotContainsf(t, body, "1", "code %s", code)
			assert.NotContainsf(t, body, "I", "code %s", code)
		}
	})

	t.Run("custom prefix and alphabet", func(t *testing.T) {
		gen, err := promocode.NewRandomGenerator("SALE24", "AB")
		require.NoError(t, err)

		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, `^SALE24-[AB]{4}-[AB]{4}$`, code.String())
	})

	t.Run("injected reader makes output deterministic", func(t *testing.T) {
		gen, err := promocode.NewRandomGeneratorWithReader("PROMO", promocode.DefaultAlphabet, zeroReader{})
		require.NoError(t, err)

		first, err := gen.Generate()
		require.NoError(t, err)
		second, err := gen.Generate()
		require.NoError(t, err)

		assert.Equal(t, promocode.Code("PROMO-AAAA-AAAA"), first)
		assert.Equal(t, first, second)
	})

	t.Run("reader failure is reported", func(t *testing.T) {
		gen, err := promocode.NewRandomGeneratorWithReader("PROMO", promocode.DefaultAlphabet, failingReader{})
		require.NoError(t, err)

		_, err = gen.Generate()
		assert.ErrorContains(t, err, "entropy source closed")
	})
}

func TestNewRandomGeneratorValidation(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		alphabet string
		errIs    error
	}{
		{name: "ambiguous zero", prefix: "PROMO", alphabet: "ABC0", errIs: promocode.ErrInvalidAlphabet},
		{name: "ambiguous O", prefix: "PROMO", alphabet: "ABCO", errIs: promocode.ErrInvalidAlphabet},
		{name: "ambiguous one", prefix: "PROMO", alphabet: "ABC1", errIs: promocode.ErrInvalidAlphabet},
		{name: "ambiguous I", prefix: "PROMO", alphabet: "ABCI", errIs: promocode.ErrInvalidAlphabet},
		{name: "lower case", prefix: "PROMO", alphabet: "abc", errIs: promocode.ErrInvalidAlphabet},
		{name: "duplicate", prefix: "PROMO", alphabet: "ABCA", errIs: promocode.ErrInvalidAlphabet},
		{name: "too short", prefix: "PROMO", alphabet: "A", errIs: promocode.ErrInvalidAlphabet},
		{name: "empty prefix", prefix: "", alphabet: promocode.DefaultAlphabet, errIs: promocode.ErrInvalidPrefix},
		{name: "prefix with dash", prefix: "PRO-MO", alphabet: promocode.DefaultAlphabet, errIs: promocode.ErrInvalidPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := promocode.NewRandomGenerator(tt.prefix, tt.alphabet)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
