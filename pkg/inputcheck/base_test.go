package inputcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
)

func TestBasePredicates(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		check func(string) bool
		valid []string
		bad   []string
	}{
		{
			name:  "binary",
			check: inputcheck.IsBinary,
			valid: []string{"0", "1", "1010", "0000"},
			bad:   []string{"", "2", "10a", " 1", "+1", "１"},
		},
		{
			name:  "octal",
			check: inputcheck.IsOctal,
			valid: []string{"0", "7", "01234567"},
			bad:   []string{"", "8", "19", "-7", "7 "},
		},
		{
			name:  "decimal",
			check: inputcheck.IsDecimal,
			valid: []string{"0", "+123", "-45", "9876543210"},
			bad:   []string{"", "+", "-", "12a", "1.5", "--1", "+-1", "1+"},
		},
		{
			name:  "hexadecimal",
			check: inputcheck.IsHexadecimal,
			valid: []string{"0", "ff", "FF", "DeadBeef", "0123456789abcdef"},
			bad:   []string{"", "g", "0x1f", "#fff", "-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, s := range tc.valid {
				assert.True(t, tc.check(s), "expected %q to be %s", s, tc.name)
			}
			for _, s := range tc.bad {
				assert.False(t, tc.check(s), "expected %q not to be %s", s, tc.name)
			}
		})
	}
}

func TestIsBase(t *testing.T) {
	t.Parallel()

	t.Run("dispatches by base", func(t *testing.T) {
		ok, err := inputcheck.IsBase("101", inputcheck.Binary)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = inputcheck.IsBase("9", inputcheck.Octal)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("not a number accepts any non-empty text", func(t *testing.T) {
		ok, err := inputcheck.IsBase("hello", inputcheck.NotANumber)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = inputcheck.IsBase("", inputcheck.NotANumber)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown base", func(t *testing.T) {
		_, err := inputcheck.IsBase("1", inputcheck.Base(3))
		assert.ErrorIs(t, err, inputcheck.ErrUnknownBase)
	})
}

func TestCheckNumber(t *testing.T) {
	t.Parallel()

	t.Run("valid value is returned unchanged", func(t *testing.T) {
		res, err := inputcheck.CheckNumber("-0042", inputcheck.AnyLength, inputcheck.Decimal)
		require.NoError(t, err)
		v, ok := res.Value()
		assert.True(t, ok)
		assert.Equal(t, "-0042", v)
	})

	t.Run("binary is supported", func(t *testing.T) {
		res, err := inputcheck.CheckNumber("1101", 4, inputcheck.Binary)
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})

	t.Run("length mismatch is invalid", func(t *testing.T) {
		res, err := inputcheck.CheckNumber("1234", 3, inputcheck.Decimal)
		require.NoError(t, err)
		assert.False(t, res.IsValid())
	})

	t.Run("length counts runes", func(t *testing.T) {
		res, err := inputcheck.CheckNumber("дом", 3, inputcheck.NotANumber)
		require.NoError(t, err)
		assert.True(t, res.IsValid())
	})

	t.Run("wrong digits are invalid", func(t *testing.T) {
		res, err := inputcheck.CheckNumber("1f", inputcheck.AnyLength, inputcheck.Octal)
		require.NoError(t, err)
		assert.False(t, res.IsValid())
		_, ok := res.Value()
		assert.False(t, ok)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := inputcheck.CheckNumber("", inputcheck.AnyLength, inputcheck.Decimal)
		assert.ErrorIs(t, err, inputcheck.ErrEmptyInput)
	})

	t.Run("unknown base is an error", func(t *testing.T) {
		_, err := inputcheck.CheckNumber("12", inputcheck.AnyLength, inputcheck.Base(12))
		assert.ErrorIs(t, err, inputcheck.ErrUnknownBase)
	})
}

func TestParseBase(t *testing.T) {
	testCases := map[string]inputcheck.Base{
		"binary": inputcheck.Binary,
		"BIN":    inputcheck.Binary,
		"8":      inputcheck.Octal,
		"dec":    inputcheck.Decimal,
		" hex ":  inputcheck.Hexadecimal,
		"any":    inputcheck.NotANumber,
	}
	for in, want := range testCases {
		got, err := inputcheck.ParseBase(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := inputcheck.ParseBase("base64")
	assert.ErrorIs(t, err, inputcheck.ErrUnknownBase)

	assert.Equal(t, "hexadecimal", inputcheck.Hexadecimal.String())
	assert.Equal(t, "base(5)", inputcheck.Base(5).String())
}
