package locale

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizePrice(t *testing.T) {
	assert.Equal(t, "$123.45", HumanizePrice(12345, "$"))
	assert.Equal(t, "€0.00", HumanizePrice(0, "€"))
	assert.Equal(t, "€0.05", HumanizePrice(5, "€"))
	assert.Equal(t, "$1000.00", HumanizePrice(100000, "$"))
}

func TestToCent(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.5", 1250},
		{"12.50", 1250},
		{"0", 0},
		{"0.005", 1}, // rounds half away from zero, not banker's
		{"2.675", 268},
		{" 3.99 ", 399},
		{"-1.5", -150},
	}
	for _, c := range cases {
		got, err := ToCent(c.in)
		require.NoError(t, err, "ToCent(%q)", c.in)
		assert.Equal(t, c.want, got, "ToCent(%q)", c.in)
	}
}

func TestToCentNotANumber(t *testing.T) {
	for _, in := range []string{"", "abc", "12,50", "NaN", "Inf"} {
		_, err := ToCent(in)
		require.Error(t, err, "ToCent(%q)", in)
		assert.True(t, errors.Is(err, ErrNotANumber))
	}
}

func TestCentRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 5, 99, 100, 1250, 12345, 999999, 123456789} {
		s := strconv.FormatFloat(ToBaseUnit(n), 'f', -1, 64)
		got, err := ToCent(s)
		require.NoError(t, err)
		assert.Equal(t, n, got, "round trip %d via %q", n, s)
	}
}

func TestCreateAppID(t *testing.T) {
	id := CreateAppID()
	n, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)

	// timestamp part caps at 99999, random part at 999
	assert.Less(t, n, int64(100_000_000))
	assert.GreaterOrEqual(t, n%1000, int64(100))
}
