package ryu

import (
	"math"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcreteScenarios(t *testing.T) {
	// Transcribed verbatim from spec §8.
	cases := []struct {
		format byte
		input  float64
		want   string
	}{
		{'f', 212123123.123188832, "212123123.12318882"},
		{'e', 212123123.123188832, "2.1212312312318882e8"},
		{'E', 212123123.123188832, "2.1212312312318882E8"},
		{'f', 9223372036854775808.0, "9223372036854776000"},
		{'f', 0.000123123001, "0.000123123001"},
		{'f', 1.0, "1"},
		{'f', math.Copysign(0, -1), "-0"},
		{'f', -0.015, "-0.015"},
		{'f', 5000.0, "5000"},
	}
	for _, c := range cases {
		got := FormatFloat(c.input, c.format)
		assert.Equal(t, c.want, got, "FormatFloat(%v, %q)", c.input, c.format)
	}
}

func TestSpecialValues(t *testing.T) {
	for _, format := range []byte{'e', 'E', 'f'} {
		assert.Equal(t, "Infinity", FormatFloat(math.Inf(1), format))
		assert.Equal(t, "-Infinity", FormatFloat(math.Inf(-1), format))
		assert.Equal(t, "NaN", FormatFloat(math.NaN(), format))
		// A NaN with the sign bit set still prints unsigned "NaN".
		negNaN := math.Float64frombits(math.Float64bits(math.NaN()) | 1<<63)
		assert.Equal(t, "NaN", FormatFloat(negNaN, format))
	}
}

func TestSignBit(t *testing.T) {
	assert.Equal(t, "1E0", FormatFloat(1, 'E'))
	assert.Equal(t, "-1E0", FormatFloat(-1, 'E'))
	assert.Equal(t, "0E0", FormatFloat(0, 'E'))
	assert.Equal(t, "-0E0", FormatFloat(math.Copysign(0, -1), 'E'))
}

func TestPowersOfTwoRoundTrip(t *testing.T) {
	for k := 0; k <= 53; k++ {
		f := math.Ldexp(1, k)
		s := FormatFloat(f, 'e')
		got, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		assert.Equal(t, f, got, "2^%d round-trip via %q", k, s)
	}
}

func TestBoundaryRoundTrip(t *testing.T) {
	values := []float64{
		0,
		math.Copysign(0, -1),
		math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		-math.MaxFloat64,
		1e-323,
		1e308,
		2.2250738585072014e-308, // DBL_MIN
	}
	for _, format := range []byte{'e', 'E', 'f'} {
		for _, f := range values {
			s := FormatFloat(f, format)
			got, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err, "parsing %q (format %q)", s, format)
			assert.Equal(t, math.Float64bits(f), math.Float64bits(got), "round-trip of %v via format %q -> %q", f, format, s)
		}
	}
}

// TestRoundTripRandom is the universal round-trip property from spec §8:
// for every finite double x, parsing FormatFloat(x, 'e') with a correct
// IEEE-754 decimal parser yields exactly x, including matching sign for
// negative zero.
func TestRoundTripRandom(t *testing.T) {
	check := func(bits uint64) bool {
		f := math.Float64frombits(bits)
		if math.IsNaN(f) {
			return true
		}
		s := FormatFloat(f, 'e')
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		return math.Float64bits(f) == math.Float64bits(got)
	}
	require.NoError(t, quick.Check(check, &quick.Config{MaxCount: 1000000}))
}

func TestRoundTripRandomPlainFormat(t *testing.T) {
	check := func(bits uint64) bool {
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true
		}
		s := FormatFloat(f, 'f')
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		return math.Float64bits(f) == math.Float64bits(got)
	}
	require.NoError(t, quick.Check(check, &quick.Config{MaxCount: 200000}))
}

func TestAppendFloatPanicsOnBadFormat(t *testing.T) {
	assert.Panics(t, func() { AppendFloat(nil, 1.0, 'g') })
}

func TestAppendFloatGrowsCallerBuffer(t *testing.T) {
	dst := []byte("x=")
	got := AppendFloat(dst, 1.5, 'e')
	assert.Equal(t, "x=1.5e0", string(got))
}
