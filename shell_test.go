package ryu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReformatEAndCase(t *testing.T) {
	canon := []byte("1.23E4")
	assert.Equal(t, "1.23e4", string(reformat(nil, canon, 'e')))
	assert.Equal(t, "1.23E4", string(reformat(nil, canon, 'E')))
}

func TestReformatSpecialsPassThrough(t *testing.T) {
	for _, s := range []string{"NaN", "Infinity", "-Infinity"} {
		for _, format := range []byte{'e', 'E', 'f'} {
			got := string(reformat(nil, []byte(s), format))
			assert.Equal(t, s, got, "format %q", format)
		}
	}
}

func TestReformatF(t *testing.T) {
	// Concrete scenarios transcribed from spec §8.
	scenarios := []struct {
		canon string
		want  string
	}{
		{"2.1212312312318882E8", "212123123.12318882"},
		{"9.223372036854776E18", "9223372036854776000"},
		{"1.23123001E-4", "0.000123123001"},
		{"1E0", "1"},
		{"-0E0", "-0"},
		{"-1.5E-2", "-0.015"},
		{"5E3", "5000"},
	}
	for _, c := range scenarios {
		got := string(reformat(nil, []byte(c.canon), 'f'))
		assert.Equal(t, c.want, got, "reformat(%q, 'f')", c.canon)
	}
}

func TestParseExp(t *testing.T) {
	cases := []struct {
		s    string
		want int32
	}{
		{"0", 0},
		{"8", 8},
		{"100", 100},
		{"-4", -4},
		{"-323", -323},
		{"308", 308},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parseExp([]byte(c.s)), "parseExp(%q)", c.s)
	}
}

func TestWriteFloatBufferSizeBoundaries(t *testing.T) {
	// Transcribed verbatim from spec §8's buffer-size boundary table for
	// -112.89123883 formatted as 'f' (full output length 13).
	const full = "-112.89123883"
	require.Equal(t, 13, len(full))

	cases := []struct {
		nbytes int
		want   string
	}{
		{0, ""},
		{1, ""},
		{2, "-"},
		{6, "-112."},
		{5, "-112"},
		{14, "-112.89123883"},
	}
	for _, c := range cases {
		buf := make([]byte, c.nbytes)
		n := WriteFloat(buf, -112.89123883, 'f')
		assert.Equal(t, 13, n, "nbytes=%d: return value", c.nbytes)
		if c.nbytes == 0 {
			continue
		}
		got := string(buf[:minInt(n, c.nbytes-1)])
		assert.Equal(t, c.want, got, "nbytes=%d: written prefix", c.nbytes)
		assert.Equal(t, byte(0), buf[minInt(n, c.nbytes-1)], "nbytes=%d: terminator", c.nbytes)
	}
}

func TestWriteFloatSizingLaw(t *testing.T) {
	values := []float64{0, math.Copysign(0, -1), 1, -112.89123883, 5000, 1e308, 1e-323}
	for _, f := range values {
		for _, format := range []byte{'e', 'E', 'f'} {
			nNil := WriteFloat(nil, f, format)
			buf := make([]byte, 4096)
			nBig := WriteFloat(buf, f, format)
			assert.Equal(t, nNil, nBig, "value %v format %q", f, format)
		}
	}
}

func TestWriteFloatTruncationLaw(t *testing.T) {
	f := 212123123.123188832
	full := make([]byte, 64)
	fullLen := WriteFloat(full, f, 'f')
	for nbytes := 0; nbytes <= fullLen+2; nbytes++ {
		buf := make([]byte, nbytes)
		n := WriteFloat(buf, f, 'f')
		assert.Equal(t, fullLen, n, "nbytes=%d", nbytes)
		if nbytes == 0 {
			continue
		}
		k := minInt(n, nbytes-1)
		assert.Equal(t, full[:k], buf[:k], "nbytes=%d prefix", nbytes)
		assert.Equal(t, byte(0), buf[k], "nbytes=%d terminator", nbytes)
	}
}

func TestWriteFloatInvalidFormat(t *testing.T) {
	buf := make([]byte, 8)
	n := WriteFloat(buf, 1.0, 'x')
	assert.Equal(t, 0, n)
	assert.Equal(t, byte(0), buf[0])

	assert.Equal(t, 0, WriteFloat(nil, 1.0, 'x'))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
