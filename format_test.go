package ryu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitTable(t *testing.T) {
	require.Len(t, digitTable, 200)
	for i := 0; i < 100; i++ {
		want := fmt.Sprintf("%02d", i)
		got := digitTable[2*i : 2*i+2]
		assert.Equal(t, want, got, "digitTable pair %d", i)
	}
}

func TestAppendCanonical(t *testing.T) {
	cases := []struct {
		neg  bool
		d    decimal
		want string
	}{
		{false, decimal{1, 0}, "1E0"},
		{false, decimal{123, 0}, "1.23E2"},
		{false, decimal{5, 100}, "5E100"},
		{false, decimal{5, -5}, "5E-5"},
		{false, decimal{}, "0E0"},
		{true, decimal{}, "-0E0"},
		{true, decimal{123, 0}, "-1.23E2"},
		{false, decimal{9999999999999999, 0}, "9.999999999999999E15"},
	}
	for _, c := range cases {
		got := string(appendCanonical(nil, c.neg, c.d))
		assert.Equal(t, c.want, got, "appendCanonical(%v, %+v)", c.neg, c.d)
	}
}

func TestAppendSpecial(t *testing.T) {
	assert.Equal(t, "NaN", string(appendSpecial(nil, false, true)))
	assert.Equal(t, "NaN", string(appendSpecial(nil, true, true)))
	assert.Equal(t, "Infinity", string(appendSpecial(nil, false, false)))
	assert.Equal(t, "-Infinity", string(appendSpecial(nil, true, false)))
}
