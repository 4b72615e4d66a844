package ryu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow5Bits(t *testing.T) {
	cases := []struct {
		e    int32
		want int32
	}{
		{0, 1},
		{1, 3},
		{2, 5},
		{3, 7},
		{10, 24},
		{100, 233},
		{400, 929},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pow5Bits(c.e), "pow5Bits(%d)", c.e)
	}
}

func TestLog10Pow2(t *testing.T) {
	cases := []struct {
		e    int32
		want int32
	}{
		{0, 0},
		{1, 0},
		{3, 0},
		{10, 3},
		{100, 30},
		{1650, 496},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, log10Pow2(c.e), "log10Pow2(%d)", c.e)
	}
}

func TestLog10Pow5(t *testing.T) {
	cases := []struct {
		e    int32
		want int32
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{10, 6},
		{100, 69},
		{2620, 1831},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, log10Pow5(c.e), "log10Pow5(%d)", c.e)
	}
}

func TestPow5Factor64(t *testing.T) {
	assert.Equal(t, uint32(0), pow5Factor64(1))
	assert.Equal(t, uint32(1), pow5Factor64(5))
	assert.Equal(t, uint32(2), pow5Factor64(25))
	assert.Equal(t, uint32(0), pow5Factor64(7))
	assert.Equal(t, uint32(3), pow5Factor64(250))
}

func TestDecimalLen64(t *testing.T) {
	cases := []struct {
		u    uint64
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{99999999999999999, 17},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, decimalLen64(c.u), "decimalLen64(%d)", c.u)
	}
}
