// Copyright 2018 Ulf Adams
// Modifications copyright 2019 Caleb Spare
//
// The contents of this file may be used under the terms of the Apache License,
// Version 2.0.
//
//    (See accompanying file LICENSE or copy at
//     http://www.apache.org/licenses/LICENSE-2.0)
//
// Unless required by applicable law or agreed to in writing, this software
// is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.
//
// The code in this file is part of a Go translation of the C code written by
// Ulf Adams which may be found at https://github.com/ulfjack/ryu. That source
// code is licensed under Apache 2.0 and this code is derivative work thereof.

package ryu

// digitTable holds the two ASCII digits of every value 0..99, so that a
// value can be turned into decimal text two digits at a time instead of
// one division per digit. strconv's ftoa machinery uses the same trick.
const digitTable = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// appendCanonical renders a shortest-decimal (mantissa, exponent) pair as
// the canonical scientific form [-]d(.ddd)E[-]d{1,3} (component F). It is
// also used, unmodified, for the zero value (mantissa 0, exponent 0),
// which naturally renders as "0E0" / "-0E0".
func appendCanonical(dst []byte, neg bool, d decimal) []byte {
	olength := decimalLen64(d.mantissa)

	var digits [17]byte
	v := d.mantissa
	i := olength
	for v >= 100 {
		j := (v % 100) * 2
		v /= 100
		digits[i-2] = digitTable[j]
		digits[i-1] = digitTable[j+1]
		i -= 2
	}
	if v >= 10 {
		j := v * 2
		digits[i-2] = digitTable[j]
		digits[i-1] = digitTable[j+1]
	} else {
		digits[i-1] = '0' + byte(v)
	}

	if neg {
		dst = append(dst, '-')
	}
	dst = append(dst, digits[0])
	if olength > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:olength]...)
	}
	dst = append(dst, 'E')

	exp := d.exponent + int32(olength) - 1
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	}
	return appendExpDigits(dst, exp)
}

// appendExpDigits appends exp (always in [0, 999] for this package, since
// the canonical exponent is bounded to [-324, 308]) with no leading zeros
// and 1 to 3 digits, per the canonical grammar in spec §6.
func appendExpDigits(dst []byte, exp int32) []byte {
	switch {
	case exp >= 100:
		dst = append(dst, '0'+byte(exp/100))
		exp %= 100
		dst = append(dst, digitTable[exp*2], digitTable[exp*2+1])
	case exp >= 10:
		dst = append(dst, digitTable[exp*2], digitTable[exp*2+1])
	default:
		dst = append(dst, '0'+byte(exp))
	}
	return dst
}

// appendSpecial renders NaN and ±Infinity (component G); zero is not a
// special case here — it flows through appendCanonical via decimal{0, 0}.
func appendSpecial(dst []byte, neg, nan bool) []byte {
	if nan {
		return append(dst, "NaN"...)
	}
	if neg {
		dst = append(dst, '-')
	}
	return append(dst, "Infinity"...)
}
