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

// decimal is a floating decimal type representing m * 10^e, the shortest
// round-tripping decimal for some float64. mantissa is always in
// [1, 10^17) for a nonzero finite input; exponent is in [-324, 308].
type decimal struct {
	mantissa uint64
	exponent int32
}

// decimalExactInt handles the small-integer fast path (component E): any
// finite float64 that is an exact integer in [1, 2^53) skips the general
// Ryū algorithm entirely. ok is false for everything else (fractions,
// integers >= 2^53, zero), in which case the caller must fall back to
// floatToDecimal.
func decimalExactInt(mant, exp uint64) (d decimal, ok bool) {
	e := exp - bias64
	if e > mantBits64 {
		return d, false
	}
	shift := mantBits64 - e
	mant |= 1 << mantBits64 // implicit leading 1
	d.mantissa = mant >> shift
	if d.mantissa<<shift != mant {
		// There were nonzero bits below the shift: not an exact integer.
		return d, false
	}
	for d.mantissa%10 == 0 {
		d.mantissa /= 10
		d.exponent++
	}
	return d, true
}

// floatToDecimal is the Ryū converter (component D): it turns the decoded
// IEEE mantissa/exponent fields of a finite, nonzero float64 into the
// shortest decimal that round-trips back to the same value, with ties
// broken to even.
func floatToDecimal(mant, exp uint64) decimal {
	var e2 int32
	var m2 uint64
	if exp == 0 {
		// Subnormal. Subtract 2 so the bounds computation below gets two
		// additional bits of headroom.
		e2 = 1 - bias64 - mantBits64 - 2
		m2 = mant
	} else {
		e2 = int32(exp) - bias64 - mantBits64 - 2
		m2 = uint64(1)<<mantBits64 | mant
	}
	even := m2&1 == 0
	acceptBounds := even

	// Step 2: determine the interval of valid decimal representations.
	mv := 4 * m2
	var mmShift uint64
	if mant != 0 || exp <= 1 {
		mmShift = 1
	}
	// mp := 4*m2 + 2
	// mm := mv - 1 - mmShift

	// Step 3: convert to a decimal power base using 128-bit arithmetic.
	var (
		vr, vp, vm        uint64
		e10               int32
		vmIsTrailingZeros bool
		vrIsTrailingZeros bool
	)
	if e2 >= 0 {
		// Slightly faster than max(0, log10Pow2(e2) - 1).
		q := log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = q
		k := pow5InvNumBits64 + pow5Bits(q) - 1
		i := -e2 + q + k
		mul := pow5InvSplit64[q]
		vr = mulShift64(mv, mul, i)
		vp = mulShift64(4*m2+2, mul, i)
		vm = mulShift64(4*m2-1-mmShift, mul, i)
		if q <= 21 {
			// Only one of mp, mv, mm can be a multiple of 5, if any.
			if mv%5 == 0 {
				vrIsTrailingZeros = multipleOfPowerOfFive64(mv, uint32(q))
			} else if acceptBounds {
				vmIsTrailingZeros = multipleOfPowerOfFive64(mv-1-mmShift, uint32(q))
			} else if multipleOfPowerOfFive64(mv+2, uint32(q)) {
				vp--
			}
		}
	} else {
		// Slightly faster than max(0, log10Pow5(-e2) - 1).
		q := log10Pow5(-e2)
		if -e2 > 1 {
			q--
		}
		e10 = q + e2
		i := -e2 - q
		k := pow5Bits(i) - pow5NumBits64
		j := q - k
		mul := pow5Split64[i]
		vr = mulShift64(mv, mul, j)
		vp = mulShift64(4*m2+2, mul, j)
		vm = mulShift64(4*m2-1-mmShift, mul, j)
		if q <= 1 {
			// vr is always trailing-zero: mv = 4*m2 always has >= 2
			// trailing zero bits.
			vrIsTrailingZeros = true
			if acceptBounds {
				// mm = mv - 1 - mmShift has one trailing zero bit iff
				// mmShift == 1.
				vmIsTrailingZeros = mmShift == 1
			} else {
				// mp = mv + 2 always has at least one trailing zero bit.
				vp--
			}
		} else if q < 63 {
			vrIsTrailingZeros = multipleOfPowerOfTwo64(mv, uint32(q-1))
		}
	}

	// Step 4: find the shortest decimal representation in the interval.
	var removed int32
	var lastRemovedDigit uint8
	var out uint64
	if vmIsTrailingZeros || vrIsTrailingZeros {
		// General path: happens rarely (~0.7% of inputs).
		for {
			vpDiv10 := vp / 10
			vmDiv10 := vm / 10
			if vpDiv10 <= vmDiv10 {
				break
			}
			vmMod10 := vm % 10
			vrDiv10 := vr / 10
			vrMod10 := vr % 10
			vmIsTrailingZeros = vmIsTrailingZeros && vmMod10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = uint8(vrMod10)
			vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
			removed++
		}
		if vmIsTrailingZeros {
			for {
				vmDiv10 := vm / 10
				vmMod10 := vm % 10
				if vmMod10 != 0 {
					break
				}
				vpDiv10 := vp / 10
				vrDiv10 := vr / 10
				vrMod10 := vr % 10
				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = uint8(vrMod10)
				vr, vp, vm = vrDiv10, vpDiv10, vmDiv10
				removed++
			}
		}
		if vrIsTrailingZeros && lastRemovedDigit == 5 && vr%2 == 0 {
			// Round even if the exact number is ...50...0.
			lastRemovedDigit = 4
		}
		out = vr
		if (vr == vm && (!acceptBounds || !vmIsTrailingZeros)) || lastRemovedDigit >= 5 {
			out++
		}
	} else {
		// Common path (~99.3% of inputs).
		roundUp := false
		if vp/100 > vm/100 {
			// Remove two digits at a time when possible (~86.2%).
			roundUp = vr%100 >= 50
			vr, vp, vm = vr/100, vp/100, vm/100
			removed += 2
		}
		for vp/10 > vm/10 {
			roundUp = vr%10 >= 5
			vr, vp, vm = vr/10, vp/10, vm/10
			removed++
		}
		out = vr
		if vr == vm || roundUp {
			out++
		}
	}

	d := decimal{mantissa: out, exponent: e10 + removed}
	traceDecimal(mant, exp, d, vmIsTrailingZeros, vrIsTrailingZeros)
	return d
}
