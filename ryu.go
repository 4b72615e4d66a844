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

import (
	"fmt"
	"math"
)

const expMask64 = 1<<expBits64 - 1

func decodeFloat64(f float64) (neg bool, ieeeMantissa, ieeeExponent uint64) {
	bits := math.Float64bits(f)
	neg = bits>>63 != 0
	ieeeExponent = (bits >> mantBits64) & expMask64
	ieeeMantissa = bits & (1<<mantBits64 - 1)
	return neg, ieeeMantissa, ieeeExponent
}

// appendFloatCanonical decodes f and appends its pre-reformat canonical
// form to dst: component G for NaN and ±Infinity, component F directly for
// zero, component E or D (whichever applies) plus component F for
// everything else.
func appendFloatCanonical(dst []byte, f float64) []byte {
	neg, mant, exp := decodeFloat64(f)

	if exp == expMask64 {
		return appendSpecial(dst, neg, mant != 0)
	}
	if exp == 0 && mant == 0 {
		return appendCanonical(dst, neg, decimal{})
	}
	d, ok := decimalExactInt(mant, exp)
	if !ok {
		d = floatToDecimal(mant, exp)
	}
	return appendCanonical(dst, neg, d)
}

func checkFormat(format byte) bool {
	return format == 'e' || format == 'E' || format == 'f'
}

// AppendFloat appends the text form of f, in the given format ('e', 'E',
// or 'f'), to dst and returns the extended slice.
//
// It panics if format is not one of 'e', 'E', 'f' — like
// strconv.AppendFloat, there is no sane zero value to return for a
// programmer error with no buffer-size contract to honor instead. Callers
// that need a no-panic, fixed-buffer contract should use WriteFloat.
func AppendFloat(dst []byte, f float64, format byte) []byte {
	if !checkFormat(format) {
		panic(fmt.Sprintf("ryu: AppendFloat: invalid format byte %q", format))
	}
	var canonBuf [32]byte
	canonical := appendFloatCanonical(canonBuf[:0], f)
	return reformat(dst, canonical, format)
}

// FormatFloat converts f to a string in the given format ('e', 'E', or
// 'f'). It panics under the same condition as AppendFloat.
func FormatFloat(f float64, format byte) string {
	return string(AppendFloat(make([]byte, 0, 32), f, format))
}

// WriteFloat is the fixed-buffer entry point described in spec §6,
// shaped like the reference C ABI's write_double(value, format, dst,
// nbytes) -> usize:
//
//   - It writes at most len(dst)-1 bytes of the formatted value into dst,
//     followed by a terminating 0 byte, whenever len(dst) >= 1.
//   - It always returns the length that would have been written with an
//     unbounded buffer, regardless of len(dst).
//   - format must be 'e', 'E', or 'f'; any other byte writes nothing but
//     the terminator (if room) and returns 0, rather than panicking —
//     this is the boundary meant for callers (e.g. a cgo export) that
//     cannot propagate a Go panic across the boundary.
//   - dst may be nil iff len(dst) == 0.
func WriteFloat(dst []byte, f float64, format byte) int {
	if !checkFormat(format) {
		if len(dst) > 0 {
			dst[0] = 0
		}
		return 0
	}
	var canonBuf [32]byte
	canonical := appendFloatCanonical(canonBuf[:0], f)
	out := reformat(nil, canonical, format)

	n := len(out)
	if len(dst) > 0 {
		k := n
		if k > len(dst)-1 {
			k = len(dst) - 1
		}
		copy(dst, out[:k])
		dst[k] = 0
	}
	return n
}
