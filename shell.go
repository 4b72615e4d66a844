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

import "bytes"

// reformat is the formatter shell (component H): it takes the canonical
// scientific form produced by appendCanonical/appendSpecial and rewrites
// it into the requested presentation, appending to dst.
//
// canon is never retained past this call and may alias a caller's stack
// array; reformat only reads it.
func reformat(dst, canon []byte, format byte) []byte {
	eIdx := bytes.IndexByte(canon, 'E')
	if eIdx < 0 {
		// NaN / Infinity / -Infinity: not part of the numeric grammar,
		// passed through unchanged regardless of the requested format.
		return append(dst, canon...)
	}
	switch format {
	case 'e', 'E':
		start := len(dst)
		dst = append(dst, canon...)
		dst[start+eIdx] = format
		return dst
	case 'f':
		return reformatF(dst, canon, eIdx)
	default:
		return dst
	}
}

// reformatF implements the 'f' branch of component H: shift the decimal
// point according to the canonical exponent, or emit leading zeros for a
// negative exponent.
func reformatF(dst, canon []byte, eIdx int) []byte {
	mantStart := 0
	neg := canon[0] == '-'
	if neg {
		mantStart = 1
	}

	dotIdx := bytes.IndexByte(canon[mantStart:eIdx], '.')
	var digits []byte
	if dotIdx < 0 {
		digits = canon[mantStart:eIdx]
	} else {
		dotIdx += mantStart
		digits = make([]byte, 0, eIdx-mantStart-1)
		digits = append(digits, canon[mantStart:dotIdx]...)
		digits = append(digits, canon[dotIdx+1:eIdx]...)
	}
	exp := parseExp(canon[eIdx+1:])

	if neg {
		dst = append(dst, '-')
	}

	if exp < 0 {
		dst = append(dst, '0', '.')
		for i := int32(0); i < -exp-1; i++ {
			dst = append(dst, '0')
		}
		return append(dst, digits...)
	}

	// pointPos is how many leading digits land before the decimal point.
	// The canonical mantissa never ends in '0' (except the literal "0"
	// for zero itself), so whenever pointPos < len(digits) the remaining
	// suffix is genuine significant digits, never a zero tail that would
	// need trimming; when pointPos >= len(digits) we only pad zeros and
	// never emit a '.' in the first place. Either way the output already
	// satisfies the "no trailing '.'/'.0'" requirement without a
	// separate trim pass.
	pointPos := int(exp) + 1
	if pointPos >= len(digits) {
		dst = append(dst, digits...)
		for i := len(digits); i < pointPos; i++ {
			dst = append(dst, '0')
		}
		return dst
	}
	dst = append(dst, digits[:pointPos]...)
	dst = append(dst, '.')
	return append(dst, digits[pointPos:]...)
}

// parseExp is a bounded integer parse for the canonical exponent text
// (always 1-4 bytes: an optional '-' and 1-3 digits, since the canonical
// exponent is within [-324, 308]). Unlike atoi in the reference C
// implementation, it never reads past the slice it is given.
func parseExp(b []byte) int32 {
	neg := false
	i := 0
	if len(b) > 0 && b[0] == '-' {
		neg = true
		i = 1
	}
	var v int32
	for ; i < len(b); i++ {
		v = v*10 + int32(b[i]-'0')
	}
	if neg {
		v = -v
	}
	return v
}
