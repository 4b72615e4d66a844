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
// The code in this package is a Go translation of the C code written by Ulf
// Adams which may be found at https://github.com/ulfjack/ryu. That source
// code is licensed under Apache 2.0 and this code is derivative work thereof.

// Package ryu implements the Ryū algorithm for converting a float64 into
// the shortest decimal string that round-trips back to the same float64,
// and formats that decimal as scientific ('e'/'E') or plain-decimal ('f')
// text.
//
// The conversion is exact: for every finite float64 x, parsing the decimal
// produced by this package with any correct IEEE-754 decimal-to-double
// parser yields exactly x, and no shorter decimal with the same property
// exists. Ties between two equally-short decimals are broken in favor of
// the one with an even last digit.
package ryu
