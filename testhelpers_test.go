package ryu

import (
	"strconv"
	"strings"
)

// strconvShortestDigits returns the significant-digit sequence of f's
// shortest round-tripping decimal, as computed by the standard library's
// independently-implemented algorithm. f must be finite and nonzero; sign
// is ignored (callers pass math.Abs(f)).
func strconvShortestDigits(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	s = strings.TrimPrefix(s, "-")
	i := strings.IndexByte(s, 'e')
	s = s[:i]
	return strings.Replace(s, ".", "", 1)
}

func mantissaDigits(m uint64) string {
	return strconv.FormatUint(m, 10)
}
