// Package price converts bond prices between float64 points and the
// Treasury fractional text form "W-FFE", where FF is 32nds of a point and
// E is 256ths of a point within that 32nd ('+' stands for 4).
//
// The conversion is a fixed-grid quantization at 1/256 of a point:
// Format floors any finer residue, and Parse only produces grid values.
package price

import (
	"math"
	"strconv"
)

const (
	// Tick32 is one 32nd of a point.
	Tick32 = 1.0 / 32.0
	// Tick256 is one eighth of a 32nd, the finest increment the text form carries.
	Tick256 = 1.0 / 256.0

	// MaxWhole is the largest whole-points value accepted in either direction.
	MaxWhole = math.MaxInt32

	// HalfMarker replaces the digit 4 in the final position.
	HalfMarker = '+'

	separator = '-'
	suffixLen = 4 // "-FFE"
)

// Parse decodes a price such as "99-16+" or "100-031" into points.
// The final character may be a digit 0-7 or '+', which is read as 4.
func Parse(s string) (float64, error) {
	n := len(s)
	if n < suffixLen+1 {
		return 0, &FormatError{Input: s, Reason: "too short"}
	}
	if s[n-suffixLen] != separator {
		return 0, &FormatError{Input: s, Reason: "missing '-' before 32nds"}
	}

	whole, err := parseWhole(s[:n-suffixLen])
	if err != nil {
		return 0, &FormatError{Input: s, Reason: err.Error()}
	}

	thirtySeconds, ok := twoDigits(s[n-3], s[n-2])
	if !ok {
		return 0, &FormatError{Input: s, Reason: "32nds must be two digits"}
	}
	if thirtySeconds > 31 {
		return 0, &FormatError{Input: s, Reason: "32nds out of range 00-31"}
	}

	eighths, ok := eighthDigit(s[n-1])
	if !ok {
		return 0, &FormatError{Input: s, Reason: "final character must be 0-7 or '+'"}
	}

	return float64(whole) + float64(thirtySeconds)/32.0 + float64(eighths)/256.0, nil
}

// Format encodes p in fractional text, truncating anything below 1/256.
// Negative, non-finite and oversized values return a *RangeError.
func Format(p float64) (string, error) {
	if err := checkRange(p); err != nil {
		return "", err
	}
	return string(appendPrice(nil, p)), nil
}

// Quantize snaps p down to the 1/256 grid, the value Parse(Format(p)) yields.
func Quantize(p float64) float64 {
	return math.Floor(p*256.0) / 256.0
}

func checkRange(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p >= MaxWhole+1 {
		return &RangeError{Value: p}
	}
	return nil
}

func appendPrice(dst []byte, p float64) []byte {
	whole := math.Floor(p)
	frac := p - whole
	// Scaling by powers of two is exact, so both floors see the same residue.
	thirtySeconds := int(math.Floor(frac * 32.0))
	eighths := int(math.Floor(frac*256.0)) % 8

	dst = strconv.AppendInt(dst, int64(whole), 10)
	dst = append(dst, separator, byte('0'+thirtySeconds/10), byte('0'+thirtySeconds%10))
	if eighths == 4 {
		return append(dst, HalfMarker)
	}
	return append(dst, byte('0'+eighths))
}

func parseWhole(s string) (int64, error) {
	if s == "" {
		return 0, errEmptyWhole
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errWholeDigits
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v > MaxWhole {
		return 0, errWholeRange
	}
	return v, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func eighthDigit(c byte) (int, bool) {
	if c == HalfMarker {
		return 4, true
	}
	if c < '0' || c > '7' {
		return 0, false
	}
	return int(c - '0'), true
}
