package domain

import (
	"strings"

	"github.com/bebop/poly/transform"
)

// SiteLength is the length of a target or donor site.
const SiteLength = 14

// NormalizeSite uppercases a raw site. It does not strip or validate anything.
func NormalizeSite(s string) string {
	return strings.ToUpper(s)
}

// ReverseComplement maps A<->T, C<->G and reverses the result.
func ReverseComplement(seq string) string {
	return transform.ReverseComplement(seq)
}

// IsDNA reports whether seq only contains A, C, G or T.
func IsDNA(seq string) bool {
	return firstNonDNA(seq) < 0
}

// firstNonDNA returns the byte index of the first non-ACGT rune, or -1.
func firstNonDNA(seq string) int {
	for i, r := range seq {
		switch r {
		case 'A', 'C', 'G', 'T':
			continue
		default:
			return i
		}
	}
	return -1
}
