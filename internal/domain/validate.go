package domain

import "unicode/utf8"

// Core offsets of the 2-bp core shared by target and donor.
const (
	coreStart = 7
	coreEnd   = 9
)

// CheckLength fails with *LengthError unless seq is SiteLength bases long.
func CheckLength(strand Strand, seq string) error {
	if n := utf8.RuneCountInString(seq); n != SiteLength {
		return &LengthError{Strand: strand, Got: n}
	}
	return nil
}

// CheckAlphabet fails with *AlphabetError if seq holds anything other than A/C/G/T.
// Callers uppercase seq first.
func CheckAlphabet(strand Strand, seq string) error {
	i := firstNonDNA(seq)
	if i < 0 {
		return nil
	}
	r, _ := utf8.DecodeRuneInString(seq[i:])
	return &AlphabetError{
		Strand: strand,
		Pos:    utf8.RuneCountInString(seq[:i]) + 1,
		Char:   r,
	}
}

// CheckCoreMatch fails with *CoreMismatchError when the cores differ.
// Both sites must already have passed CheckLength.
func CheckCoreMatch(target, donor string) error {
	tc, dc := runeSlice(target, coreStart, coreEnd), runeSlice(donor, coreStart, coreEnd)
	if tc != dc {
		return &CoreMismatchError{TargetCore: tc, DonorCore: dc}
	}
	return nil
}

// Validate runs every site check in a fixed order and returns the first failure:
// target length, donor length, core match, target alphabet, donor alphabet.
func Validate(target, donor string) error {
	checks := []func() error{
		func() error { return CheckLength(StrandTarget, target) },
		func() error { return CheckLength(StrandDonor, donor) },
		func() error { return CheckCoreMatch(target, donor) },
		func() error { return CheckAlphabet(StrandTarget, target) },
		func() error { return CheckAlphabet(StrandDonor, donor) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// runeSlice slices by rune index so non-ASCII input reaches the alphabet check intact.
func runeSlice(s string, start, end int) string {
	r := []rune(s)
	if end > len(r) {
		end = len(r)
	}
	if start > end {
		return ""
	}
	return string(r[start:end])
}
