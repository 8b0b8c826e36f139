package domain

// WarningKind classifies a non-fatal design advisory.
type WarningKind string

const (
	WarnDonorP7C      WarningKind = "donor_p7_c"
	WarnMatchingP6P7  WarningKind = "matching_p6p7"
	WarnNotCTorGTCore WarningKind = "core_not_ct_or_gt"
	WarnNotNTCore     WarningKind = "core_not_nt"
)

var warningMessages = map[WarningKind]string{
	WarnDonorP7C:      "Donor P7 is C, this was found to be very inefficient in a screen.",
	WarnMatchingP6P7:  "Target P6-P7 and Donor P6-P7 match, efficiency is unclear.",
	WarnNotCTorGTCore: "Core is not CT or GT, efficiency is unclear.",
	WarnNotNTCore:     "Core does not follow the expected NT format, likely inefficient.",
}

// Warning is a known-inefficient configuration. It never aborts a design.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// NewWarning builds a Warning with the fixed message for kind.
func NewWarning(kind WarningKind) Warning {
	return Warning{Kind: kind, Message: warningMessages[kind]}
}

// EvaluateWarnings inspects validated target and donor sites and returns every
// advisory that applies, in report order. It never reads an assembled sequence.
// Sites shorter than SiteLength carry no advisories; run Validate first.
func EvaluateWarnings(target, donor string) []Warning {
	out := []Warning{}
	if len(target) < SiteLength || len(donor) < SiteLength {
		return out
	}

	if hasDonorP7C(donor) {
		out = append(out, NewWarning(WarnDonorP7C))
	}
	if hasMatchingP6P7(target, donor) {
		out = append(out, NewWarning(WarnMatchingP6P7))
	}

	core := target[coreStart:coreEnd]
	if core != "CT" && core != "GT" {
		out = append(out, NewWarning(WarnNotCTorGTCore))
	}
	switch core {
	case "CT", "GT", "AT", "TT":
	default:
		out = append(out, NewWarning(WarnNotNTCore))
	}

	return out
}

// HasWarning reports whether ws contains kind.
func HasWarning(ws []Warning, kind WarningKind) bool {
	for _, w := range ws {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

func hasDonorP7C(donor string) bool {
	return donor[6] == 'C'
}

func hasMatchingP6P7(target, donor string) bool {
	return p6p7(target) == p6p7(donor)
}

// p6p7 returns the dinucleotide at positions P6-P7 (offsets 5-6).
func p6p7(site string) string {
	return site[5:7]
}
