package domain

import (
	"fmt"

	"github.com/bebop/poly/checks"
	"github.com/bebop/poly/seqhash"
)

// BridgeRNA is one finished design: the validated sites and the assembled
// 177-nt sequence. Values are immutable once returned by DesignBridgeRNA.
type BridgeRNA struct {
	Target   string
	Donor    string
	Sequence string

	// AssemblyWarnings are raised by the handshake-guide step itself.
	// Warnings() re-evaluates the full set from the sites.
	AssemblyWarnings []Warning
}

// DesignBridgeRNA uppercases both sites, validates them fail-fast and assembles
// the bridge RNA. No partial design is returned on error.
func DesignBridgeRNA(target, donor string) (BridgeRNA, error) {
	target = NormalizeSite(target)
	donor = NormalizeSite(donor)

	if err := Validate(target, donor); err != nil {
		return BridgeRNA{}, err
	}

	seq, hsg := Assemble(target, donor)
	return BridgeRNA{
		Target:           target,
		Donor:            donor,
		Sequence:         seq,
		AssemblyWarnings: hsg,
	}, nil
}

// Name is the record name used by every output format.
func (b BridgeRNA) Name() string {
	return fmt.Sprintf("BridgeRNA_tgt_%s_dnr_%s", b.Target, b.Donor)
}

// Core returns the shared 2-bp core, or less for a target that was never validated.
func (b BridgeRNA) Core() string {
	return runeSlice(b.Target, coreStart, coreEnd)
}

// Warnings evaluates the advisories for this design.
func (b BridgeRNA) Warnings() []Warning {
	return EvaluateWarnings(b.Target, b.Donor)
}

// Region returns the bases currently held by r; empty for an unassembled value.
func (b BridgeRNA) Region(r Region) string {
	return runeSlice(b.Sequence, r.Start, r.End)
}

// GCContent returns the GC fraction of the assembled sequence.
func (b BridgeRNA) GCContent() float64 {
	return checks.GcContent(b.Sequence)
}

// Hash returns the seqhash of the assembled sequence (linear, single stranded).
func (b BridgeRNA) Hash() (string, error) {
	return seqhash.Hash(b.Sequence, "DNA", false, false)
}

// SiteComponents splits a 14-bp site into its left arm, core and right arm.
type SiteComponents struct {
	Left  string `json:"left"`
	Core  string `json:"core"`
	Right string `json:"right"`
}

// Components is the target/donor breakdown shown next to a design.
type Components struct {
	Target SiteComponents `json:"target"`
	Donor  SiteComponents `json:"donor"`
}

// SplitSite breaks a site into Left (7), Core (2) and Right (5). Short input
// yields shorter, possibly empty, parts.
func SplitSite(site string) SiteComponents {
	return SiteComponents{
		Left:  runeSlice(site, 0, coreStart),
		Core:  runeSlice(site, coreStart, coreEnd),
		Right: runeSlice(site, coreEnd, len(site)),
	}
}

// Components returns the site breakdown for b.
func (b BridgeRNA) Components() Components {
	return Components{
		Target: SplitSite(b.Target),
		Donor:  SplitSite(b.Donor),
	}
}
