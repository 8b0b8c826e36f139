package domain

import "fmt"

// assembly is the per-call working copy of the template.
// It is never shared; Sequence() freezes it into an immutable string.
type assembly struct {
	buf     []byte
	written map[string]bool
}

func newAssembly() *assembly {
	return &assembly{
		buf:     []byte(Template),
		written: make(map[string]bool, len(Regions())),
	}
}

// place writes fragment into r. A width mismatch or a second write to the same
// region is a programming error in the template table and panics.
func (a *assembly) place(r Region, fragment string) {
	if len(fragment) != r.Len() {
		panic(fmt.Sprintf("assemble: region %s expects %d bases, got %d", r, r.Len(), len(fragment)))
	}
	if a.written[r.Name] {
		panic(fmt.Sprintf("assemble: region %s written twice", r))
	}
	copy(a.buf[r.Start:r.End], fragment)
	a.written[r.Name] = true
}

func (a *assembly) sequence() string {
	return string(a.buf)
}

// Assemble fills every template region from validated target and donor sites.
// Each step reads the original sites, never the working buffer, so the result
// depends only on the two inputs. The returned warnings are the ones raised by
// the handshake-guide step.
func Assemble(target, donor string) (string, []Warning) {
	a := newAssembly()

	placeTarget(a, target)
	placeDonor(a, donor)
	warnings := placeHandshake(a, target, donor)

	return a.sequence(), warnings
}

func placeTarget(a *assembly, target string) {
	a.place(RegionLTG, target[:9])
	a.place(RegionRTG, ReverseComplement(target[7:]))
}

func placeDonor(a *assembly, donor string) {
	a.place(RegionLDG, donor[:8])
	a.place(RegionRDG1, ReverseComplement(donor[7:len(donor)-2]))
	a.place(RegionRDG2, ReverseComplement(donor[len(donor)-2:]))
}

// placeHandshake writes both HSG strands. When the P6-P7 dinucleotides match,
// the donor-side strand carries the target P6-P7 as-is instead of its reverse
// complement, and a MatchingP6P7 warning is raised.
func placeHandshake(a *assembly, target, donor string) []Warning {
	tp, dp := p6p7(target), p6p7(donor)

	a.place(RegionTBLHSG, ReverseComplement(dp))
	if tp != dp {
		a.place(RegionDBLHSG, ReverseComplement(tp))
		return nil
	}

	a.place(RegionDBLHSG, tp)
	return []Warning{NewWarning(WarnMatchingP6P7)}
}
