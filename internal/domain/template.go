package domain

import (
	"fmt"
	"strings"
)

// TemplateLength is the length of the wild-type bridge RNA template.
const TemplateLength = 177

// Template is the 177-nt wild-type bridge RNA. Every N lies inside one of the
// assembly regions and is overwritten by a design.
const Template = "AGTGCAGAGAAAATCGGCCAGTTTTCTCTGCCTGCAGTCCGCATGCCGTNNNNNNNNNTGGGTTCTAACCTGTNNNNNNNNNTTATGCAGCGGACTGCCTTTCTCCCAAAGTGATAAACCGGNNNNNNNNATGGACCGGTTTTCCCGGTAATCCGTNNTTNNNNNNNTGGTTTCACT"

// GuideAnnotation marks the guide positions of the template
// (L/R target guides, l/r donor guides, C/c cores, H/h handshake).
const GuideAnnotation = ".................................................LLLLLLLCC...............RRRRRCCHH........................................lllllllc..........................rr..rrrcchh.........."

// Structure selects one of the two dot-bracket secondary structures of the template.
type Structure string

const (
	StructureP1 Structure = "p1"
	StructureP2 Structure = "p2"
)

const (
	structureP1 = "...(((((((((((......))))))))))).((((((((((.(((............(((((....)))))..............))))).)))))))).........((((....(((.............((((((.....)))))...)...............)))..))))"
	structureP2 = "((.(((((((((((......)))))))))))))(((((((((.(((.............<(((.<>.)))>...............))))))))))))...........((((...<(((..........<.(((((((.....)))))...))....>.........)))>.))))"
)

// DotBracket returns the annotation string for s. Unknown values fall back to P2.
func (s Structure) DotBracket() string {
	if s == StructureP1 {
		return structureP1
	}
	return structureP2
}

// ParseStructure accepts "p1"/"p2" (case-insensitive); empty means P2.
func ParseStructure(s string) (Structure, error) {
	switch Structure(strings.ToLower(strings.TrimSpace(s))) {
	case "", StructureP2:
		return StructureP2, nil
	case StructureP1:
		return StructureP1, nil
	default:
		return "", fmt.Errorf("unsupported structure %q (expected p1|p2)", s)
	}
}

// Region is a half-open [Start, End) range of the template.
type Region struct {
	Name  string
	Start int
	End   int
}

// Len returns the number of bases the region holds.
func (r Region) Len() int { return r.End - r.Start }

func (r Region) String() string {
	return fmt.Sprintf("%s[%d,%d)", r.Name, r.Start, r.End)
}

var (
	RegionLTG    = Region{Name: "LTG", Start: 49, End: 58}
	RegionRTG    = Region{Name: "RTG", Start: 73, End: 80}
	RegionLDG    = Region{Name: "LDG", Start: 122, End: 130}
	RegionRDG1   = Region{Name: "RDG1", Start: 160, End: 165}
	RegionRDG2   = Region{Name: "RDG2", Start: 156, End: 158}
	RegionTBLHSG = Region{Name: "TBL-HSG", Start: 80, End: 82}
	RegionDBLHSG = Region{Name: "DBL-HSG", Start: 165, End: 167}
)

// Regions lists every assembly region in write order.
func Regions() []Region {
	return []Region{
		RegionLTG, RegionRTG,
		RegionLDG, RegionRDG1, RegionRDG2,
		RegionTBLHSG, RegionDBLHSG,
	}
}
