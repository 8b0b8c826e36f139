package domain

import "testing"

func TestEvaluateWarnings(t *testing.T) {
	cases := []struct {
		name          string
		target, donor string
		want          []WarningKind
	}{
		{"example has none", exampleTarget, exampleDonor, nil},
		{"AT core", "ATCGGGCATACGCA", "ACAGTATATTGTAT", []WarningKind{WarnNotCTorGTCore}},
		{"TT core", "ATCGGGCTTACGCA", "ACAGTATTTTGTAT", []WarningKind{WarnNotCTorGTCore}},
		{"GC core", "ATCGGGCGCACGCA", "ACAGTATGCTGTAT", []WarningKind{WarnNotCTorGTCore, WarnNotNTCore}},
		{"donor P7 C", exampleTarget, "ACAGTACCTTGTAT", []WarningKind{WarnDonorP7C}},
		{"matching + P7C + AT core", matchTarget, matchDonor, []WarningKind{WarnDonorP7C, WarnMatchingP6P7, WarnNotCTorGTCore}},
	}
	for _, c := range cases {
		got := EvaluateWarnings(c.target, c.donor)
		if len(got) != len(c.want) {
			t.Fatalf("%s: expected %v, got %+v", c.name, c.want, got)
		}
		for i, k := range c.want {
			if got[i].Kind != k {
				t.Fatalf("%s: warning %d = %s, want %s", c.name, i, got[i].Kind, k)
			}
			if got[i].Message == "" {
				t.Fatalf("%s: warning %s has no message", c.name, k)
			}
		}
	}
}

func TestEvaluateWarnings_AllFourCoOccur(t *testing.T) {
	target := "ATCGGTCGCACGCA"
	donor := "ACAGTTCGCTGTAT"
	got := EvaluateWarnings(target, donor)
	want := []WarningKind{WarnDonorP7C, WarnMatchingP6P7, WarnNotCTorGTCore, WarnNotNTCore}
	if len(got) != len(want) {
		t.Fatalf("expected %d warnings, got %+v", len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("warning %d = %s, want %s", i, got[i].Kind, k)
		}
	}

	b, err := DesignBridgeRNA(target, donor)
	if err != nil {
		t.Fatalf("warnings must not abort a design: %v", err)
	}
	if len(b.Warnings()) != 4 {
		t.Fatalf("expected design to report all 4 warnings")
	}
}

func TestNewWarning_Messages(t *testing.T) {
	cases := map[WarningKind]string{
		WarnDonorP7C:      "Donor P7 is C, this was found to be very inefficient in a screen.",
		WarnMatchingP6P7:  "Target P6-P7 and Donor P6-P7 match, efficiency is unclear.",
		WarnNotCTorGTCore: "Core is not CT or GT, efficiency is unclear.",
		WarnNotNTCore:     "Core does not follow the expected NT format, likely inefficient.",
	}
	for k, want := range cases {
		if got := NewWarning(k).Message; got != want {
			t.Errorf("%s: got %q, want %q", k, got, want)
		}
	}
}

func TestEvaluateWarnings_ShortSitesDoNotPanic(t *testing.T) {
	cases := []struct{ target, donor string }{
		{"", ""},
		{"ATCG", "ACAGTATCTTGTAT"},
		{"ATCGGGCCTACGCA", "ACAGTA"},
	}
	for _, c := range cases {
		if ws := EvaluateWarnings(c.target, c.donor); len(ws) != 0 {
			t.Fatalf("EvaluateWarnings(%q, %q): expected no warnings, got %v", c.target, c.donor, ws)
		}
	}

	var zero BridgeRNA
	if zero.Core() != "" || zero.Region(RegionTBLHSG) != "" || len(zero.Warnings()) != 0 {
		t.Fatalf("expected zero BridgeRNA to report nothing")
	}
	if got := (BridgeRNA{Target: "ATCGGGCC"}).Core(); got != "C" {
		t.Fatalf("expected truncated core C, got %q", got)
	}
}
