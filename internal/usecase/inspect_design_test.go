package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

func TestInspectDesign(t *testing.T) {
	st := &fakeStore{}
	_, err := NewDesignBridge(WithStore(st)).Execute(context.Background(), DesignRequest{
		Target: "ATCGGGCCTACGCA", Donor: "ACAGTATCTTGTAT", Label: "example", Save: true,
	})
	if err != nil {
		t.Fatalf("design: %v", err)
	}

	uc := NewInspectDesign(st)

	refs, err := uc.List()
	if err != nil || len(refs) != 1 || refs[0].Label != "example" {
		t.Fatalf("unexpected list %v %v", refs, err)
	}

	full, err := uc.Execute("id-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(full, `"core": "CT"`) {
		t.Fatalf("expected indented JSON document, got:\n%s", full)
	}

	cases := []struct {
		expr string
		want string
	}{
		{"$.core", "CT"},
		{"$.components.donor.right", "TGTAT"},
		{"$.label", "example"},
	}
	for _, c := range cases {
		got, err := uc.Execute("id-1", c.expr)
		if err != nil {
			t.Fatalf("%s: %v", c.expr, err)
		}
		if got != c.want {
			t.Fatalf("%s: expected %q, got %q", c.expr, c.want, got)
		}
	}
}

func TestInspectDesign_Errors(t *testing.T) {
	st := &fakeStore{}
	uc := NewInspectDesign(st)

	if _, err := uc.Execute("missing", ""); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	st.saved = append(st.saved, domain.DesignArtifact{ID: "a"})
	if _, err := uc.Execute("a", "$.nope"); !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input for bad query, got %v", err)
	}
}

func TestInitWorkspace_DefaultsRoot(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("  ", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.got.Root != "." || !fi.force {
		t.Fatalf("unexpected init call %+v force=%v", fi.got, fi.force)
	}
}
