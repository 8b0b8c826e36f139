package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

func TestUserMessage(t *testing.T) {
	_, lengthErr := domain.DesignBridgeRNA("ATCG", "ACAGTATCTTGTAT")
	_, alphaErr := domain.DesignBridgeRNA("ATCGGGCCTACGCA", "ACAGTAXCTTGTAT")
	_, coreErr := domain.DesignBridgeRNA("ATCGGGCCTACGCA", "ACAGTATGATGTAT")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"length", lengthErr, "Target must be 14 bp (got 4)"},
		{"alphabet", alphaErr, `Donor contains non-DNA characters ('X' at 7)`},
		{"core", coreErr, "Target and donor cores differ (CT vs GA)"},
		{
			"batch missing",
			&domain.OpError{Op: "yamlbatch.load", Kind: domain.KindNotFound, Path: "b.yaml", Err: domain.ErrNotFound},
			"Batch file not found",
		},
		{
			"design missing",
			&domain.OpError{Op: "designstore.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Design not found",
		},
		{
			"yaml line",
			&domain.OpError{Op: "yamlbatch.load", Kind: domain.KindInvalidConfig, Path: "/ws/batches/x.yaml", Err: errors.New("yaml: line 3: did not find expected key")},
			"Invalid YAML at x.yaml line 3",
		},
		{
			"batch field",
			&domain.OpError{
				Op:   "yamlbatch.validate",
				Kind: domain.KindInvalidConfig,
				Path: "/ws/batches/x.yaml",
				Err:  fmt.Errorf("field pairs[1].donor: required: %w", domain.ErrInvalidConfig),
			},
			"Invalid x.yaml: pairs[1].donor: required",
		},
		{
			"partial design listing",
			&domain.OpError{Op: "designstore.list", Kind: domain.KindInvalidConfig, Path: "/ws/designs", Err: errors.New("1 unreadable design(s)")},
			"Some saved designs could not be read (see logs)",
		},
		{"unknown", errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Fatalf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}
