package format

import (
	"fmt"
	"strings"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

// Summary renders a short human-readable description of b.
func Summary(b domain.BridgeRNA) string {
	var sb strings.Builder

	sb.WriteString("<WTBridgeRNA177nt>\n")
	fmt.Fprintf(&sb, "- Programmed target: %s\n", b.Target)
	fmt.Fprintf(&sb, "- Programmed donor: %s\n", b.Donor)
	fmt.Fprintf(&sb, "- Bridge RNA sequence: %s\n", b.Sequence)
	fmt.Fprintf(&sb, "- Core: %s\n", b.Core())
	fmt.Fprintf(&sb, "- GC content: %.1f%%\n", b.GCContent()*100)
	if h, err := b.Hash(); err == nil {
		fmt.Fprintf(&sb, "- Seqhash: %s\n", h)
	}

	sb.WriteString("\n")
	sb.WriteString(ComponentsTable(b.Components()))

	ws := b.Warnings()
	if len(ws) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range ws {
			fmt.Fprintf(&sb, "  - %s\n", w.Message)
		}
	}

	return sb.String()
}

// ComponentsTable renders the Left/Core/Right breakdown of both sites.
func ComponentsTable(c domain.Components) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s %-12s %-12s %s\n", "", "Left (7 bp)", "Core (2 bp)", "Right (5 bp)")
	fmt.Fprintf(&sb, "%-8s %-12s %-12s %s\n", "Target", c.Target.Left, c.Target.Core, c.Target.Right)
	fmt.Fprintf(&sb, "%-8s %-12s %-12s %s\n", "Donor", c.Donor.Left, c.Donor.Core, c.Donor.Right)
	return sb.String()
}
