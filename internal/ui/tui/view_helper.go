package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ArcInstitute/bridge-rna-designer/internal/app/format"
	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderLiveComponents shows the Left/Core/Right split of whatever has been typed so far.
func renderLiveComponents(target, donor string) string {
	return format.ComponentsTable(domain.Components{
		Target: domain.SplitSite(strings.ToUpper(strings.TrimSpace(target))),
		Donor:  domain.SplitSite(strings.ToUpper(strings.TrimSpace(donor))),
	})
}

func renderWarnings(ws []domain.Warning) string {
	if len(ws) == 0 {
		return "No warnings."
	}
	var b strings.Builder
	b.WriteString("Warnings:\n")
	for _, w := range ws {
		b.WriteString("  ⚠ ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderArtifact(art domain.DesignArtifact) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name:     %s\n", art.Name)
	if art.Label != "" {
		fmt.Fprintf(&b, "Label:    %s\n", art.Label)
	}
	fmt.Fprintf(&b, "Created:  %s\n", art.CreatedAt.Format("2006-01-02 15:04:05Z07:00"))
	fmt.Fprintf(&b, "Core:     %s\n", art.Core)
	fmt.Fprintf(&b, "GC:       %.1f%%\n", art.GCContent*100)
	fmt.Fprintf(&b, "Seqhash:  %s\n\n", art.SeqHash)

	b.WriteString(format.ComponentsTable(art.Parts))
	b.WriteString("\n")
	b.WriteString(renderWarnings(art.Warnings))
	b.WriteString("\n")

	return b.String()
}

func renderBatchResult(res batchDoneMsg) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Batch: %s\n", res.res.Name)
	fmt.Fprintf(&b, "Pairs: %d  Failed: %d\n\n", len(res.res.Items), res.res.Failed())

	for _, it := range res.res.Items {
		if it.Err != nil {
			fmt.Fprintf(&b, "✗ %s  %s\n", it.Pair.Name, userMessage(it.Err))
			continue
		}
		mark := "✓"
		if len(it.Result.Warnings) > 0 {
			mark = "⚠"
		}
		fmt.Fprintf(&b, "%s %s  %s\n", mark, it.Pair.Name, it.Result.ArtifactID)
	}
	return b.String()
}
