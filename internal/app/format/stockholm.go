package format

import (
	"strings"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

// DefaultLeaderPadding is the gap between the longest label and the aligned column.
const DefaultLeaderPadding = 5

const (
	stockholmHeader  = "# STOCKHOLM 1.0"
	stockholmEnd     = "//"
	labelTemplate    = "#=GC bRNA_template"
	labelGuides      = "#=GC guides"
	labelStructure   = "#=GC SS"
	labelWarningLine = "#=GF WARNING"
)

type stockholmOptions struct {
	leaderPadding int
	structure     domain.Structure
}

// StockholmOption customizes Stockholm rendering.
type StockholmOption func(*stockholmOptions)

// WithLeaderPadding sets the number of spaces after the longest label.
func WithLeaderPadding(n int) StockholmOption {
	return func(o *stockholmOptions) { o.leaderPadding = n }
}

// WithStructure selects the dot-bracket structure for the #=GC SS row.
func WithStructure(s domain.Structure) StockholmOption {
	return func(o *stockholmOptions) { o.structure = s }
}

// Stockholm renders b as an annotated alignment: the sequence row, the template,
// guide and structure rows, one #=GF WARNING line per warning, then "//".
// The output has no trailing newline after "//".
func Stockholm(b domain.BridgeRNA, opts ...StockholmOption) string {
	o := stockholmOptions{
		leaderPadding: DefaultLeaderPadding,
		structure:     domain.StructureP2,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rows := []struct{ label, value string }{
		{b.Name(), b.Sequence},
		{labelTemplate, domain.Template},
		{labelGuides, domain.GuideAnnotation},
		{labelStructure, o.structure.DotBracket()},
	}

	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}
	width += o.leaderPadding

	var sb strings.Builder
	sb.WriteString(stockholmHeader)
	sb.WriteString("\n")
	for _, r := range rows {
		sb.WriteString(r.label)
		if pad := width - len(r.label); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(r.value)
		sb.WriteString("\n")
	}
	for _, w := range b.Warnings() {
		sb.WriteString(labelWarningLine)
		sb.WriteString(" ")
		sb.WriteString(w.Message)
		sb.WriteString("\n")
	}
	sb.WriteString(stockholmEnd)

	return sb.String()
}
