package format

import (
	"strings"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

// DefaultLineWrap is the FASTA sequence width.
const DefaultLineWrap = 80

type fastaOptions struct {
	lineWrap      int
	oligos        bool
	leftOverhang  string
	rightOverhang string
}

// FASTAOption customizes FASTA rendering.
type FASTAOption func(*fastaOptions)

// WithLineWrap sets the sequence width; n <= 1 writes each sequence on one line.
func WithLineWrap(n int) FASTAOption {
	return func(o *fastaOptions) { o.lineWrap = n }
}

// WithAnnealingOligos appends a top and bottom oligo for annealed-oligo cloning.
// The top oligo is left+sequence and the bottom oligo is right+revcomp(sequence),
// so the annealed duplex carries left and right as 5' overhangs.
// Overhangs are uppercased but not otherwise checked.
func WithAnnealingOligos(left, right string) FASTAOption {
	return func(o *fastaOptions) {
		o.oligos = true
		o.leftOverhang = strings.ToUpper(left)
		o.rightOverhang = strings.ToUpper(right)
	}
}

// FASTA renders b as a FASTA record named BridgeRNA_tgt_<T>_dnr_<D>.
func FASTA(b domain.BridgeRNA, opts ...FASTAOption) string {
	o := fastaOptions{lineWrap: DefaultLineWrap}
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	writeRecord(&sb, b.Name(), b.Sequence, o.lineWrap)

	if o.oligos {
		top, bottom := AnnealingOligos(b, o.leftOverhang, o.rightOverhang)
		writeRecord(&sb, b.Name()+"_oligo_top", top, o.lineWrap)
		writeRecord(&sb, b.Name()+"_oligo_bottom", bottom, o.lineWrap)
	}

	return sb.String()
}

// AnnealingOligos returns the top and bottom strand oligos for b.
func AnnealingOligos(b domain.BridgeRNA, left, right string) (top, bottom string) {
	top = left + b.Sequence
	bottom = right + domain.ReverseComplement(b.Sequence)
	return top, bottom
}

func writeRecord(sb *strings.Builder, name, seq string, lineWrap int) {
	sb.WriteString(">")
	sb.WriteString(name)
	sb.WriteString("\n")

	if lineWrap <= 1 {
		sb.WriteString(seq)
		sb.WriteString("\n")
		return
	}
	for i := 0; i < len(seq); i += lineWrap {
		end := i + lineWrap
		if end > len(seq) {
			end = len(seq)
		}
		sb.WriteString(seq[i:end])
		sb.WriteString("\n")
	}
}
