package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ArcInstitute/bridge-rna-designer/internal/app/format"
	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

type outputFlags struct {
	format    string
	lineWrap  int
	oligos    bool
	left      string
	right     string
	structure string
	padding   int
}

func bindOutputFlags(cmd *cobra.Command, o *outputFlags) {
	def := domain.DefaultConfig()
	f := cmd.Flags()
	f.StringVarP(&o.format, "format", "f", def.Output.Format, "Output format: stockholm|fasta|summary|json")
	f.IntVar(&o.lineWrap, "line-wrap", def.Output.LineWrap, "FASTA sequence line width (0 = single line)")
	f.BoolVar(&o.oligos, "oligos", def.Oligos.Include, "Append annealing oligo records to FASTA output")
	f.StringVar(&o.left, "left-overhang", def.Oligos.LeftOverhang, "5' overhang added to the top oligo")
	f.StringVar(&o.right, "right-overhang", def.Oligos.RightOverhang, "5' overhang added to the bottom oligo")
	f.StringVar(&o.structure, "structure", string(def.Output.Structure), "Secondary structure for the #=GC SS row: p1|p2")
	f.IntVar(&o.padding, "leader-padding", def.Output.LeaderPadding, "Spaces between the longest Stockholm label and the sequence column")
}

// applyOutputFlags layers explicitly set flags over cfg.
func applyOutputFlags(cmd *cobra.Command, o outputFlags, cfg domain.Config) (domain.Config, error) {
	f := cmd.Flags()

	if f.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(o.format))
	}
	if f.Changed("line-wrap") {
		cfg.Output.LineWrap = o.lineWrap
	}
	if f.Changed("leader-padding") {
		if o.padding < 1 {
			return cfg, fmt.Errorf("--leader-padding must be at least 1")
		}
		cfg.Output.LeaderPadding = o.padding
	}
	if f.Changed("structure") {
		s, err := domain.ParseStructure(o.structure)
		if err != nil {
			return cfg, err
		}
		cfg.Output.Structure = s
	}
	if f.Changed("oligos") {
		cfg.Oligos.Include = o.oligos
	}
	if f.Changed("left-overhang") {
		cfg.Oligos.LeftOverhang = strings.TrimSpace(o.left)
		cfg.Oligos.Include = true
	}
	if f.Changed("right-overhang") {
		cfg.Oligos.RightOverhang = strings.TrimSpace(o.right)
		cfg.Oligos.Include = true
	}

	switch cfg.Output.Format {
	case "stockholm", "fasta", "summary", "json":
	default:
		return cfg, fmt.Errorf("unsupported format %q (expected stockholm|fasta|summary|json)", cfg.Output.Format)
	}
	return cfg, nil
}

func renderOptions(cfg domain.Config) ([]format.FASTAOption, []format.StockholmOption) {
	fa := []format.FASTAOption{format.WithLineWrap(cfg.Output.LineWrap)}
	if cfg.Oligos.Include {
		fa = append(fa, format.WithAnnealingOligos(cfg.Oligos.LeftOverhang, cfg.Oligos.RightOverhang))
	}
	sto := []format.StockholmOption{
		format.WithLeaderPadding(cfg.Output.LeaderPadding),
		format.WithStructure(cfg.Output.Structure),
	}
	return fa, sto
}

type jsonDesign struct {
	ID     string                `json:"id,omitempty"`
	Design domain.DesignArtifact `json:"design"`
}

func designJSON(res usecase.DesignResult, label string) jsonDesign {
	art := domain.NewDesignArtifact(res.Design, label, time.Now().UTC())
	art.ID = res.ArtifactID
	return jsonDesign{ID: res.ArtifactID, Design: art}
}

// printDesign writes one design in the configured format. Stockholm output gets
// a trailing newline here; the formatter itself ends at "//".
func printDesign(w io.Writer, res usecase.DesignResult, cfg domain.Config) error {
	fa, sto := renderOptions(cfg)

	switch cfg.Output.Format {
	case "stockholm", "":
		_, err := fmt.Fprintln(w, format.Stockholm(res.Design, sto...))
		return err
	case "fasta":
		_, err := fmt.Fprint(w, format.FASTA(res.Design, fa...))
		return err
	case "summary":
		_, err := fmt.Fprint(w, format.Summary(res.Design))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(designJSON(res, ""))
	default:
		return fmt.Errorf("unsupported format %q (expected stockholm|fasta|summary|json)", cfg.Output.Format)
	}
}
