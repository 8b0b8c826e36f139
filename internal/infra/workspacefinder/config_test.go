package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "ws")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	// Partial config: only output.format.
	root := writeConfig(t, "bridgerna:\n  output:\n    format: fasta\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Output.Format != "fasta" {
		t.Fatalf("expected format=fasta, got=%s", cfg.Output.Format)
	}
	if cfg.Output.LineWrap != 80 {
		t.Fatalf("expected default line wrap 80, got=%d", cfg.Output.LineWrap)
	}
	if cfg.Output.LeaderPadding != 5 {
		t.Fatalf("expected default leader padding 5, got=%d", cfg.Output.LeaderPadding)
	}
	if cfg.Output.Structure != domain.StructureP2 {
		t.Fatalf("expected default structure p2, got=%s", cfg.Output.Structure)
	}
	if cfg.Paths.DesignsDir != "designs" || cfg.Paths.BatchesDir != "batches" {
		t.Fatalf("unexpected default paths %+v", cfg.Paths)
	}
	if !cfg.Store.Index {
		t.Fatalf("expected index enabled by default")
	}
}

func TestLoadConfig_FullFile(t *testing.T) {
	root := writeConfig(t, `bridgerna:
  output:
    format: Summary
    line_wrap: 60
    leader_padding: 2
    structure: P1
  oligos:
    include: true
    left_overhang: CACCG
    right_overhang: AAAC
  paths:
    designs_dir: out
  store:
    index: false
`)

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Output.Format != "summary" || cfg.Output.LineWrap != 60 || cfg.Output.LeaderPadding != 2 {
		t.Fatalf("unexpected output config %+v", cfg.Output)
	}
	if cfg.Output.Structure != domain.StructureP1 {
		t.Fatalf("expected p1, got %s", cfg.Output.Structure)
	}
	if !cfg.Oligos.Include || cfg.Oligos.LeftOverhang != "CACCG" || cfg.Oligos.RightOverhang != "AAAC" {
		t.Fatalf("unexpected oligo config %+v", cfg.Oligos)
	}
	if cfg.Paths.DesignsDir != "out" || cfg.Paths.BatchesDir != "batches" {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
	if cfg.Store.Index {
		t.Fatalf("expected index disabled")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	root := writeConfig(t, "bridgerna:\n  output:\n    line_wrap: 60\n")
	t.Setenv("BRIDGERNA_OUTPUT_LINE_WRAP", "40")
	t.Setenv("BRIDGERNA_OLIGOS_INCLUDE", "true")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Output.LineWrap != 40 {
		t.Fatalf("expected env override 40, got %d", cfg.Output.LineWrap)
	}
	if !cfg.Oligos.Include {
		t.Fatalf("expected env override for oligos.include")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		kind    domain.ErrorKind
	}{
		{"bad yaml", "bridgerna: [\n", domain.KindInvalidConfig},
		{"bad format", "bridgerna:\n  output:\n    format: genbank\n", domain.KindInvalidConfig},
		{"bad structure", "bridgerna:\n  output:\n    structure: p3\n", domain.KindInvalidConfig},
		{"bad padding", "bridgerna:\n  output:\n    leader_padding: 0\n", domain.KindInvalidConfig},
	}
	for _, c := range cases {
		root := writeConfig(t, c.content)
		cfg, err := LoadConfig(root)
		if !domain.IsKind(err, c.kind) {
			t.Fatalf("%s: expected kind %s, got %v", c.name, c.kind, err)
		}
		if cfg.Output.Format != "stockholm" {
			t.Fatalf("%s: expected defaults on error", c.name)
		}
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("BRIDGERNA_OUTPUT_FORMAT", "fasta")
	cfg, err := EnvConfig()
	if err != nil {
		t.Fatalf("EnvConfig: %v", err)
	}
	if cfg.Output.Format != "fasta" {
		t.Fatalf("expected fasta, got %s", cfg.Output.Format)
	}
}
