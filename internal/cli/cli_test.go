package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/fsworkspace"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

const (
	exampleTarget = "ATCGGGCCTACGCA"
	exampleDonor  = "ACAGTATCTTGTAT"
)

// --- looksLikePath ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"screen", false},
		{"screen.yaml", false},
		{"./screen.yaml", true},
		{"batches/screen.yaml", true},
		{"/abs/path/screen.yaml", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- hasYAMLExt ---

func TestHasYAMLExt(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"screen.yaml", true},
		{"screen.yml", true},
		{"SCREEN.YAML", true},
		{"screen.json", false},
		{"screen", false},
		{"", false},
	}
	for _, c := range cases {
		if got := hasYAMLExt(c.input); got != c.want {
			t.Errorf("hasYAMLExt(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- fileExists ---

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.txt")
	if err := os.WriteFile(p, []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
	if fileExists(filepath.Join(tmp, "not_there.txt")) {
		t.Error("expected fileExists=false for non-existent file")
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"design", "batch", "designs", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	for _, flag := range []string{"debug", "verbose"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
}

func TestDesignCmd_Flags(t *testing.T) {
	cmd := designCmd(&globalFlags{})
	for _, flag := range []string{
		"target", "donor", "label", "save", "workspace", "format",
		"line-wrap", "oligos", "left-overhang", "right-overhang", "structure", "leader-padding",
	} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on design command", flag)
		}
	}
}

func TestBatchCmd_Flags(t *testing.T) {
	cmd := batchCmd(&globalFlags{})
	for _, flag := range []string{"batch", "save", "workers", "workspace", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on batch command", flag)
		}
	}
}

func TestDesignsCmd_HasSubcommands(t *testing.T) {
	cmd := designsCmd(&globalFlags{})
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"list", "show"} {
		if !names[expected] {
			t.Errorf("expected %q subcommand under designs", expected)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_FileInsideWorkspace(t *testing.T) {
	root := newWorkspace(t)

	got, err := resolveWorkspaceRoot(filepath.Join(root, "batches", "example.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("expected %q, got %q", root, got)
	}

	stray := filepath.Join(t.TempDir(), "stray.yaml")
	if err := os.WriteFile(stray, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveWorkspaceRoot(stray); !domain.IsKind(err, domain.KindNotFound) {
		t.Errorf("expected KindNotFound for a file outside any workspace, got %v", err)
	}
}

// --- resolveBatchPath ---

func TestResolveBatchPath(t *testing.T) {
	root := newWorkspace(t)
	ws, err := loadWorkspace(root)
	if err != nil {
		t.Fatalf("loadWorkspace: %v", err)
	}
	want := filepath.Join(root, "batches", "example.yaml")

	for _, in := range []string{"example", "example.yaml", want} {
		got, err := resolveBatchPath(ws, in)
		if err != nil {
			t.Fatalf("resolveBatchPath(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("resolveBatchPath(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := resolveBatchPath(ws, "missing"); err == nil {
		t.Error("expected error for unknown batch")
	}
	if _, err := resolveBatchPath(ws, "  "); err == nil {
		t.Error("expected error for empty batch")
	}
}

// --- printDesign ---

func mustResult(t *testing.T) usecase.DesignResult {
	t.Helper()
	b, err := domain.DesignBridgeRNA(exampleTarget, exampleDonor)
	if err != nil {
		t.Fatalf("design: %v", err)
	}
	return usecase.DesignResult{Design: b, Warnings: b.Warnings(), ArtifactID: "id-1"}
}

func TestPrintDesign_Formats(t *testing.T) {
	res := mustResult(t)
	name := res.Design.Name()

	cases := []struct {
		format string
		check  func(out string) bool
	}{
		{"stockholm", func(out string) bool {
			return strings.HasPrefix(out, "# STOCKHOLM 1.0\n") && strings.HasSuffix(out, "//\n")
		}},
		{"fasta", func(out string) bool {
			return strings.HasPrefix(out, ">"+name+"\n") && strings.HasSuffix(out, "\n")
		}},
		{"summary", func(out string) bool {
			return strings.Contains(out, "- Bridge RNA sequence: "+res.Design.Sequence)
		}},
	}
	for _, c := range cases {
		cfg := domain.DefaultConfig()
		cfg.Output.Format = c.format

		var buf bytes.Buffer
		if err := printDesign(&buf, res, cfg); err != nil {
			t.Fatalf("%s: unexpected error: %v", c.format, err)
		}
		if !c.check(buf.String()) {
			t.Errorf("%s: unexpected output:\n%s", c.format, buf.String())
		}
	}
}

func TestPrintDesign_JSON(t *testing.T) {
	res := mustResult(t)
	cfg := domain.DefaultConfig()
	cfg.Output.Format = "json"

	var buf bytes.Buffer
	if err := printDesign(&buf, res, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["id"] != "id-1" {
		t.Errorf("expected id=id-1, got %v", payload["id"])
	}
	design, ok := payload["design"].(map[string]any)
	if !ok {
		t.Fatalf("expected design object, got %T", payload["design"])
	}
	if design["sequence"] != res.Design.Sequence {
		t.Errorf("unexpected sequence %v", design["sequence"])
	}
}

func TestPrintDesign_UnknownFormat_ReturnsError(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Output.Format = "xml"

	var buf bytes.Buffer
	err := printDesign(&buf, mustResult(t), cfg)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- end to end through cobra ---

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init workspace: %v", err)
	}
	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDesignCmd_FASTAWithOligos(t *testing.T) {
	root := newWorkspace(t)

	out, _, err := execute(t, "design", "-w", root,
		"-t", strings.ToLower(exampleTarget), "-d", exampleDonor,
		"-f", "fasta", "--line-wrap", "0", "--left-overhang", "CACC",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected design + two oligo records, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[3], "CACC") {
		t.Errorf("expected left overhang on top oligo, got %q", lines[3])
	}
}

func TestDesignCmd_SaveThenShow(t *testing.T) {
	root := newWorkspace(t)

	_, errOut, err := execute(t, "design", "-w", root,
		"-t", exampleTarget, "-d", exampleDonor, "--save", "--label", "wt",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(errOut, "Saved design ") {
		t.Fatalf("expected save notice on stderr, got %q", errOut)
	}
	id := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(errOut), "Saved design "))

	out, _, err := execute(t, "designs", "list", "-w", root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, id) {
		t.Errorf("expected %s in list output:\n%s", id, out)
	}

	out, _, err = execute(t, "designs", "show", id, "-w", root, "--path", "$.core")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if strings.TrimSpace(out) != "CT" {
		t.Errorf("expected core CT, got %q", out)
	}
}

func TestDesignCmd_InvalidInput(t *testing.T) {
	root := newWorkspace(t)

	_, _, err := execute(t, "design", "-w", root, "-t", "ATCG", "-d", exampleDonor)
	if err == nil {
		t.Fatal("expected error for short target")
	}
	var lerr *domain.LengthError
	if !errors.As(err, &lerr) {
		t.Errorf("expected LengthError, got %T: %v", err, err)
	}
}

func TestDesignCmd_BadStructureFlag(t *testing.T) {
	root := newWorkspace(t)

	_, _, err := execute(t, "design", "-w", root, "-t", exampleTarget, "-d", exampleDonor, "--structure", "p3")
	if err == nil {
		t.Fatal("expected error for unknown structure")
	}
}

func TestBatchCmd_Summary(t *testing.T) {
	root := newWorkspace(t)

	out, _, err := execute(t, "batch", "-w", root, "-b", "example", "-f", "summary", "--workers", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Batch:    example",
		"Pairs:    2 (0 failed)",
		"- [OK] wt-example",
		"- [OK] matching-p6p7",
		"Target P6-P7 and Donor P6-P7 match",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report:\n%s", want, out)
		}
	}
	if strings.Index(out, "wt-example") > strings.Index(out, "matching-p6p7") {
		t.Error("expected items in batch file order")
	}
}

func TestBatchCmd_FailedPairReturnsError(t *testing.T) {
	root := newWorkspace(t)
	batch := "name: mixed\npairs:\n  - name: ok\n    target: " + exampleTarget + "\n    donor: " + exampleDonor +
		"\n  - name: short\n    target: ATCG\n    donor: " + exampleDonor + "\n"
	if err := os.WriteFile(filepath.Join(root, "batches", "mixed.yaml"), []byte(batch), 0o644); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := execute(t, "batch", "-w", root, "-b", "mixed")
	if err == nil {
		t.Fatal("expected error when a pair fails")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("unexpected error: %v", err)
	}
	if strings.Count(out, "# STOCKHOLM 1.0") != 1 {
		t.Errorf("expected one Stockholm record, got:\n%s", out)
	}
	if !strings.Contains(errOut, "short:") {
		t.Errorf("expected failing pair on stderr, got %q", errOut)
	}
}

func TestDesignsList_SkipsCorruptDocument(t *testing.T) {
	root := newWorkspace(t)

	if _, _, err := execute(t, "design", "-w", root, "-t", exampleTarget, "-d", exampleDonor, "--save"); err != nil {
		t.Fatalf("design: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "designs", "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, errOut, err := execute(t, "designs", "list", "-w", root)
	if err != nil {
		t.Fatalf("expected partial listing to succeed, got %v", err)
	}
	if !strings.Contains(out, "BridgeRNA_tgt_"+exampleTarget) {
		t.Errorf("expected the readable design in output:\n%s", out)
	}
	if !strings.Contains(errOut, "broken") {
		t.Errorf("expected a warning naming the skipped file, got %q", errOut)
	}
}
