package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/designstore"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/workspacefinder"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/yamlbatch"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	batches ports.PairLoader
	store   ports.DesignStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		batches: yamlbatch.NewLoader(yamlbatch.WithBatchesDir(cfg.Paths.BatchesDir)),
		store:   designstore.NewJSONStore(root, cfg),
	}, nil
}

// optionalWorkspace is loadWorkspace for commands that also work outside a
// workspace: with no -w flag and no bridgerna.yaml above the working directory
// it returns (nil, nil).
func optionalWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err == nil {
		return ws, nil
	}
	if strings.TrimSpace(workspaceFlag) == "" && domain.IsKind(err, domain.KindNotFound) {
		return nil, nil
	}
	return nil, err
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		// -w may name a file inside a workspace (a batch, a saved design).
		if info, serr := os.Stat(abs); serr == nil && !info.IsDir() {
			root, ferr := workspacefinder.NewFinder().FindRoot(abs)
			if ferr != nil {
				return "", fmt.Errorf("no workspace above %q: %w", abs, ferr)
			}
			return root, nil
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `bridgerna init`): %w", wd, err)
	}
	return root, nil
}

// resolveBatchPath accepts a path, a file name under the batches dir, or a batch name.
func resolveBatchPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", errors.New("batch is required (use --batch or -b)")
	}

	if looksLikePath(in) || ws == nil {
		p := in
		if ws != nil && !filepath.IsAbs(p) && !fileExists(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	batchesDir := filepath.Join(ws.root, ws.cfg.Paths.BatchesDir)

	if hasYAMLExt(in) {
		if fileExists(in) {
			return filepath.Clean(in), nil
		}
		p := filepath.Join(batchesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p1 := filepath.Join(batchesDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(batchesDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// Last resort: match by the batch "name" field.
	refs, err := ws.batches.ListBatches(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("batch %q not found in %q", in, batchesDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
