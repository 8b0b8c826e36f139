package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ArcInstitute/bridge-rna-designer/internal/app/format"
	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		fallback, _ := deps.LoadConfig("")

		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, cfg: fallback, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, cfg: fallback, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, cfg: fallback, err: findErr}
		}

		cfg, cfgErr := deps.LoadConfig(root)
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, cfg: cfg, err: cfgErr}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
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

func cmdDesign(target, donor string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		uc := usecase.NewDesignBridge(usecase.WithLogger(log))
		res, err := uc.Execute(context.Background(), usecase.DesignRequest{
			Target: strings.TrimSpace(target),
			Donor:  strings.TrimSpace(donor),
		})
		return designDoneMsg{res: res, err: err}
	}
}

// savingDesigner builds a DesignBridge that persists into the workspace at root.
func savingDesigner(deps Deps, root string, log *slog.Logger) (*usecase.DesignBridge, domain.Config, error) {
	cfg, err := deps.LoadConfig(root)
	if err != nil {
		return nil, cfg, err
	}
	fa, sto := renderOptions(cfg)
	return usecase.NewDesignBridge(
		usecase.WithStore(deps.DesignStore(root, cfg)),
		usecase.WithLogger(log),
		usecase.WithRenderOptions(fa, sto),
	), cfg, nil
}

func cmdSaveDesign(deps Deps, root string, b domain.BridgeRNA, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if root == "" {
			return designSavedMsg{err: &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}}
		}
		uc, _, err := savingDesigner(deps, root, log)
		if err != nil {
			return designSavedMsg{err: err}
		}

		res, err := uc.Execute(context.Background(), usecase.DesignRequest{
			Target: b.Target,
			Donor:  b.Donor,
			Save:   true,
		})
		return designSavedMsg{id: res.ArtifactID, err: err}
	}
}

func cmdLoadDesigns(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := deps.LoadConfig(root)
		if err != nil {
			return designsLoadedMsg{root: root, err: err}
		}

		refs, err := usecase.NewInspectDesign(deps.DesignStore(root, cfg)).List()
		return designsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdPreviewDesign(deps Deps, root, id string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := deps.LoadConfig(root)
		if err != nil {
			return designPreviewMsg{id: id, err: err}
		}

		art, err := deps.DesignStore(root, cfg).LoadDesign(id)
		if err != nil {
			return designPreviewMsg{id: id, err: err}
		}
		return designPreviewMsg{id: id, preview: renderArtifact(art)}
	}
}

func cmdLoadBatches(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := deps.LoadConfig(root)
		if err != nil {
			return batchesLoadedMsg{root: root, err: err}
		}

		refs, err := deps.PairLoader(cfg).ListBatches(root)
		return batchesLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdRunBatch(deps Deps, root, path string, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		design, cfg, err := savingDesigner(deps, root, log)
		if err != nil {
			return batchDoneMsg{err: err}
		}

		uc := usecase.NewBatchDesign(deps.PairLoader(cfg), design,
			usecase.WithWorkers(deps.BatchWorkers),
			usecase.WithBatchLogger(log),
		)

		ctx, cancel := context.WithTimeout(context.Background(), deps.BatchTimeout)
		defer cancel()

		res, err := uc.Execute(ctx, path, true)
		return batchDoneMsg{res: res, err: err}
	}
}
