package tui

import (
	"log/slog"
	"time"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/designstore"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/workspacefinder"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/yamlbatch"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
)

// Deps wires the TUI to a workspace. Nil storage hooks fall back to the
// filesystem implementations.
type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// LoadConfig reads the config of the workspace at root; "" means none.
	LoadConfig  func(root string) (domain.Config, error)
	DesignStore func(root string, cfg domain.Config) ports.DesignStore
	PairLoader  func(cfg domain.Config) ports.PairLoader

	// BatchWorkers <= 0 uses GOMAXPROCS.
	BatchWorkers int
	BatchTimeout time.Duration

	Logger *slog.Logger
	Debug  bool
}

func (d Deps) withDefaults() Deps {
	if d.LoadConfig == nil {
		d.LoadConfig = func(root string) (domain.Config, error) {
			if root == "" {
				return workspacefinder.EnvConfig()
			}
			return workspacefinder.LoadConfig(root)
		}
	}
	if d.DesignStore == nil {
		d.DesignStore = func(root string, cfg domain.Config) ports.DesignStore {
			return designstore.NewJSONStore(root, cfg)
		}
	}
	if d.PairLoader == nil {
		d.PairLoader = func(cfg domain.Config) ports.PairLoader {
			return yamlbatch.NewLoader(yamlbatch.WithBatchesDir(cfg.Paths.BatchesDir))
		}
	}
	if d.BatchTimeout <= 0 {
		d.BatchTimeout = 5 * time.Minute
	}
	return d
}
