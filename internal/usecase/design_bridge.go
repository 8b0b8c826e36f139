package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ArcInstitute/bridge-rna-designer/internal/app/format"
	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
)

// DesignRequest is one target/donor pair to design.
type DesignRequest struct {
	Target string
	Donor  string

	// Label names the design in the store (e.g. a batch item name). Optional.
	Label string
	// Save persists the design when a store is configured.
	Save bool
}

// DesignResult is the outcome of a successful design.
type DesignResult struct {
	Design   domain.BridgeRNA
	Warnings []domain.Warning

	// ArtifactID is set when the design was saved.
	ArtifactID string
}

type DesignBridge struct {
	store ports.DesignStore
	log   *slog.Logger
	now   func() time.Time

	fastaOpts     []format.FASTAOption
	stockholmOpts []format.StockholmOption
}

type DesignOption func(*DesignBridge)

func WithStore(s ports.DesignStore) DesignOption {
	return func(uc *DesignBridge) { uc.store = s }
}

func WithLogger(l *slog.Logger) DesignOption {
	return func(uc *DesignBridge) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) DesignOption {
	return func(uc *DesignBridge) { uc.now = now }
}

// WithRenderOptions sets how saved renditions are formatted.
func WithRenderOptions(fa []format.FASTAOption, sto []format.StockholmOption) DesignOption {
	return func(uc *DesignBridge) {
		uc.fastaOpts = fa
		uc.stockholmOpts = sto
	}
}

func NewDesignBridge(opts ...DesignOption) *DesignBridge {
	uc := &DesignBridge{
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates and assembles one bridge RNA. Validation failures are
// returned as-is (see domain.IsValidationError); warnings never fail the call.
func (uc *DesignBridge) Execute(ctx context.Context, req DesignRequest) (DesignResult, error) {
	if err := ctx.Err(); err != nil {
		return DesignResult{}, err
	}

	b, err := domain.DesignBridgeRNA(req.Target, req.Donor)
	if err != nil {
		uc.log.Warn("design.rejected",
			"label", req.Label,
			"target", req.Target,
			"donor", req.Donor,
			"err", err,
		)
		return DesignResult{}, err
	}

	for _, w := range b.AssemblyWarnings {
		uc.log.Debug("design.assembly.warning", "name", b.Name(), "kind", string(w.Kind))
	}

	res := DesignResult{Design: b, Warnings: b.Warnings()}
	for _, w := range res.Warnings {
		uc.log.Warn("design.warning",
			"name", b.Name(),
			"kind", string(w.Kind),
			"message", w.Message,
		)
	}

	if req.Save && uc.store != nil {
		art := domain.NewDesignArtifact(b, req.Label, uc.now().UTC())
		art.Renditions = map[string]string{
			"fasta": format.FASTA(b, uc.fastaOpts...),
			"sto":   format.Stockholm(b, uc.stockholmOpts...) + "\n",
		}

		id, saveErr := uc.store.SaveDesign(art)
		if saveErr != nil {
			uc.log.Error("store.save.failed", "name", b.Name(), "err", saveErr)
			return res, saveErr
		}
		res.ArtifactID = id
		uc.log.Info("store.saved", "id", id, "name", b.Name())
	}

	uc.log.Info("design.ok",
		"name", b.Name(),
		"core", b.Core(),
		"warnings", len(res.Warnings),
	)
	return res, nil
}
