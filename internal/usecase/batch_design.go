package usecase

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
)

// BatchItem is the outcome of one pair in a batch. Exactly one of Result/Err is meaningful.
type BatchItem struct {
	Pair   domain.SitePair
	Result DesignResult
	Err    error
}

// BatchResult holds per-pair outcomes in input order.
type BatchResult struct {
	Name string
	Path string

	StartedAt time.Time
	EndedAt   time.Time

	Items []BatchItem
}

// Failed counts items that did not produce a design.
func (r BatchResult) Failed() int {
	n := 0
	for _, it := range r.Items {
		if it.Err != nil {
			n++
		}
	}
	return n
}

type BatchDesign struct {
	pairs   ports.PairLoader
	design  *DesignBridge
	workers int
	log     *slog.Logger
}

type BatchOption func(*BatchDesign)

// WithWorkers bounds the number of concurrent designs; n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) BatchOption {
	return func(uc *BatchDesign) { uc.workers = n }
}

func WithBatchLogger(l *slog.Logger) BatchOption {
	return func(uc *BatchDesign) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewBatchDesign(pl ports.PairLoader, design *DesignBridge, opts ...BatchOption) *BatchDesign {
	uc := &BatchDesign{
		pairs:  pl,
		design: design,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.workers <= 0 {
		uc.workers = runtime.GOMAXPROCS(0)
	}
	return uc
}

// Execute designs every pair of the batch at path. A failing pair is recorded on
// its item and does not stop the others. If ctx is cancelled, remaining items get
// ctx.Err() and Execute returns it alongside the partial result.
func (uc *BatchDesign) Execute(ctx context.Context, path string, save bool) (BatchResult, error) {
	batch, err := uc.pairs.LoadBatch(path)
	if err != nil {
		return BatchResult{}, err
	}

	res := BatchResult{
		Name:      batch.Name,
		Path:      path,
		StartedAt: time.Now(),
		Items:     make([]BatchItem, len(batch.Pairs)),
	}

	uc.log.Info("batch.start", "name", batch.Name, "path", path, "pairs", len(batch.Pairs), "workers", uc.workers)

	var g errgroup.Group
	g.SetLimit(uc.workers)
	for i, pair := range batch.Pairs {
		g.Go(func() error {
			res.Items[i] = uc.designOne(ctx, pair, save)
			return nil
		})
	}
	_ = g.Wait()

	res.EndedAt = time.Now()
	uc.log.Info("batch.done", "name", batch.Name, "pairs", len(res.Items), "failed", res.Failed())

	return res, ctx.Err()
}

func (uc *BatchDesign) designOne(ctx context.Context, pair domain.SitePair, save bool) BatchItem {
	item := BatchItem{Pair: pair}
	if err := ctx.Err(); err != nil {
		item.Err = err
		return item
	}

	r, err := uc.design.Execute(ctx, DesignRequest{
		Target: pair.Target,
		Donor:  pair.Donor,
		Label:  pair.Name,
		Save:   save,
	})
	if err != nil {
		uc.log.Warn("batch.item.failed", "name", pair.Name, "err", err)
		item.Err = err
		return item
	}
	item.Result = r
	return item
}
