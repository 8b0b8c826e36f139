package ports

import "github.com/ArcInstitute/bridge-rna-designer/internal/domain"

// PairLoader loads batches of target/donor pairs from a source (e.g., filesystem).
type PairLoader interface {
	LoadBatch(path string) (domain.Batch, error)
	ListBatches(root string) ([]domain.BatchRef, error)
}
