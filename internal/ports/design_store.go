package ports

import "github.com/ArcInstitute/bridge-rna-designer/internal/domain"

// DesignStore persists design artifacts for reproducibility.
type DesignStore interface {
	SaveDesign(art domain.DesignArtifact) (id string, err error)
	LoadDesign(id string) (domain.DesignArtifact, error)
	ListDesigns() ([]domain.DesignRef, error)
}
