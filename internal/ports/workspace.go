package ports

import "github.com/ArcInstitute/bridge-rna-designer/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
