package tui

import (
	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	cfg   domain.Config
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type designDoneMsg struct {
	res usecase.DesignResult
	err error
}

type designSavedMsg struct {
	id  string
	err error
}

type designsLoadedMsg struct {
	root string
	refs []domain.DesignRef
	err  error
}

type designPreviewMsg struct {
	id      string
	preview string
	err     error
}

type batchesLoadedMsg struct {
	root string
	refs []domain.BatchRef
	err  error
}

type batchDoneMsg struct {
	res usecase.BatchResult
	err error
}
