package usecase

import (
	"fmt"
	"sync"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

type fakeStore struct {
	mu    sync.Mutex
	saved []domain.DesignArtifact
	err   error
}

func (s *fakeStore) SaveDesign(art domain.DesignArtifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	art.ID = fmt.Sprintf("id-%d", len(s.saved)+1)
	s.saved = append(s.saved, art)
	return art.ID, nil
}

func (s *fakeStore) LoadDesign(id string) (domain.DesignArtifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.saved {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.DesignArtifact{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Path: id, Err: domain.ErrNotFound}
}

func (s *fakeStore) ListDesigns() ([]domain.DesignRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DesignRef, 0, len(s.saved))
	for _, a := range s.saved {
		out = append(out, domain.DesignRef{ID: a.ID, Name: a.Name, Label: a.Label})
	}
	return out, nil
}

type fakePairs struct {
	batch domain.Batch
	err   error
}

func (f fakePairs) LoadBatch(string) (domain.Batch, error) { return f.batch, f.err }

func (f fakePairs) ListBatches(string) ([]domain.BatchRef, error) { return nil, nil }

type fakeInitializer struct {
	got   domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.got = spec
	f.force = force
	return nil
}
