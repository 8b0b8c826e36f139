package designstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
)

const defaultDesignsDir = "designs"
const indexFile = "index.jsonl"

type JSONStore struct {
	rootDir        string
	designsDirName string
	writeIndex     bool
	now            func() time.Time

	mu sync.Mutex
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: designs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.DesignsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultDesignsDir
	}

	s := &JSONStore{
		rootDir:        root,
		designsDirName: dir,
		writeIndex:     cfg.Store.Index,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.DesignStore = (*JSONStore)(nil)

// Dir is the directory designs are written to.
func (s *JSONStore) Dir() string {
	return filepath.Join(s.rootDir, s.designsDirName)
}

// SaveDesign writes <id>.json plus one <id>.<ext> file per rendition.
// IDs look like 20260203T101112Z_<slug>_<hash8>; a numeric suffix keeps them unique.
func (s *JSONStore) SaveDesign(art domain.DesignArtifact) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "designstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := art.CreatedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := art
	toSave.CreatedAt = ts

	namePart := art.Label
	if strings.TrimSpace(namePart) == "" {
		namePart = art.Core
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "design"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := fmt.Sprintf("%s_%s_%s", ts.Format("20060102T150405Z"), slug, shortHash(art.SeqHash))
	id := base
	for n := 2; fileExists(filepath.Join(dir, id+".json")); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	toSave.ID = id

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "designstore.marshal",
			Kind: domain.KindExecution,
			Path: id,
			Err:  err,
		}
	}

	if err := writeAtomic(filepath.Join(dir, id+".json"), b); err != nil {
		return "", err
	}

	exts := make([]string, 0, len(art.Renditions))
	for ext := range art.Renditions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		if err := writeAtomic(filepath.Join(dir, id+"."+ext), []byte(art.Renditions[ext])); err != nil {
			return "", err
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, toSave)
	}

	return id, nil
}

// LoadDesign reads the JSON document for id.
func (s *JSONStore) LoadDesign(id string) (domain.DesignArtifact, error) {
	id = strings.TrimSpace(strings.TrimSuffix(id, ".json"))
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return domain.DesignArtifact{}, &domain.OpError{
			Op:   "designstore.load",
			Kind: domain.KindInvalidInput,
			Path: id,
			Err:  errors.New("invalid design id"),
		}
	}

	path := filepath.Join(s.Dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
			err = domain.ErrNotFound
		}
		return domain.DesignArtifact{}, &domain.OpError{
			Op:   "designstore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var art domain.DesignArtifact
	if err := json.Unmarshal(b, &art); err != nil {
		return domain.DesignArtifact{}, &domain.OpError{
			Op:   "designstore.decode",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return art, nil
}

// ListDesigns returns stored designs, newest first. A missing directory is an
// empty store. Unreadable documents are skipped; the readable refs come back
// together with a KindInvalidConfig error naming the skipped files.
func (s *JSONStore) ListDesigns() ([]domain.DesignRef, error) {
	dir := s.Dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.DesignRef{}, nil
		}
		return nil, &domain.OpError{
			Op:   "designstore.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	refs := make([]domain.DesignRef, 0, len(entries))
	var bad []error
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		art, err := s.LoadDesign(e.Name())
		if err != nil {
			bad = append(bad, err)
			continue
		}
		refs = append(refs, domain.DesignRef{
			ID:        art.ID,
			Name:      art.Name,
			Label:     art.Label,
			File:      e.Name(),
			CreatedAt: art.CreatedAt,
		})
	}

	sort.SliceStable(refs, func(i, j int) bool { return refs[i].ID > refs[j].ID })
	if len(bad) > 0 {
		return refs, &domain.OpError{
			Op:   "designstore.list",
			Kind: domain.KindInvalidConfig,
			Path: dir,
			Err:  fmt.Errorf("%d unreadable design(s): %w", len(bad), errors.Join(bad...)),
		}
	}
	return refs, nil
}

func (s *JSONStore) appendIndex(dir string, art domain.DesignArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Name      string    `json:"name"`
		Label     string    `json:"label,omitempty"`
		SeqHash   string    `json:"seqhash"`
		Warnings  int       `json:"warnings"`
		CreatedAt time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:        art.ID,
		File:      art.ID + ".json",
		Name:      art.Name,
		Label:     art.Label,
		SeqHash:   art.SeqHash,
		Warnings:  len(art.Warnings),
		CreatedAt: art.CreatedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// writeAtomic writes to a temp file and renames it over path.
func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "designstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "designstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// shortHash returns the last 8 hex digits of a seqhash like "v1_DLS_<hex>".
func shortHash(seqhash string) string {
	h := seqhash
	if i := strings.LastIndexByte(h, '_'); i >= 0 {
		h = h[i+1:]
	}
	if len(h) > 8 {
		h = h[len(h)-8:]
	}
	if h == "" {
		return "nohash"
	}
	return h
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
