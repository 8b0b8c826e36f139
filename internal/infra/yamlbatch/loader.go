package yamlbatch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	batchesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{batchesDir: "batches"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithBatchesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.batchesDir = dir
		}
	}
}

var _ ports.PairLoader = (*Loader)(nil)

// LoadBatch parses a batch file. Only the file shape is checked here; site
// sequences are validated per pair when they are designed.
func (l *Loader) LoadBatch(path string) (domain.Batch, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Batch{}, &domain.OpError{
			Op:   "yamlbatch.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yb yamlBatch
	if err := yaml.Unmarshal(b, &yb); err != nil {
		return domain.Batch{}, &domain.OpError{
			Op:   "yamlbatch.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yb)
}

func (l *Loader) ListBatches(root string) ([]domain.BatchRef, error) {
	dir := filepath.Join(root, l.batchesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlbatch.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.BatchRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readBatchName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.BatchRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readBatchName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlBatch struct {
	Name  string     `yaml:"name"`
	Pairs []yamlPair `yaml:"pairs"`
}

type yamlPair struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
	Donor  string `yaml:"donor"`
}

func mapAndValidate(path string, yb yamlBatch) (domain.Batch, error) {
	name := strings.TrimSpace(yb.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(yb.Pairs) == 0 {
		return domain.Batch{}, invalidField(path, "pairs", "at least one pair is required")
	}

	batch := domain.Batch{
		Name:  name,
		Pairs: make([]domain.SitePair, 0, len(yb.Pairs)),
	}

	seen := map[string]int{}
	for i, p := range yb.Pairs {
		fieldPrefix := fmt.Sprintf("pairs[%d]", i)

		target := strings.TrimSpace(p.Target)
		if target == "" {
			return domain.Batch{}, invalidField(path, fieldPrefix+".target", "required")
		}
		donor := strings.TrimSpace(p.Donor)
		if donor == "" {
			return domain.Batch{}, invalidField(path, fieldPrefix+".donor", "required")
		}

		pairName := strings.TrimSpace(p.Name)
		if pairName == "" {
			pairName = fmt.Sprintf("pair-%d", i+1)
		}
		if j, dup := seen[pairName]; dup {
			return domain.Batch{}, invalidField(path, fieldPrefix+".name", fmt.Sprintf("duplicate of pairs[%d]", j))
		}
		seen[pairName] = i

		batch.Pairs = append(batch.Pairs, domain.SitePair{
			Name:   pairName,
			Target: target,
			Donor:  donor,
		})
	}

	return batch, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlbatch.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
