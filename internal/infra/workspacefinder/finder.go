package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
)

// ConfigFileName is the file `bridgerna init` writes at a workspace root.
const ConfigFileName = "bridgerna.yaml"

// markerNames are accepted workspace markers, in lookup order.
var markerNames = []string{ConfigFileName, "bridgerna.yml"}

// Finder walks up from a directory (or a file inside a workspace, such as a
// batch or a saved design) until it meets a bridgerna config file.
type Finder struct {
	// Markers overrides markerNames; mostly for tests.
	Markers []string
}

func NewFinder() *Finder {
	return &Finder{Markers: markerNames}
}

// ConfigPath returns the config file of the workspace at root. Only regular
// files count; a directory named bridgerna.yaml does not mark a workspace.
func ConfigPath(root string) (string, bool) {
	return configIn(root, markerNames)
}

func configIn(dir string, markers []string) (string, bool) {
	for _, name := range markers {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	markers := f.Markers
	if len(markers) == 0 {
		markers = markerNames
	}

	for cur := filepath.Clean(abs); ; {
		if _, ok := configIn(cur, markers); ok {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
