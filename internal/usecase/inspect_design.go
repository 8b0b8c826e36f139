package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase/extract"
)

// InspectDesign reads stored designs, optionally projecting a single field with JSONPath.
type InspectDesign struct {
	store ports.DesignStore
}

func NewInspectDesign(store ports.DesignStore) *InspectDesign {
	return &InspectDesign{store: store}
}

func (uc *InspectDesign) List() ([]domain.DesignRef, error) {
	return uc.store.ListDesigns()
}

// Execute loads the design with the given id. With an empty expr it returns the
// indented JSON document; otherwise the value selected by expr.
func (uc *InspectDesign) Execute(id string, expr string) (string, error) {
	art, err := uc.store.LoadDesign(id)
	if err != nil {
		return "", err
	}

	doc, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return "", &domain.OpError{Op: "usecase.inspect", Kind: domain.KindExecution, Path: id, Err: err}
	}
	if expr == "" {
		return string(doc), nil
	}

	v, err := extract.Value(doc, expr)
	if err != nil {
		return "", &domain.OpError{
			Op:   "usecase.inspect",
			Kind: domain.KindInvalidInput,
			Path: id,
			Err:  fmt.Errorf("query: %w", err),
		}
	}
	return v, nil
}
