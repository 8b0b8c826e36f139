package domain

import "time"

// DesignArtifact is a persisted design for reproducibility.
type DesignArtifact struct {
	ID string `json:"id"`

	Name      string     `json:"name"`
	Label     string     `json:"label,omitempty"`
	Target    string     `json:"target"`
	Donor     string     `json:"donor"`
	Sequence  string     `json:"sequence"`
	SeqHash   string     `json:"seqhash"`
	GCContent float64    `json:"gc_content"`
	Core      string     `json:"core"`
	Parts     Components `json:"components"`
	Warnings  []Warning  `json:"warnings"`

	CreatedAt time.Time `json:"created_at"`

	// Renditions are rendered outputs keyed by file extension ("sto", "fasta").
	// Stores write them next to the JSON document.
	Renditions map[string]string `json:"-"`
}

// DesignRef is a lightweight reference to a stored design.
type DesignRef struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Label     string    `json:"label,omitempty"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDesignArtifact captures b and its derived metadata.
func NewDesignArtifact(b BridgeRNA, label string, createdAt time.Time) DesignArtifact {
	hash, _ := b.Hash()
	return DesignArtifact{
		Name:      b.Name(),
		Label:     label,
		Target:    b.Target,
		Donor:     b.Donor,
		Sequence:  b.Sequence,
		SeqHash:   hash,
		GCContent: b.GCContent(),
		Core:      b.Core(),
		Parts:     b.Components(),
		Warnings:  b.Warnings(),
		CreatedAt: createdAt,
	}
}

// SitePair is one named target/donor request, typically from a batch file.
type SitePair struct {
	Name   string
	Target string
	Donor  string
}

// Batch groups site pairs designed together.
type Batch struct {
	Name  string
	Pairs []SitePair
}

// BatchRef is a lightweight reference to a batch file on disk.
type BatchRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace is created.
type WorkspaceSpec struct {
	Root string
}
