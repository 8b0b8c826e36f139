package domain

// Config represents the workspace configuration loaded from bridgerna.yaml.
type Config struct {
	Output OutputConfig
	Oligos OligoConfig
	Paths  PathsConfig
	Store  StoreConfig
}

type OutputConfig struct {
	Format        string
	LineWrap      int
	LeaderPadding int
	Structure     Structure
}

// OligoConfig controls the optional annealing-oligo records in FASTA output.
type OligoConfig struct {
	Include       bool
	LeftOverhang  string
	RightOverhang string
}

type PathsConfig struct {
	DesignsDir string
	BatchesDir string
}

type StoreConfig struct {
	Index bool
}

// DefaultConfig provides sane defaults if bridgerna.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Format:        "stockholm",
			LineWrap:      80,
			LeaderPadding: 5,
			Structure:     StructureP2,
		},
		Paths: PathsConfig{
			DesignsDir: "designs",
			BatchesDir: "batches",
		},
		Store: StoreConfig{Index: true},
	}
}
