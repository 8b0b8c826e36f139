package workspacefinder

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides: BRIDGERNA_OUTPUT_LINE_WRAP overrides
// bridgerna.output.line_wrap.
const EnvPrefix = "BRIDGERNA"

var outputFormats = map[string]bool{
	"stockholm": true,
	"fasta":     true,
	"summary":   true,
	"json":      true,
}

// LoadConfig loads bridgerna.yaml (or bridgerna.yml) from the workspace root,
// applies defaults and BRIDGERNA_* environment overrides. A missing file
// returns the defaults with a KindNotFound error.
func LoadConfig(root string) (domain.Config, error) {
	v := newViper()

	path, ok := ConfigPath(root)
	if !ok {
		cfg, _ := decode(v)
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: filepath.Join(root, ConfigFileName),
			Err:  domain.ErrNotFound,
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

// EnvConfig returns defaults with BRIDGERNA_* overrides, for use outside a workspace.
func EnvConfig() (domain.Config, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	def := domain.DefaultConfig()
	v.SetDefault("bridgerna.output.format", def.Output.Format)
	v.SetDefault("bridgerna.output.line_wrap", def.Output.LineWrap)
	v.SetDefault("bridgerna.output.leader_padding", def.Output.LeaderPadding)
	v.SetDefault("bridgerna.output.structure", string(def.Output.Structure))
	v.SetDefault("bridgerna.oligos.include", def.Oligos.Include)
	v.SetDefault("bridgerna.oligos.left_overhang", def.Oligos.LeftOverhang)
	v.SetDefault("bridgerna.oligos.right_overhang", def.Oligos.RightOverhang)
	v.SetDefault("bridgerna.paths.designs_dir", def.Paths.DesignsDir)
	v.SetDefault("bridgerna.paths.batches_dir", def.Paths.BatchesDir)
	v.SetDefault("bridgerna.store.index", def.Store.Index)

	// Viper looks up "BRIDGERNA_" + upper(key) and then applies the replacer,
	// so the file's top-level "bridgerna." segment is dropped here.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("BRIDGERNA.", "", ".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (domain.Config, error) {
	var y yamlConfig
	if err := v.Unmarshal(&y); err != nil {
		return domain.DefaultConfig(), err
	}

	b := y.Bridgerna
	format := strings.ToLower(strings.TrimSpace(b.Output.Format))
	if !outputFormats[format] {
		return domain.DefaultConfig(), fmt.Errorf("output.format: unsupported value %q", b.Output.Format)
	}
	structure, err := domain.ParseStructure(b.Output.Structure)
	if err != nil {
		return domain.DefaultConfig(), fmt.Errorf("output.structure: %w", err)
	}
	if b.Output.LeaderPadding < 1 {
		return domain.DefaultConfig(), errors.New("output.leader_padding: must be at least 1")
	}

	cfg := domain.Config{
		Output: domain.OutputConfig{
			Format:        format,
			LineWrap:      b.Output.LineWrap,
			LeaderPadding: b.Output.LeaderPadding,
			Structure:     structure,
		},
		Oligos: domain.OligoConfig{
			Include:       b.Oligos.Include,
			LeftOverhang:  strings.TrimSpace(b.Oligos.LeftOverhang),
			RightOverhang: strings.TrimSpace(b.Oligos.RightOverhang),
		},
		Paths: domain.PathsConfig{
			DesignsDir: b.Paths.DesignsDir,
			BatchesDir: b.Paths.BatchesDir,
		},
		Store: domain.StoreConfig{Index: b.Store.Index},
	}
	return cfg, nil
}

type yamlConfig struct {
	Bridgerna struct {
		Output struct {
			Format        string `mapstructure:"format"`
			LineWrap      int    `mapstructure:"line_wrap"`
			LeaderPadding int    `mapstructure:"leader_padding"`
			Structure     string `mapstructure:"structure"`
		} `mapstructure:"output"`

		Oligos struct {
			Include       bool   `mapstructure:"include"`
			LeftOverhang  string `mapstructure:"left_overhang"`
			RightOverhang string `mapstructure:"right_overhang"`
		} `mapstructure:"oligos"`

		Paths struct {
			DesignsDir string `mapstructure:"designs_dir"`
			BatchesDir string `mapstructure:"batches_dir"`
		} `mapstructure:"paths"`

		Store struct {
			Index bool `mapstructure:"index"`
		} `mapstructure:"store"`
	} `mapstructure:"bridgerna"`
}
