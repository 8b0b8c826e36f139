package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/fsworkspace"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a bridgerna workspace (bridgerna.yaml, designs/, batches/)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return cmd
}
