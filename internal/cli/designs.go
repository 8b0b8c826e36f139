package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

func designsCmd(g *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "designs",
		Short: "Browse designs saved in a workspace",
	}

	c.AddCommand(designsListCmd(), designsShowCmd(g))
	return c
}

func designsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved designs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := usecase.NewInspectDesign(ws.store).List()
			if err != nil && len(refs) == 0 {
				return err
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no designs found)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				label := r.Label
				if label == "" {
					label = r.Name
				}
				fmt.Fprintf(w, "- %s  %s  (%s)\n", r.ID, label, r.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func designsShowCmd(g *globalFlags) *cobra.Command {
	var workspace string
	var expr string

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Print a saved design as JSON, or one field of it",
		Example: `  bridgerna designs show 20240101T120000Z_wt_1a2b3c4d
  bridgerna designs show 20240101T120000Z_wt_1a2b3c4d --path $.sequence
  bridgerna designs show 20240101T120000Z_wt_1a2b3c4d --path '$.warnings[*].kind'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			log, stop := startLogging(g, ws.root, cmd.ErrOrStderr())
			defer stop()

			out, err := usecase.NewInspectDesign(ws.store).Execute(args[0], expr)
			if err != nil {
				log.Warn("designs.show.failed", "id", args[0], "path", expr, "err", err)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&expr, "path", "", "JSONPath expression selecting one field (e.g. $.core)")
	return cmd
}
