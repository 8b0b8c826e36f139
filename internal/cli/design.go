package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/workspacefinder"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

func designCmd(g *globalFlags) *cobra.Command {
	var workspace string
	var target string
	var donor string
	var label string
	var save bool
	var out outputFlags

	c := &cobra.Command{
		Use:   "design",
		Short: "Design a bridge RNA for a target and donor site",
		Example: `  bridgerna design -t ATCGGGCCTACGCA -d ACAGTATCTTGTAT
  bridgerna design -t ATCGGGCCTACGCA -d ACAGTATCTTGTAT -f fasta --line-wrap 60
  bridgerna design -t ATCGGGCCTACGCA -d ACAGTATCTTGTAT --save --label wt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := optionalWorkspace(workspace)
			if err != nil {
				return err
			}
			if save && ws == nil {
				return errors.New("--save needs a workspace (tip: run `bridgerna init`)")
			}

			cfg := domain.DefaultConfig()
			root := ""
			if ws != nil {
				cfg, root = ws.cfg, ws.root
			} else if envCfg, envErr := workspacefinder.EnvConfig(); envErr == nil {
				cfg = envCfg
			} else {
				return envErr
			}

			cfg, err = applyOutputFlags(cmd, out, cfg)
			if err != nil {
				return err
			}

			log, stop := startLogging(g, root, cmd.ErrOrStderr())
			defer stop()

			fa, sto := renderOptions(cfg)
			opts := []usecase.DesignOption{
				usecase.WithLogger(log),
				usecase.WithRenderOptions(fa, sto),
			}
			if ws != nil {
				opts = append(opts, usecase.WithStore(ws.store))
			}

			res, err := usecase.NewDesignBridge(opts...).Execute(cmd.Context(), usecase.DesignRequest{
				Target: target,
				Donor:  donor,
				Label:  label,
				Save:   save,
			})
			if err != nil && res.Design.Sequence == "" {
				return err
			}

			if perr := printDesign(cmd.OutOrStdout(), res, cfg); perr != nil {
				return perr
			}
			if err != nil {
				return err
			}
			if res.ArtifactID != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved design %s\n", res.ArtifactID)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&target, "target", "t", "", "Target site, 14 bp (required)")
	c.Flags().StringVarP(&donor, "donor", "d", "", "Donor site, 14 bp (required)")
	c.Flags().StringVar(&label, "label", "", "Label for the saved design")
	c.Flags().BoolVar(&save, "save", false, "Save the design under the workspace designs dir")
	bindOutputFlags(c, &out)

	_ = c.MarkFlagRequired("target")
	_ = c.MarkFlagRequired("donor")
	return c
}
