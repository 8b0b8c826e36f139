package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ArcInstitute/bridge-rna-designer/internal/domain"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/workspacefinder"
	"github.com/ArcInstitute/bridge-rna-designer/internal/infra/yamlbatch"
	"github.com/ArcInstitute/bridge-rna-designer/internal/ports"
	"github.com/ArcInstitute/bridge-rna-designer/internal/usecase"
)

func batchCmd(g *globalFlags) *cobra.Command {
	var workspace string
	var batch string
	var save bool
	var workers int
	var out outputFlags

	c := &cobra.Command{
		Use:   "batch",
		Short: "Design bridge RNAs for every pair in a batch YAML file",
		Example: `  bridgerna batch -b example
  bridgerna batch -b ./screen.yaml -f summary --workers 4
  bridgerna batch -b example --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := optionalWorkspace(workspace)
			if err != nil {
				return err
			}
			if save && ws == nil {
				return errors.New("--save needs a workspace (tip: run `bridgerna init`)")
			}

			path, err := resolveBatchPath(ws, batch)
			if err != nil {
				return err
			}

			cfg := domain.DefaultConfig()
			root := ""
			var pairs ports.PairLoader = yamlbatch.NewLoader()
			if ws != nil {
				cfg, root, pairs = ws.cfg, ws.root, ws.batches
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

			uc := usecase.NewBatchDesign(pairs, usecase.NewDesignBridge(opts...),
				usecase.WithWorkers(workers),
				usecase.WithBatchLogger(log),
			)

			res, err := uc.Execute(cmd.Context(), path, save)
			if err != nil && len(res.Items) == 0 {
				return err
			}

			if perr := printBatch(cmd.OutOrStdout(), cmd.ErrOrStderr(), res, cfg); perr != nil {
				return perr
			}
			if err != nil {
				return err
			}

			if failed := res.Failed(); failed > 0 {
				return fmt.Errorf("batch %s: %d of %d pair(s) failed", res.Name, failed, len(res.Items))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&batch, "batch", "b", "", "Batch name or path (required)")
	c.Flags().BoolVar(&save, "save", false, "Save every design under the workspace designs dir")
	c.Flags().IntVar(&workers, "workers", 0, "Concurrent designs (0 = number of CPUs)")
	bindOutputFlags(c, &out)

	_ = c.MarkFlagRequired("batch")
	return c
}

// printBatch writes successful designs to w in input order and per-pair
// failures to errOut. The summary format prints a report instead.
func printBatch(w, errOut io.Writer, res usecase.BatchResult, cfg domain.Config) error {
	switch cfg.Output.Format {
	case "summary":
		printBatchReport(w, res)
		return nil
	case "json":
		return printBatchJSON(w, res)
	}

	for _, it := range res.Items {
		if it.Err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", it.Pair.Name, it.Err)
			continue
		}
		if err := printDesign(w, it.Result, cfg); err != nil {
			return err
		}
		if it.Result.ArtifactID != "" {
			fmt.Fprintf(errOut, "Saved design %s\n", it.Result.ArtifactID)
		}
	}
	return nil
}

func printBatchReport(w io.Writer, res usecase.BatchResult) {
	total := res.EndedAt.Sub(res.StartedAt)
	if res.StartedAt.IsZero() || res.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Batch:    %s\n", res.Name)
	fmt.Fprintf(w, "File:     %s\n", res.Path)
	fmt.Fprintf(w, "Pairs:    %d (%d failed)\n", len(res.Items), res.Failed())
	fmt.Fprintf(w, "Duration: %s\n", total.Round(time.Microsecond))
	fmt.Fprintln(w)

	for _, it := range res.Items {
		if it.Err != nil {
			fmt.Fprintf(w, "- [FAIL] %s\n", it.Pair.Name)
			fmt.Fprintf(w, "  error: %v\n\n", it.Err)
			continue
		}

		b := it.Result.Design
		fmt.Fprintf(w, "- [OK] %s  core=%s\n", it.Pair.Name, b.Core())
		fmt.Fprintf(w, "  target: %s\n", b.Target)
		fmt.Fprintf(w, "  donor:  %s\n", b.Donor)
		if it.Result.ArtifactID != "" {
			fmt.Fprintf(w, "  saved:  %s\n", it.Result.ArtifactID)
		}
		for _, wr := range it.Result.Warnings {
			fmt.Fprintf(w, "  ! %s\n", wr.Message)
		}
		fmt.Fprintln(w)
	}
}

type jsonBatchItem struct {
	Name   string      `json:"name"`
	Error  string      `json:"error,omitempty"`
	Result *jsonDesign `json:"result,omitempty"`
}

func printBatchJSON(w io.Writer, res usecase.BatchResult) error {
	payload := struct {
		Name      string          `json:"name"`
		Path      string          `json:"path"`
		StartedAt time.Time       `json:"started_at"`
		EndedAt   time.Time       `json:"ended_at"`
		Failed    int             `json:"failed"`
		Items     []jsonBatchItem `json:"items"`
	}{
		Name:      res.Name,
		Path:      res.Path,
		StartedAt: res.StartedAt,
		EndedAt:   res.EndedAt,
		Failed:    res.Failed(),
		Items:     make([]jsonBatchItem, 0, len(res.Items)),
	}

	for _, it := range res.Items {
		item := jsonBatchItem{Name: it.Pair.Name}
		if it.Err != nil {
			item.Error = it.Err.Error()
		} else {
			d := designJSON(it.Result, it.Pair.Name)
			item.Result = &d
		}
		payload.Items = append(payload.Items, item)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
