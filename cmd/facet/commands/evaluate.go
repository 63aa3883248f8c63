package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"facet/internal/config"
	"facet/internal/domain"
	"facet/internal/log"
	"facet/internal/report"
	"facet/internal/services/evaluation"
)

func evaluateCmd() *cobra.Command {
	var noSave bool
	cmd := &cobra.Command{
		Use:   "evaluate <run.yaml>",
		Short: "Evaluate corrected datasets per a run configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			logger := log.WithComponent("evaluate")

			opts := domain.ImportOptions{
				Bads:             cfg.BadChannels,
				ArtifactOffset:   cfg.ArtifactOffset,
				ArtifactDuration: cfg.ArtifactDuration,
			}

			var original *domain.Recording
			if cfg.Original != "" {
				original, err = appCtx.Importer.Import(cfg.Original, opts)
				if err != nil {
					return fmt.Errorf("original: %w", err)
				}
			}

			for _, ds := range cfg.Datasets {
				rec, err := appCtx.ImportEEG(ds.Path, opts)
				if err != nil {
					return err
				}
				if _, err := appCtx.FindTriggers(cfg.TriggerPattern); err != nil {
					// Explicit windows can stand in for trigger timing.
					logger.Warn().Str("dataset", ds.Name).Err(err).Msg("trigger detection failed")
				}
				if original != nil {
					rec.Original = original
				}
				if err := appCtx.AddToEvaluate(rec, evaluation.AddOptions{
					Name:  ds.Name,
					Start: cfg.Window.Start,
					End:   cfg.Window.End,
				}); err != nil {
					return err
				}
			}

			run, err := appCtx.Evaluate(cfg.ParsedMeasures(), cfg.SaveRun() && !noSave)
			if err != nil {
				return err
			}

			fmt.Println(report.Table(run.Results, run.Datasets))

			if cfg.Output.JSON != "" {
				f, err := os.Create(cfg.Output.JSON)
				if err != nil {
					return err
				}
				if err := report.WriteJSON(f, run); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				fmt.Printf("Results written to %s\n", cfg.Output.JSON)
			}
			if cfg.Output.Plot != "" {
				if err := report.SavePlot(cfg.Output.Plot, run.Results, run.Datasets); err != nil {
					return err
				}
				fmt.Printf("Plot written to %s\n", cfg.Output.Plot)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run in the result store")
	return cmd
}
