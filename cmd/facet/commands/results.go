package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"facet/internal/report"
)

func resultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Inspect stored evaluation runs",
	}
	cmd.AddCommand(resultsListCmd(), resultsShowCmd())
	return cmd
}

func resultsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := appCtx.Results.ListRuns()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("No stored runs.")
				return nil
			}
			for _, r := range runs {
				fmt.Println(report.Summary(r))
			}
			return nil
		},
	}
}

func resultsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the result table of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, ok, err := appCtx.Results.LoadRun(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("run %s not found", args[0])
			}
			fmt.Printf("Run %s (%s)\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"))
			fmt.Println(report.Table(run.Results, run.Datasets))
			return nil
		},
	}
}
