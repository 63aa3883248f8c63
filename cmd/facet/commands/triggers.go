package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"facet/internal/config"
	"facet/internal/domain"
)

func triggersCmd() *cobra.Command {
	var (
		pattern string
		offset  float64
	)
	cmd := &cobra.Command{
		Use:   "triggers <file.edf>",
		Short: "Detect artifact triggers on the stim channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := appCtx.ImportEEG(args[0], domain.ImportOptions{ArtifactOffset: offset})
			if err != nil {
				return err
			}
			n, err := appCtx.FindTriggers(pattern)
			if err != nil {
				return err
			}
			fmt.Printf("Triggers:  %d\n", n)
			if n == 0 {
				return nil
			}
			fmt.Printf("First:     %.3f s\n", rec.TriggerTime(0))
			fmt.Printf("Last:      %.3f s\n", rec.TriggerTime(n-1))
			if spacing, err := rec.ArtifactSpacing(); err == nil {
				fmt.Printf("Spacing:   %.3f s\n", spacing)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", config.DefaultTriggerPattern, "regex matched against stim values")
	cmd.Flags().Float64Var(&offset, "offset", 0, "artifact-to-trigger offset in seconds")
	return cmd
}
