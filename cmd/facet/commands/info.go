package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"facet/internal/edf"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.edf>",
		Short: "Print EDF header information",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hdr, err := edf.ReadHeaderFile(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Patient:    %s\n", hdr.Patient)
			fmt.Printf("Recording:  %s\n", hdr.Recording)
			fmt.Printf("Start:      %s %s\n", hdr.StartDate, hdr.StartTime)
			fmt.Printf("Records:    %d x %g s\n", hdr.NumRecords, hdr.RecordDuration)
			fmt.Printf("Signals:    %d\n\n", len(hdr.Signals))
			fmt.Printf("%-4s %-16s %-8s %10s %8s\n", "#", "Label", "Dim", "Rate (Hz)", "Samples")
			for i, s := range hdr.Signals {
				fmt.Printf("%-4d %-16s %-8s %10g %8d\n",
					i, s.Label, s.PhysicalDim, hdr.SampleRate(i), s.SamplesPerRecord)
			}
			return nil
		},
	}
}
