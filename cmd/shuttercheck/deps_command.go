package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shuttercheck/internal/config"
	"shuttercheck/internal/deps"
)

func newDepsCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg.Extraction.ExiftoolBinary))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "missing"
				if status.Available {
					state = "ok"
				}
				detail := status.Detail
				if detail == "" {
					detail = status.Description
				}
				rows = append(rows, []string{status.Name, status.Command, state, detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Status", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
				false,
			))
			fmt.Fprintln(cmd.OutOrStdout(), "Without exiftool, EXIF headers are decoded in-process and most vendor")
			fmt.Fprintln(cmd.OutOrStdout(), "MakerNote counters are unavailable.")
			return nil
		},
	}
}
