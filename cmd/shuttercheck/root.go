package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	opts := &analyzeOptions{}

	rootCmd := &cobra.Command{
		Use:   "shuttercheck [folder]",
		Short: "Inspect a folder of photos for suspicious shutter-count history",
		Long: `Shuttercheck reads the metadata of a batch of photos, orders them
chronologically, and flags counter discontinuities that may indicate a
shutter reset, a replaced mainboard, or tampering. Point it at a folder of
sample photos from a camera you are about to buy.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, configFlag, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	opts.register(rootCmd)

	rootCmd.AddCommand(newConfigCommand(&configFlag))
	rootCmd.AddCommand(newDepsCommand(&configFlag))

	return rootCmd
}
