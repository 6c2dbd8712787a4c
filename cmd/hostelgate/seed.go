package main

import (
	"time"

	"github.com/spf13/cobra"

	"hostelgate/internal/platform/config"
)

func newSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the seed roster and logs as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			seed, err := loadSeed(cfg, time.Now())
			if err != nil {
				return err
			}
			out, err := seed.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
