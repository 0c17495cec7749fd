package main

import (
	"github.com/spf13/cobra"

	"github.com/duskfield/skysampler/internal/check"
	"github.com/duskfield/skysampler/internal/logging"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify image codecs and output directory writability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		log := logging.NewLogger(&cfg)
		defer log.Sync()

		if !check.RunCheck(&cfg, log) {
			exitCode = 1
		}
		return nil
	},
}
