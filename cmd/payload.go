package cmd

import (
	"fmt"
	"time"

	"github.com/greencode4523/applyctl/internal/config"
	"github.com/spf13/cobra"
)

var payloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Print the canonical payload without submitting",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if missing := cfg.Application.MissingFields(); len(missing) > 0 {
			return missingEnvError(missing)
		}

		body, err := applicationFromConfig(cfg).MarshalCanonical(time.Now())
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(body))

		return nil
	},
}
