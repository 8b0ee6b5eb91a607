package cmd

import (
	"fmt"
	"io"

	"github.com/greencode4523/applyctl/internal/config"
	"github.com/greencode4523/applyctl/internal/signature"
	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign bytes from stdin and print the X-Signature-256 value",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), signature.Sign(cfg.Signing.Secret, body))

		return nil
	},
}
