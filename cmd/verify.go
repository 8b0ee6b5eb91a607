package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/greencode4523/applyctl/internal/config"
	"github.com/greencode4523/applyctl/internal/signature"
	"github.com/spf13/cobra"
)

var verifySig string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify an X-Signature-256 value against bytes from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		if !signature.Verify(cfg.Signing.Secret, body, verifySig) {
			return errors.New("signature mismatch")
		}

		fmt.Fprintln(cmd.OutOrStdout(), "ok")

		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifySig, "signature", "", "sha256=... value to verify")
	_ = verifyCmd.MarkFlagRequired("signature")
}
