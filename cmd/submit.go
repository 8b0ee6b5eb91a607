package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/greencode4523/applyctl/internal/config"
	"github.com/greencode4523/applyctl/internal/logger"
	"github.com/greencode4523/applyctl/internal/model"
	"github.com/greencode4523/applyctl/internal/signature"
	"github.com/greencode4523/applyctl/internal/submitter"
	"github.com/greencode4523/applyctl/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Build, sign, and POST the application payload",
	RunE:  runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Configuration errors are reported before any network activity.
	if missing := cfg.Application.MissingFields(); len(missing) > 0 {
		return missingEnvError(missing)
	}

	logger.Init(cfg.Log.Level)
	log := logger.Log.With(zap.String("submission_id", util.NewSubmissionID()))

	body, err := applicationFromConfig(cfg).MarshalCanonical(time.Now())
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	sig := signature.Sign(cfg.Signing.Secret, body)

	log.Info("submitting application",
		zap.String("endpoint", cfg.Submission.Endpoint),
		zap.Int("payload_bytes", len(body)))

	client := submitter.New(cfg.Submission.Endpoint, cfg.Submission.Timeout)
	receipt, err := client.Submit(cmd.Context(), body, sig)
	if err != nil {
		return err
	}

	log.Info("submission accepted")
	fmt.Fprintln(cmd.OutOrStdout(), receipt)

	return nil
}

func applicationFromConfig(cfg config.Config) model.Application {
	return model.Application{
		Name:           cfg.Application.Name,
		Email:          cfg.Application.Email,
		ResumeLink:     cfg.Application.ResumeLink,
		RepositoryLink: cfg.Application.RepositoryLink,
		ActionRunLink:  cfg.Application.ActionRunLink,
	}
}

// missingEnvError lists each unset field plus a reminder of every variable an
// invocation needs.
func missingEnvError(missing []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "missing required environment variables: %s\n", strings.Join(missing, ", "))
	b.WriteString("\nrequired environment variables:\n")
	for _, name := range config.RequiredEnvVars() {
		fmt.Fprintf(&b, "  %s\n", name)
	}

	return errors.New(strings.TrimRight(b.String(), "\n"))
}
