package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("APPLICATION_NAME", "Steven Lee")
	t.Setenv("APPLICATION_EMAIL", "greencode4523@gmail.com")
	t.Setenv("APPLICATION_RESUME_LINK", "https://example.com/resume.pdf")
	t.Setenv("APPLICATION_REPOSITORY_LINK", "https://github.com/greencode4523/applyctl")
	t.Setenv("APPLICATION_ACTION_RUN_LINK", "https://github.com/greencode4523/applyctl/actions/runs/1")
}

func TestLoadReadsDocumentedEnvVars(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "Steven Lee", cfg.Application.Name)
	require.Equal(t, "greencode4523@gmail.com", cfg.Application.Email)
	require.Equal(t, "https://example.com/resume.pdf", cfg.Application.ResumeLink)
	require.Equal(t, "https://github.com/greencode4523/applyctl", cfg.Application.RepositoryLink)
	require.Equal(t, "https://github.com/greencode4523/applyctl/actions/runs/1", cfg.Application.ActionRunLink)
	require.Empty(t, cfg.Application.MissingFields())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "https://b12.io/apply/submission", cfg.Submission.Endpoint)
	require.Positive(t, cfg.Submission.Timeout)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadSigningSecretDefault(t *testing.T) {
	t.Setenv("SIGNING_SECRET", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "hello-there-from-b12", cfg.Signing.Secret)
}

func TestLoadSigningSecretOverride(t *testing.T) {
	t.Setenv("SIGNING_SECRET", "another-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "another-secret", cfg.Signing.Secret)
}

func TestLoadEndpointOverride(t *testing.T) {
	t.Setenv("APPLY_SUBMISSION_ENDPOINT", "http://127.0.0.1:9999/apply")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9999/apply", cfg.Submission.Endpoint)
}

func TestMissingFieldsOrder(t *testing.T) {
	var app ApplicationConfig
	require.Equal(t,
		[]string{"name", "email", "resume_link", "repository_link", "action_run_link"},
		app.MissingFields())

	app.Name = "Steven Lee"
	app.RepositoryLink = "https://github.com/greencode4523/applyctl"
	require.Equal(t, []string{"email", "resume_link", "action_run_link"}, app.MissingFields())
}

func TestRequiredEnvVars(t *testing.T) {
	require.Equal(t, []string{
		"APPLICATION_NAME",
		"APPLICATION_EMAIL",
		"APPLICATION_RESUME_LINK",
		"APPLICATION_REPOSITORY_LINK",
		"APPLICATION_ACTION_RUN_LINK",
	}, RequiredEnvVars())
}
