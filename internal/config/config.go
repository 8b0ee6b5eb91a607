package config

import (
	"bytes"
	_ "embed"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed defaults.yaml
var defaults []byte

// ---- Root ----

type Config struct {
	Submission  SubmissionConfig  `mapstructure:"submission"`
	Application ApplicationConfig `mapstructure:"application"`
	Signing     SigningConfig     `mapstructure:"signing"`
	Log         LogConfig         `mapstructure:"log"`
}

// ---- Leaf structs ----

type SubmissionConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type ApplicationConfig struct {
	Name           string `mapstructure:"name"`
	Email          string `mapstructure:"email"`
	ResumeLink     string `mapstructure:"resume_link"`
	RepositoryLink string `mapstructure:"repository_link"`
	ActionRunLink  string `mapstructure:"action_run_link"`
}

type SigningConfig struct {
	Secret string `mapstructure:"secret"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// requiredEnv maps each required applicant field to the environment variable
// that supplies it. Order matters: diagnostics list fields in this order.
var requiredEnv = []struct {
	Field string
	Var   string
}{
	{"name", "APPLICATION_NAME"},
	{"email", "APPLICATION_EMAIL"},
	{"resume_link", "APPLICATION_RESUME_LINK"},
	{"repository_link", "APPLICATION_REPOSITORY_LINK"},
	{"action_run_link", "APPLICATION_ACTION_RUN_LINK"},
}

// RequiredEnvVars lists the five environment variables every invocation needs.
func RequiredEnvVars() []string {
	vars := make([]string, 0, len(requiredEnv))
	for _, e := range requiredEnv {
		vars = append(vars, e.Var)
	}

	return vars
}

// MissingFields returns the field name of each required applicant value that
// is unset, in diagnostic order. Empty means the config is complete.
func (a ApplicationConfig) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"name", a.Name},
		{"email", a.Email},
		{"resume_link", a.ResumeLink},
		{"repository_link", a.RepositoryLink},
		{"action_run_link", a.ActionRunLink},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}

// Load reads embedded defaults, merges user YAML (if provided), and applies
// env overrides: the documented APPLICATION_* / SIGNING_SECRET variables plus
// APPLY_* for the rest (endpoint, timeout, log level). A .env file in the
// working directory is loaded first, best-effort.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// embedded defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		_ = v.MergeInConfig()
	}

	// documented variable names
	for _, e := range requiredEnv {
		_ = v.BindEnv("application."+e.Field, e.Var)
	}
	_ = v.BindEnv("signing.secret", "SIGNING_SECRET")

	// env override (APPLY_*)
	v.SetEnvPrefix("APPLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
