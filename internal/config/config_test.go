package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "cli", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.Scenarios.File)
	require.NoError(t, cfg.Validate())

	a, b := cfg.Providers()
	assert.Equal(t, types.ProviderAWS, a)
	assert.Equal(t, types.ProviderAzure, b)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "cloudcost.yaml", `
output:
  format: markdown
  details: true
scenarios:
  file: ./scenarios.hcl
comparison:
  baseline: azure
  candidate: aws
logging:
  level: debug
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.True(t, cfg.Output.Details)
	assert.False(t, cfg.Output.NoColor)
	assert.Equal(t, "./scenarios.hcl", cfg.Scenarios.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)

	a, b := cfg.Providers()
	assert.Equal(t, types.ProviderAzure, a)
	assert.Equal(t, types.ProviderAWS, b)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "cloudcost.json", `{"output": {"format": "json", "no_color": true}}`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
	assert.Equal(t, "aws", cfg.Comparison.Baseline)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "cloudcost.yaml", "output:\n  format: markdown\n")
	t.Setenv("CLOUDCOST_OUTPUT_FORMAT", "json")
	t.Setenv("CLOUDCOST_OUTPUT_DETAILS", "true")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Details)
}

func TestChangedFlagsOverrideEverything(t *testing.T) {
	path := writeFile(t, "cloudcost.yaml", "output:\n  format: markdown\n  details: true\n")
	t.Setenv("CLOUDCOST_SCENARIOS_FILE", "env.hcl")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "cli", "")
	flags.Bool("details", false, "")
	flags.Bool("no-color", false, "")
	flags.String("scenarios", "", "")
	require.NoError(t, flags.Parse([]string{"--format", "json", "--no-color"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
	// Unchanged flags fall through to file and environment
	assert.True(t, cfg.Output.Details)
	assert.Equal(t, "env.hcl", cfg.Scenarios.File)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad format", "output:\n  format: html\n"},
		{"unknown provider", "comparison:\n  baseline: gcp\n"},
		{"same providers", "comparison:\n  baseline: aws\n  candidate: aws\n"},
		{"malformed yaml", "output: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "cloudcost.yaml", tt.content), nil)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeConfig), "got %v", err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Output.Format = "markdown"
	cfg.Scenarios.File = "team.hcl"

	path := filepath.Join(t.TempDir(), "nested", "cloudcost.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGlobalConfig(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	cfg := Default()
	cfg.Output.Details = true
	Set(cfg)
	assert.Same(t, cfg, Get())
}
