package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipebook/internal/domain"
)

// isolate runs the test from an empty directory with an empty home so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	v, err := New(fs)
	require.NoError(t, err)
	return Load(v)
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCalorieLimit, cfg.CalorieLimit)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, 80, cfg.Wrap)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Plain)
	assert.False(t, cfg.Demo)
	assert.Empty(t, cfg.ConfigFile)
}

func TestFlags(t *testing.T) {
	isolate(t)

	cfg, err := load(t, "--calorie-limit=500", "-v", "--plain", "--demo", "--wrap=100", "--log-file=stderr")
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.CalorieLimit)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.Plain)
	assert.True(t, cfg.Demo)
	assert.Equal(t, 100, cfg.Wrap)
	assert.Equal(t, "stderr", cfg.LogFile)
}

func TestEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("RECIPEBOOK_CALORIE_LIMIT", "450")
	t.Setenv("RECIPEBOOK_QUIET", "true")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 450.0, cfg.CalorieLimit)
	assert.True(t, cfg.Quiet)
}

func TestFlagBeatsEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("RECIPEBOOK_CALORIE_LIMIT", "450")

	cfg, err := load(t, "--calorie-limit=250")
	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.CalorieLimit)
}

func TestConfigFileInWorkingDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipebook.yaml"),
		[]byte("calorie-limit: 600\ndemo: true\n"), 0o644))

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 600.0, cfg.CalorieLimit)
	assert.True(t, cfg.Demo)
	assert.Equal(t, "recipebook.yaml", filepath.Base(cfg.ConfigFile))
}

func TestExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wrap: 60\n"), 0o644))

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Wrap)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestExplicitConfigFileMissing(t *testing.T) {
	dir := isolate(t)

	_, err := load(t, "--config", filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{CalorieLimit: 300, Wrap: 80}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative limit", Config{CalorieLimit: -1, Wrap: 80}},
		{"NaN limit", Config{CalorieLimit: math.NaN(), Wrap: 80}},
		{"infinite limit", Config{CalorieLimit: math.Inf(1), Wrap: 80}},
		{"narrow wrap", Config{CalorieLimit: 300, Wrap: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), domain.ErrInvalidInput)
		})
	}
}

func TestZeroLimitAllowed(t *testing.T) {
	isolate(t)

	cfg, err := load(t, "--calorie-limit=0")
	require.NoError(t, err)
	assert.Equal(t, 0.0, cfg.CalorieLimit)
}

func TestNonNumericValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{"limit from env", map[string]string{"RECIPEBOOK_CALORIE_LIMIT": "abc"}, ""},
		{"wrap from env", map[string]string{"RECIPEBOOK_WRAP": "wide"}, ""},
		{"limit from file", nil, "calorie-limit: abc\n"},
		{"wrap from file", nil, "wrap: 1.5x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if tt.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "recipebook.yaml"), []byte(tt.file), 0o644))
			}

			_, err := load(t)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), "not a")
		})
	}
}
