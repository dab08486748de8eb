package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "all", cfg.Suite)
	assert.Equal(t, "console", cfg.Reporter())
	assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
	assert.False(t, cfg.GetParallel())
	assert.False(t, cfg.GetVerbose())
	assert.False(t, cfg.GetNoColor())
	assert.True(t, cfg.IsDefault())
}

func TestGetters_NilPointers(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.GetParallel())
	assert.False(t, cfg.GetVerbose())
	assert.False(t, cfg.GetNoColor())
	assert.Equal(t, "console", cfg.Reporter())
}

func TestFindAndLoadConfig(t *testing.T) {
	t.Run("no file returns defaults", func(t *testing.T) {
		cfg, err := FindAndLoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.True(t, cfg.IsDefault())
	})

	t.Run("yaml file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".testy.yaml", `
suite: failing
reporters: [junit]
parallel: true
concurrency: 8
nameFilter: "assert*"
noColor: true
`)
		cfg, err := FindAndLoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "failing", cfg.Suite)
		assert.Equal(t, "junit", cfg.Reporter())
		assert.True(t, cfg.GetParallel())
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, "assert*", cfg.NameFilter)
		assert.True(t, cfg.GetNoColor())
		assert.False(t, cfg.GetVerbose())
		assert.False(t, cfg.IsDefault())
	})

	t.Run("json file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".testy.json", `{"historyDB": "runs.db", "verbose": true}`)
		cfg, err := FindAndLoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "runs.db", cfg.HistoryDB)
		assert.True(t, cfg.GetVerbose())
		assert.Equal(t, "all", cfg.Suite)
	})

	t.Run("search order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "testy.yaml", "suite: passing\n")
		writeFile(t, dir, ".testy.yml", "suite: messageless\n")
		assert.Equal(t, filepath.Join(dir, ".testy.yml"), FindConfig(dir))
	})

	t.Run("schema violation", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".testy.yaml", "concurrency: 0\nreporters: [html]\n")
		_, err := FindAndLoadConfig(dir)
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.NotEmpty(t, verr.Problems)
	})
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		json    bool
		wantErr bool
	}{
		{"empty", "", false, false},
		{"valid yaml", "suite: all\nparallel: false\n", false, false},
		{"valid json", `{"reporters": ["tap", "json"]}`, true, false},
		{"unknown key", "bail: true\n", false, true},
		{"wrong type", "parallel: sometimes\n", false, true},
		{"bad suite", `{"suite": "slow"}`, true, true},
		{"rate and snapshots", "rate: 2.5\nsnapshotDir: __snapshots__\n", false, false},
		{"negative rate", `{"rate": -1}`, true, true},
		{"malformed yaml", "suite: [\n", false, true},
		{"malformed json", `{"suite":`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.data), tt.json)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()

	assert.Same(t, base, base.Merge(nil))

	merged := base.Merge(&Config{
		Reporters:   []string{"tap"},
		Parallel:    BoolPtr(true),
		Concurrency: 2,
		NameFilter:  "*within*",
		Rate:        10,
		SnapshotDir: "snaps",
	})

	assert.Equal(t, "tap", merged.Reporter())
	assert.True(t, merged.GetParallel())
	assert.Equal(t, 2, merged.Concurrency)
	assert.Equal(t, "*within*", merged.NameFilter)
	assert.Equal(t, 10.0, merged.Rate)
	assert.Equal(t, "snaps", merged.SnapshotDir)
	assert.Equal(t, "all", merged.Suite)
	assert.False(t, merged.GetNoColor())

	// base is untouched
	assert.True(t, base.IsDefault())
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	for _, name := range []string{".testy.yaml", ".testy.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := DefaultConfig().Merge(&Config{HistoryDB: "h.db", Verbose: BoolPtr(true)})
			require.NoError(t, cfg.SaveConfig(path))

			loaded, err := LoadConfig(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestSchema(t *testing.T) {
	assert.Contains(t, string(Schema()), `"additionalProperties": false`)
}
