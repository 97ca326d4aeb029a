package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/feynman/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, "warn", config.LogLevel)
	assert.False(t, config.NoColor)
	assert.Equal(t, log.LevelWarn, config.Level())
	assert.NoError(t, config.Validate())
}

func TestParseYAML(t *testing.T) {
	config, err := ParseYAML([]byte("log_level: debug\nno_color: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.NoColor)
}

func TestParseYAMLRejectsUnknownKeys(t *testing.T) {
	_, err := ParseYAML([]byte("log_level: debug\nquotient: 7\n"))
	require.Error(t, err)
}

func TestParseJSON(t *testing.T) {
	config, err := ParseJSON([]byte(`{"log_level": "error"}`))
	require.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
	assert.False(t, config.NoColor)
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantLevel string
		wantErr   string
	}{
		{"yaml", "feynman.yaml", "log_level: info\n", "info", ""},
		{"yml", "feynman.yml", "log_level: error\n", "error", ""},
		{"json", "feynman.json", `{"log_level": "debug"}`, "debug", ""},
		{"toml", "feynman.toml", "log_level = 'info'", "", "unsupported file extension: .toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			config, err := ParseFile(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, config.LogLevel)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestMerge(t *testing.T) {
	base := &Config{LogLevel: "warn"}

	merged := Merge(base, &Config{})
	assert.Equal(t, "warn", merged.LogLevel)
	assert.False(t, merged.NoColor)

	merged = Merge(base, &Config{LogLevel: "debug", NoColor: true})
	assert.Equal(t, "debug", merged.LogLevel)
	assert.True(t, merged.NoColor)

	assert.Equal(t, "warn", base.LogLevel, "base is not modified")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{LogLevel: "ERROR"}).Validate())

	err := (&Config{LogLevel: "loud"}).Validate()
	require.Error(t, err)
	assert.Equal(t, "invalid log level: loud", err.Error())
}

func TestLoad(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		config, err := Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, Default(), config)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, "feynman.yaml", "log_level: info\nno_color: true\n")
		config, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "info", NoColor: true}, config)
	})

	t.Run("override wins over file", func(t *testing.T) {
		path := writeFile(t, "feynman.yaml", "log_level: info\n")
		config, err := Load(path, &Config{LogLevel: "error"})
		require.NoError(t, err)
		assert.Equal(t, "error", config.LogLevel)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := Load("", &Config{LogLevel: "loud"})
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}
