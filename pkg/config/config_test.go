package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectpack/pkg/combine"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projectpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, combine.DefaultExcludedDirs, cfg.Exclude.Dirs)
	assert.Equal(t, combine.DefaultOutput, cfg.Output.Default)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Log.Debug)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
exclude:
  dirs:
    - build
    - dist
output:
  default: bundle.txt
server:
  port: 9000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"build", "dist"}, cfg.Exclude.Dirs)
	assert.Equal(t, combine.DefaultExcludedExtensions, cfg.Exclude.Extensions)
	assert.Equal(t, combine.DefaultExcludedFilenames, cfg.Exclude.Files)
	assert.Equal(t, "bundle.txt", cfg.Output.Default)
	assert.Equal(t, combine.DefaultTitle, cfg.Output.Title)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
exclude:
  extensions: [lock]
server:
  port: 9000
`)
	t.Setenv("PROJECTPACK_EXCLUDE_EXTENSIONS", "md, TXT ,")
	t.Setenv("PROJECTPACK_SERVER_PORT", "9100")
	t.Setenv("PROJECTPACK_LOG_DEBUG", "true")
	t.Setenv("PROJECTPACK_OUTPUT_TITLE", "Bundle")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"md", "TXT"}, cfg.Exclude.Extensions)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "Bundle", cfg.Output.Title)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to stat config file")
	})

	t.Run("directory instead of file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "exclude: [unclosed\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config file")
	})

	t.Run("invalid port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  port: 70000\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.port")
	})

	t.Run("empty default output", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output:\n  default: \"\"\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output.default")
	})
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/projectpack.yaml")

	assert.Equal(t, "flag.yaml", ResolvePath("flag.yaml"))
	assert.Equal(t, "/etc/projectpack.yaml", ResolvePath(""))
}

func TestConfigExclusions(t *testing.T) {
	cfg := Default()
	cfg.Exclude.Extensions = []string{".PHP"}

	ex := cfg.Exclusions()

	assert.True(t, ex.ExcludesFile("index.php"))
	assert.True(t, ex.ExcludesDir("vendor"))
	assert.True(t, ex.ExcludesFile("README.md"))
}

func TestConfigYAML(t *testing.T) {
	out, err := Default().YAML()
	require.NoError(t, err)

	assert.Contains(t, string(out), "exclude:")
	assert.Contains(t, string(out), "- node_modules")
	assert.Contains(t, string(out), "default: project_bundle.txt")
}

func TestEnvKeyValue(t *testing.T) {
	tests := []struct {
		key, value string
		wantKey    string
		wantValue  interface{}
	}{
		{"PROJECTPACK_EXCLUDE_DIRS", "a,b", "exclude.dirs", []string{"a", "b"}},
		{"PROJECTPACK_EXCLUDE_FILES", "", "exclude.files", []string{}},
		{"PROJECTPACK_SERVER_PORT", "81", "server.port", 81},
		{"PROJECTPACK_SERVER_PORT", "eighty", "server.port", "eighty"},
		{"PROJECTPACK_LOG_DEBUG", "1", "log.debug", true},
		{"PROJECTPACK_OUTPUT_DEFAULT", "x.txt", "output.default", "x.txt"},
		{"PROJECTPACK_CONFIG", "c.yaml", "", nil},
		{"PROJECTPACK_NOSECTION", "x", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			key, value := envKeyValue(tt.key, tt.value)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
