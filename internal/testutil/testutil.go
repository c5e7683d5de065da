// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ConfigOption configures optional fields when creating a config file fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	locale        string
	maxTokenBytes int
}

// WithLocale sets messages.locale.
func WithLocale(locale string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.locale = locale
	}
}

// WithMaxTokenBytes sets substitution.max_token_bytes.
func WithMaxTokenBytes(n int) ConfigOption {
	return func(cfg *testConfig) {
		cfg.maxTokenBytes = n
	}
}

// SetupTestConfig writes a complete config file into tmpDir and returns its path.
// By default diagnostics are English and tokens are unbounded.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		locale: "en",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`substitution:
  initial_buffer_bytes: 16
  max_token_bytes: %d
  output_buffer_bytes: 64
messages:
  locale: %s
database:
  host: 127.0.0.1
  port: 3306
  database: wordsub_test
  username: wordsub
  connect_attempts: 1
`,
		cfg.maxTokenBytes,
		cfg.locale,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteDictionary writes lines, each terminated by a newline, as a dictionary file at path.
func WriteDictionary(t *testing.T, fs afero.Fs, path string, lines ...string) {
	t.Helper()

	var content strings.Builder
	for _, line := range lines {
		content.WriteString(line)
		content.WriteByte('\n')
	}
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content.String()), 0644))
}
