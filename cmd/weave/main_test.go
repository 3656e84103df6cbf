package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})

	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))
	return tmpDir
}

func TestRun_RenderAndClean(t *testing.T) {
	tmpDir := chdirTemp(t)

	document := "# Report\n\n" +
		"```{sh read-data, cache=TRUE}\n" +
		"echo \"12 rows\"\n" +
		"```\n"
	require.NoError(t, os.WriteFile("report.md", []byte(document), 0o600))

	exitCode := run([]string{"render", "report.md"})
	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(filepath.Join(tmpDir, "report.out.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "12 rows")

	_, err = os.Stat(filepath.Join(tmpDir, ".weave", "cache", "report.json"))
	require.NoError(t, err)

	// Second render reuses the cached output.
	exitCode = run([]string{"render", "report.md"})
	require.Equal(t, 0, exitCode)

	exitCode = run([]string{"clean", "--all"})
	require.Equal(t, 0, exitCode)

	_, err = os.Stat(filepath.Join(tmpDir, ".weave", "cache", "report.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_SnippetFailure(t *testing.T) {
	chdirTemp(t)

	document := "```{sh broken}\n" +
		"echo \"diagnostic text\" >&2\n" +
		"exit 3\n" +
		"```\n"
	require.NoError(t, os.WriteFile("report.md", []byte(document), 0o600))

	exitCode := run([]string{"render", "report.md"})
	require.Equal(t, 1, exitCode)
}

func TestRun_MissingDocument(t *testing.T) {
	chdirTemp(t)

	exitCode := run([]string{"render", "absent.md"})
	require.Equal(t, 1, exitCode)
}
