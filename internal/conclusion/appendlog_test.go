package conclusion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, l *AppendLog, projectPath string) string {
	t.Helper()
	data, err := os.ReadFile(l.FilePath(projectPath))
	require.NoError(t, err)
	return string(data)
}

func TestAppend_CreatesDirectoryAndFile(t *testing.T) {
	l := NewAppendLog("", nil)
	project := t.TempDir()

	res, err := l.Append(project, "## First\n\nbody")
	require.NoError(t, err)

	want := filepath.Join(project, DefaultDataDir, LogFileName)
	assert.Equal(t, want, res.FilePath)
	assert.Positive(t, res.Timestamp)
	assert.Equal(t, "## First\n\nbody", readLog(t, l, project))
}

func TestAppend_PreservesHistory(t *testing.T) {
	l := NewAppendLog("", nil)
	project := t.TempDir()

	blocks := []string{"## One\n\na", "## Two\n\nb", "## Three\n\nc"}
	for _, b := range blocks {
		_, err := l.Append(project, b)
		require.NoError(t, err)
	}

	// Final content equals all blocks joined by the fixed separator, in
	// call order.
	assert.Equal(t, strings.Join(blocks, Separator), readLog(t, l, project))
}

func TestAppend_SyntheticHeaderForRawBlocks(t *testing.T) {
	l := NewAppendLog("", nil)
	project := t.TempDir()

	_, err := l.Append(project, "plain interaction summary")
	require.NoError(t, err)

	content := readLog(t, l, project)
	assert.True(t, strings.HasPrefix(content, "## Entry at "), "content = %q", content)
	assert.Contains(t, content, "plain interaction summary")
}

func TestAppend_HeaderedBlocksPassThroughUnchanged(t *testing.T) {
	l := NewAppendLog("", nil)
	project := t.TempDir()

	_, err := l.Append(project, "## ✨ feature: why\n\nbody")
	require.NoError(t, err)

	content := readLog(t, l, project)
	assert.Equal(t, "## ✨ feature: why\n\nbody", content)
	assert.NotContains(t, content, "## Entry at ")
}

func TestAppend_EmptyProjectPath(t *testing.T) {
	l := NewAppendLog("", nil)

	_, err := l.Append("", "block")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = l.Append("   ", "block")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestAppend_IdempotentDirectoryCreation(t *testing.T) {
	l := NewAppendLog("", nil)
	project := t.TempDir()

	_, err := l.Append(project, "## One\n\na")
	require.NoError(t, err)
	_, err = l.Append(project, "## Two\n\nb")
	require.NoError(t, err, "second append against an existing data dir must not fail")

	entries, err := os.ReadDir(filepath.Join(project, DefaultDataDir))
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the log file may exist in the data dir")
	assert.Equal(t, LogFileName, entries[0].Name())
}

func TestAppend_IOFailureLeavesExistingContentUntouched(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions do not apply to root")
	}

	l := NewAppendLog("", nil)
	project := t.TempDir()

	_, err := l.Append(project, "## One\n\na")
	require.NoError(t, err)
	before := readLog(t, l, project)

	// Make the data dir read-only so the temp-file write fails before the
	// rename step.
	dir := filepath.Join(project, DefaultDataDir)
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err = l.Append(project, "## Two\n\nb")
	assert.Error(t, err)

	require.NoError(t, os.Chmod(dir, 0o755))
	assert.Equal(t, before, readLog(t, l, project), "failed write must not touch the file")
}

func TestAppend_DataDirBlockedByFile(t *testing.T) {
	l := NewAppendLog("", nil)
	project := t.TempDir()

	// A regular file where the data dir should be makes MkdirAll fail.
	require.NoError(t, os.WriteFile(filepath.Join(project, DefaultDataDir), []byte("x"), 0o644))

	_, err := l.Append(project, "## One\n\na")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPath)
}

func TestAppend_CustomDataDir(t *testing.T) {
	l := NewAppendLog("custom-data", nil)
	project := t.TempDir()

	res, err := l.Append(project, "## One\n\na")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(project, "custom-data", LogFileName), res.FilePath)
}

func TestAppend_NoLeftoverTempFiles(t *testing.T) {
	l := NewAppendLog("", nil)
	project := t.TempDir()

	for i := 0; i < 5; i++ {
		_, err := l.Append(project, "## Block\n\nbody")
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(filepath.Join(project, DefaultDataDir))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
