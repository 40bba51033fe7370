package install

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShell(t *testing.T) {
	assert.Equal(t, "bash", DetectShell("/bin/bash").Name())
	assert.Equal(t, "zsh", DetectShell("/usr/bin/zsh").Name())
	assert.Equal(t, "zsh", DetectShell("").Name())
	assert.Equal(t, "zsh", DetectShell("/bin/fish").Name())
}

func TestShellRCFiles(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u", ".zshrc"), (&ZshShell{}).RCFile("/home/u"))
	assert.Equal(t, filepath.Join("/home/u", ".bashrc"), (&BashShell{}).RCFile("/home/u"))
}

func TestInstallTo_FreshFile(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".bashrc")

	require.NoError(t, InstallTo(rc))

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	s := string(content)
	assert.Contains(t, s, marker)
	assert.Contains(t, s, ps1Line)
	assert.Contains(t, s, promptCommandLine)
	assert.True(t, IsInstalled(rc))
}

func TestInstallTo_PreservesExistingContent(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(rc, []byte("alias ll='ls -l'\n"), 0644))

	require.NoError(t, InstallTo(rc))

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(content), "alias ll='ls -l'")
	assert.Contains(t, string(content), ps1Line)
}

func TestInstallTo_ReplacesExistingBlock(t *testing.T) {
	rc := filepath.Join(t.TempDir(), ".zshrc")

	require.NoError(t, InstallTo(rc))
	require.NoError(t, InstallTo(rc))

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), marker))
	assert.Equal(t, 1, strings.Count(string(content), ps1Line))
}

func TestIsInstalled_MissingFile(t *testing.T) {
	assert.False(t, IsInstalled(filepath.Join(t.TempDir(), ".bashrc")))
}

func TestRemoveBlock(t *testing.T) {
	content := "alias ll='ls -l'\n\n" + marker + "\n" + ps1Line + "\n" + promptCommandLine + "\n\nexport EDITOR=vim\n"

	cleaned, removed := removeBlock(content)
	assert.True(t, removed)
	assert.NotContains(t, cleaned, marker)
	assert.NotContains(t, cleaned, ps1Line)
	assert.Contains(t, cleaned, "alias ll='ls -l'")
	assert.Contains(t, cleaned, "export EDITOR=vim")
}

func TestRemoveBlock_NothingToRemove(t *testing.T) {
	cleaned, removed := removeBlock("alias ll='ls -l'\n")
	assert.False(t, removed)
	assert.Equal(t, "alias ll='ls -l'\n", cleaned)
}

func TestInstall_UsesShellRCFile(t *testing.T) {
	home := t.TempDir()

	rcPath, err := Install(home, &BashShell{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".bashrc"), rcPath)
	assert.True(t, IsInstalled(rcPath))
}
