// Package install wires the prompt into the user's shell by appending
// a marked block to the shell rc file. Re-running replaces any block
// from a previous installation.
package install

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	marker            = "# Pulse - PS1 prompt engine"
	ps1Line           = `export PS1='$(pulse) '`
	promptCommandLine = `export PROMPT_COMMAND='export LAST_EXIT_CODE=$?'`
)

// IsInstalled reports whether the rc file already exports the prompt.
func IsInstalled(rcPath string) bool {
	content, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(content), ps1Line)
}

// Install appends the prompt block to the rc file of the given shell,
// removing any existing block first.
func Install(home string, sh Shell) (string, error) {
	rcPath := sh.RCFile(home)
	return rcPath, InstallTo(rcPath)
}

// InstallTo performs the installation against an explicit rc path.
func InstallTo(rcPath string) error {
	content, err := os.ReadFile(rcPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", rcPath, err)
	}

	cleaned, removed := removeBlock(string(content))
	if removed {
		if err := os.WriteFile(rcPath, []byte(cleaned), 0644); err != nil {
			return fmt.Errorf("rewrite %s: %w", rcPath, err)
		}
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", rcPath, err)
	}
	defer f.Close()

	block := "\n" + marker + "\n" + ps1Line + "\n" + promptCommandLine + "\n"
	if _, err := f.WriteString(block); err != nil {
		return fmt.Errorf("write %s: %w", rcPath, err)
	}
	return nil
}

// removeBlock strips a previously installed block: everything from the
// marker line to the next blank line (or end of file).
func removeBlock(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	var kept []string
	removed := false
	skipping := false

	for _, line := range lines {
		if strings.Contains(line, marker) {
			skipping = true
			removed = true
			continue
		}
		if skipping {
			if line == "" {
				skipping = false
			}
			continue
		}
		kept = append(kept, line)
	}

	if !removed {
		return content, false
	}
	return strings.Join(kept, "\n"), true
}
