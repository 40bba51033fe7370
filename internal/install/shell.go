package install

import (
	"path/filepath"
	"strings"
)

// Shell defines the interface for shell-specific installation targets.
type Shell interface {
	Name() string
	RCFile(home string) string
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Name() string {
	return "zsh"
}

func (s *ZshShell) RCFile(home string) string {
	return filepath.Join(home, ".zshrc")
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Name() string {
	return "bash"
}

func (s *BashShell) RCFile(home string) string {
	return filepath.Join(home, ".bashrc")
}

// DetectShell identifies the user's shell from $SHELL, defaulting to Zsh.
func DetectShell(shellPath string) Shell {
	if strings.Contains(shellPath, "bash") {
		return &BashShell{}
	}
	return &ZshShell{}
}
