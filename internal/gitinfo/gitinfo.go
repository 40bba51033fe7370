// Package gitinfo detects an enclosing Git repository and extracts the
// facts the prompt shows: repository name, branch or detached HEAD,
// dirty state, and the configured user email.
package gitinfo

import (
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"go.uber.org/zap"
)

// Context holds the repository facts for one invocation. It is computed
// fresh every time and never cached; a prompt redraw must reflect the
// repository as it is now.
type Context struct {
	Name     string
	Branch   string // empty when the branch could not be determined
	Detached bool   // Branch holds a short commit hash instead of a ref name
	Dirty    bool
	Email    string
}

// Inspector resolves repository state for a working directory.
type Inspector struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inspector{log: log}
}

// FindRoot walks from dir upward through its ancestors looking for a
// ".git" entry, stopping at the first match or at the filesystem root.
// The walk is a plain loop over parent prefixes: no siblings or
// descendants are ever scanned.
func FindRoot(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Inspect returns the repository context enclosing dir, or false when no
// repository marker exists anywhere up to the filesystem root.
//
// Unreadable or corrupt repository metadata degrades to a context with
// only the name filled in. The prompt must never fail to render because
// a repository is damaged.
func (in *Inspector) Inspect(dir string) (*Context, bool) {
	root, ok := FindRoot(dir)
	if !ok {
		return nil, false
	}

	ctx := &Context{Name: filepath.Base(root)}

	repo, err := git.PlainOpen(root)
	if err != nil {
		in.log.Debug("repository unreadable", zap.String("root", root), zap.Error(err))
		return ctx, true
	}

	if head, err := repo.Head(); err != nil {
		in.log.Debug("HEAD unreadable", zap.String("root", root), zap.Error(err))
	} else if head.Name().IsBranch() {
		ctx.Branch = head.Name().Short()
	} else {
		// Detached HEAD: show the commit it points at.
		ctx.Branch = head.Hash().String()[:7]
		ctx.Detached = true
	}

	if cfg, err := repo.ConfigScoped(gitcfg.GlobalScope); err == nil {
		ctx.Email = cfg.User.Email
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			ctx.Dirty = !status.IsClean()
		} else {
			in.log.Debug("status unreadable", zap.String("root", root), zap.Error(err))
		}
	}

	return ctx, true
}
