package prompt

import (
	"fmt"
	"strconv"

	"pulse/internal/clrs"
	"pulse/internal/gitinfo"
)

// Kind identifies what a prompt segment renders. The set is closed:
// configuration validation rejects anything ParseKind does not know.
type Kind int

const (
	KindUsername Kind = iota
	KindHostname
	KindPath
	KindRepo
	KindExitCode
	KindPromptSymbol
	KindLiteral
	KindGitEmail
)

var kindNames = map[string]Kind{
	"username":          KindUsername,
	"hostname":          KindHostname,
	"current_directory": KindPath,
	"git_branch":        KindRepo,
	"exit_code":         KindExitCode,
	"prompt_symbol":     KindPromptSymbol,
	"literal":           KindLiteral,
	"git_email":         KindGitEmail,
}

// ParseKind resolves a configuration segment name to its Kind.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindNames[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("invalid segment name: %s", name)
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// Segment is one externally configured unit of the prompt. The core
// never invents segment order; it only resolves each entry of the
// configured list against the current facts.
type Segment struct {
	Kind    Kind
	Color   clrs.Clr
	Colored bool
	Text    string // literal or prompt_symbol text
}

// ResolvedToken is a Segment resolved against the facts: the text to
// show and the color to paint it with, if any.
type ResolvedToken struct {
	Kind    Kind
	Text    string
	Color   clrs.Clr
	Colored bool
}

// Facts are the inputs the rendering pipeline consumes. They are
// gathered by the caller; the core never reads the environment or the
// filesystem itself.
type Facts struct {
	Username  string
	Hostname  string
	Path      PathView
	Repo      *gitinfo.Context
	ExitCode  int
	Root      bool // euid 0, switches the prompt symbol to "#"
	TermWidth int  // 0 means unknown
}

// Symbol returns the prompt symbol for the current user.
func (f Facts) Symbol() string {
	if f.Root {
		return "#"
	}
	return "$"
}

// RepoDisplay selects how verbosely the repository segment renders.
// Narrow terminals degrade Full → Mini → Nano; Nano also compacts the
// path to its last directory.
type RepoDisplay int

const (
	RepoFull RepoDisplay = iota // [name : branch]
	RepoMini                    // [name : …]
	RepoNano                    // [name], compact path
)

// Resolve maps one configured segment to its token. A segment whose
// fact is absent (a repo segment outside any repository, an email with
// none configured) resolves to an empty token rather than an error.
func Resolve(seg Segment, f Facts, d RepoDisplay) ResolvedToken {
	tok := ResolvedToken{Kind: seg.Kind, Color: seg.Color, Colored: seg.Colored}

	switch seg.Kind {
	case KindUsername:
		tok.Text = f.Username
	case KindHostname:
		tok.Text = f.Hostname
	case KindPath:
		if d == RepoNano {
			tok.Text = f.Path.RenderCompact()
		} else {
			tok.Text = f.Path.Render()
		}
	case KindRepo:
		if f.Repo != nil {
			tok.Text = repoText(f.Repo, d)
		}
	case KindExitCode:
		tok.Text = strconv.Itoa(f.ExitCode)
	case KindPromptSymbol:
		if seg.Text != "" {
			tok.Text = seg.Text
		} else {
			tok.Text = f.Symbol()
		}
	case KindLiteral:
		tok.Text = seg.Text
	case KindGitEmail:
		if f.Repo != nil {
			tok.Text = f.Repo.Email
		}
	}

	return tok
}

// ResolveAll resolves the configured segment list in order.
func ResolveAll(segs []Segment, f Facts, d RepoDisplay) []ResolvedToken {
	tokens := make([]ResolvedToken, 0, len(segs))
	for _, seg := range segs {
		tokens = append(tokens, Resolve(seg, f, d))
	}
	return tokens
}

func repoText(repo *gitinfo.Context, d RepoDisplay) string {
	branch := repo.Branch
	if branch != "" && repo.Dirty {
		branch += "*"
	}
	switch {
	case d == RepoNano || branch == "":
		return "[" + repo.Name + "]"
	case d == RepoMini:
		return "[" + repo.Name + " : …]"
	default:
		return "[" + repo.Name + " : " + branch + "]"
	}
}
