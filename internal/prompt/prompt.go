// Package prompt implements the rendering pipeline: path condensation,
// segment resolution against the gathered facts, and layout composition
// into the final colored prompt string.
package prompt

import "github.com/charmbracelet/lipgloss"

// defaultTermWidth is assumed when the terminal size is unknown.
const defaultTermWidth = 120

// Generate renders the prompt for the configured segment list, layout
// mode, and facts.
//
// When the working directory is inside a repository, the repository and
// path segments are resolved at descending verbosity until the first
// line fits the terminal width. Outside a repository the full rendering
// is always used; path condensation alone keeps it bounded.
func Generate(segs []Segment, mode LayoutMode, f Facts, r *lipgloss.Renderer) string {
	width := f.TermWidth
	if width <= 0 {
		width = defaultTermWidth
	}

	levels := []RepoDisplay{RepoFull}
	if f.Repo != nil {
		levels = append(levels, RepoMini, RepoNano)
	}

	var tokens []ResolvedToken
	for _, d := range levels {
		tokens = ResolveAll(segs, f, d)
		if firstLineWidth(tokens, mode) <= width {
			break
		}
	}

	return NewComposer(r).Compose(tokens, mode, f)
}
