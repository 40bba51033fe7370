package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// LayoutMode selects between the two prompt layouts.
type LayoutMode int

const (
	// Inline renders the whole prompt on a single line.
	Inline LayoutMode = iota
	// Dualline renders the prompt on two lines, the second carrying the
	// exit code and the prompt symbol behind a corner glyph.
	Dualline
)

// cornerGlyph opens the second line of a dual-line prompt.
const cornerGlyph = "└─"

// ParseMode resolves a configured mode name ("Inline", "DualLine").
// Matching is case-insensitive.
func ParseMode(s string) (LayoutMode, error) {
	switch {
	case strings.EqualFold(s, "inline"):
		return Inline, nil
	case strings.EqualFold(s, "dualline"):
		return Dualline, nil
	}
	return Dualline, fmt.Errorf("invalid mode: %s", s)
}

func (m LayoutMode) String() string {
	if m == Inline {
		return "Inline"
	}
	return "DualLine"
}

// Composer assembles resolved tokens into the final prompt string. The
// renderer decides how colors are emitted; a renderer with the Ascii
// profile produces plain text, which tests rely on.
type Composer struct {
	renderer *lipgloss.Renderer
}

func NewComposer(r *lipgloss.Renderer) *Composer {
	return &Composer{renderer: r}
}

// Compose builds the prompt string. It is a pure function of its
// inputs and never fails.
//
// Tokens concatenate in order; literal segments supply all spacing and
// glue. Each colored token is wrapped in its own escape sequence and
// reset, so separators without a color never inherit one. Inline output
// contains no newline; Dualline contains exactly one and never a
// trailing newline.
func (c *Composer) Compose(tokens []ResolvedToken, mode LayoutMode, f Facts) string {
	if mode == Inline {
		var b strings.Builder
		hasSymbol := false
		for _, t := range tokens {
			if t.Kind == KindPromptSymbol && t.Text != "" {
				hasSymbol = true
			}
			b.WriteString(c.paint(t))
		}
		out := b.String()
		if !hasSymbol {
			out = strings.TrimRight(out, " ") + " " + f.Symbol()
		}
		return out
	}

	body, exitTok, symTok := splitTail(tokens)

	var b strings.Builder
	for _, t := range body {
		b.WriteString(c.paint(t))
	}
	line1 := strings.TrimRight(b.String(), " ")

	exitText := strconv.Itoa(f.ExitCode)
	if exitTok != nil {
		exitText = c.paint(*exitTok)
	}
	symText := f.Symbol()
	if symTok != nil {
		symText = c.paint(*symTok)
	}

	return line1 + "\n" + cornerGlyph + " " + exitText + " " + symText
}

func (c *Composer) paint(tok ResolvedToken) string {
	if tok.Text == "" || !tok.Colored {
		return tok.Text
	}
	return tok.Color.Style(c.renderer).Render(tok.Text)
}

// splitTail separates the trailing exit-code / prompt-symbol group
// (including the whitespace literals gluing it on) from the body of
// the token stream. In Dualline mode that group moves to the second
// line.
func splitTail(tokens []ResolvedToken) (body []ResolvedToken, exit, symbol *ResolvedToken) {
	i := len(tokens)
	for i > 0 {
		t := tokens[i-1]
		switch {
		case t.Kind == KindExitCode:
			exit = &tokens[i-1]
		case t.Kind == KindPromptSymbol:
			symbol = &tokens[i-1]
		case t.Kind == KindLiteral && strings.TrimSpace(t.Text) == "":
			// glue around the trailing pair, dropped from line 1
		default:
			return tokens[:i], exit, symbol
		}
		i--
	}
	return tokens[:i], exit, symbol
}

// firstLineWidth measures the visual width of the first physical line
// the tokens would produce, before any color escapes are applied.
func firstLineWidth(tokens []ResolvedToken, mode LayoutMode) int {
	ts := tokens
	if mode == Dualline {
		ts, _, _ = splitTail(tokens)
	}
	var b strings.Builder
	for _, t := range ts {
		b.WriteString(t.Text)
	}
	return runewidth.StringWidth(strings.TrimRight(b.String(), " "))
}
