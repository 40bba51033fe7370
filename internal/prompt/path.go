package prompt

import "strings"

// truncationThreshold is the maximum number of path segments shown after
// the anchor before the leading ones collapse into an ellipsis.
const truncationThreshold = 3

// PathView is the condensed rendering of an absolute directory path:
// an anchor ("~" when the path sits under the home directory, "/"
// otherwise) followed by the segments shown after it. When the path is
// deeper than truncationThreshold, Elided is set and Segments holds
// exactly the last three directory names.
type PathView struct {
	Anchor   string
	Elided   bool
	Segments []string
}

// Condense reduces an absolute path to the view shown in the prompt.
// It is pure and total: empty or malformed input is treated as the
// filesystem root.
func Condense(path, home string) PathView {
	anchor := "/"
	rel := path
	if home != "" && home != "/" {
		if path == home {
			anchor = "~"
			rel = ""
		} else if strings.HasPrefix(path, home+"/") {
			anchor = "~"
			rel = path[len(home):]
		}
	}

	var parts []string
	for _, p := range strings.Split(rel, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) > truncationThreshold {
		return PathView{
			Anchor:   anchor,
			Elided:   true,
			Segments: parts[len(parts)-truncationThreshold:],
		}
	}
	return PathView{Anchor: anchor, Segments: parts}
}

// Render returns the full display form, e.g. "~ … a › b › c".
func (v PathView) Render() string {
	if len(v.Segments) == 0 {
		return v.Anchor
	}
	nav := strings.Join(v.Segments, " › ")
	if v.Elided {
		return v.Anchor + " … " + nav
	}
	return v.Anchor + " " + nav
}

// RenderCompact returns the narrow-terminal form, keeping only the last
// directory name: "~ … › c". A path with a single visible segment is
// short already and renders as-is.
func (v PathView) RenderCompact() string {
	switch {
	case len(v.Segments) == 0:
		return v.Anchor
	case len(v.Segments) == 1 && !v.Elided:
		return v.Anchor + " " + v.Segments[0]
	default:
		return v.Anchor + " … › " + v.Segments[len(v.Segments)-1]
	}
}
