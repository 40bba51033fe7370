package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCondense_HomeAnchor(t *testing.T) {
	tests := []struct {
		name string
		path string
		want PathView
	}{
		{
			name: "home itself",
			path: "/home/user",
			want: PathView{Anchor: "~"},
		},
		{
			name: "shallow under home",
			path: "/home/user/docs",
			want: PathView{Anchor: "~", Segments: []string{"docs"}},
		},
		{
			name: "exactly three below home",
			path: "/home/user/a/b/c",
			want: PathView{Anchor: "~", Segments: []string{"a", "b", "c"}},
		},
		{
			name: "deep under home truncates to last three",
			path: "/home/user/src/project/a/b/main",
			want: PathView{Anchor: "~", Elided: true, Segments: []string{"a", "b", "main"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Condense(tc.path, "/home/user"))
		})
	}
}

func TestCondense_RootAnchor(t *testing.T) {
	got := Condense("/usr/local/bin/pulse", "/home/user")
	assert.Equal(t, PathView{Anchor: "/", Elided: true, Segments: []string{"local", "bin", "pulse"}}, got)

	got = Condense("/etc", "/home/user")
	assert.Equal(t, PathView{Anchor: "/", Segments: []string{"etc"}}, got)
}

func TestCondense_MalformedInputIsRoot(t *testing.T) {
	assert.Equal(t, PathView{Anchor: "/"}, Condense("", "/home/user"))
	assert.Equal(t, PathView{Anchor: "/"}, Condense("/", "/home/user"))
}

func TestCondense_HomeIsRootDoesNotAnchor(t *testing.T) {
	// A home of "/" would turn every path into "~"; treat it as unset.
	got := Condense("/usr/bin", "/")
	assert.Equal(t, "/", got.Anchor)
}

func TestCondense_SiblingOfHomeNotAnchored(t *testing.T) {
	// /home/username is not under /home/user, prefix match must be
	// segment-aligned.
	got := Condense("/home/username/docs", "/home/user")
	assert.Equal(t, "/", got.Anchor)
	assert.Equal(t, []string{"home", "username", "docs"}, got.Segments)
}

func TestPathView_Render(t *testing.T) {
	tests := []struct {
		name string
		view PathView
		want string
	}{
		{"anchor only", PathView{Anchor: "~"}, "~"},
		{"root only", PathView{Anchor: "/"}, "/"},
		{"joined segments", PathView{Anchor: "~", Segments: []string{"home", "user", "docs"}}, "~ home › user › docs"},
		{"elided", PathView{Anchor: "~", Elided: true, Segments: []string{"a", "b", "main"}}, "~ … a › b › main"},
		{"root elided", PathView{Anchor: "/", Elided: true, Segments: []string{"local", "bin", "pulse"}}, "/ … local › bin › pulse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.view.Render())
		})
	}
}

func TestPathView_RenderCompact(t *testing.T) {
	assert.Equal(t, "~", PathView{Anchor: "~"}.RenderCompact())
	assert.Equal(t, "~ subdir", PathView{Anchor: "~", Segments: []string{"subdir"}}.RenderCompact())
	assert.Equal(t, "~ … › core", PathView{Anchor: "~", Segments: []string{"src", "lib", "core"}}.RenderCompact())
	assert.Equal(t, "/ … › main", PathView{Anchor: "/", Elided: true, Segments: []string{"a", "b", "main"}}.RenderCompact())
}

func TestCondense_NeverDropsLastThree(t *testing.T) {
	got := Condense("/home/user/1/2/3/4/5/6/7/8", "/home/user")
	assert.True(t, got.Elided)
	assert.Equal(t, []string{"6", "7", "8"}, got.Segments)
}
