package listing

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type anchor struct {
	class string
	href  string
	text  string
}

// anchors extracts every <a> element of a rendered page.
func anchors(t *testing.T, page string) []anchor {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)

	var out []anchor
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			a := anchor{}
			for _, attr := range n.Attr {
				switch attr.Key {
				case "class":
					a.class = attr.Val
				case "href":
					a.href = attr.Val
				}
			}
			if n.FirstChild != nil {
				a.text = n.FirstChild.Data
			}
			out = append(out, a)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func byClass(all []anchor, class string) []anchor {
	var out []anchor
	for _, a := range all {
		if a.class == class {
			out = append(out, a)
		}
	}
	return out
}

func makeTree(t *testing.T, files []string, dirs []string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte(f), 0o644))
	}
	return root
}

func TestRender_Root(t *testing.T) {
	root := makeTree(t, []string{"index.html", "app.js"}, []string{"assets"})

	page, err := Render(root, "/")
	require.NoError(t, err)

	assert.Contains(t, page, "<title>Index of /</title>")

	all := anchors(t, page)
	assert.Empty(t, byClass(all, "parent"))

	entries := byClass(all, "entry")
	require.Len(t, entries, 3)
	hrefs := make([]string, 0, len(entries))
	for _, a := range entries {
		hrefs = append(hrefs, a.href)
	}
	assert.ElementsMatch(t, []string{"/index.html", "/app.js", "/assets"}, hrefs)
}

func TestRender_Kinds(t *testing.T) {
	root := makeTree(t, []string{"file.txt"}, []string{"sub"})

	page, err := Render(root, "/")
	require.NoError(t, err)

	assert.Contains(t, page, `<a class="entry" href="/file.txt">file.txt</a> (file)`)
	assert.Contains(t, page, `<a class="entry" href="/sub">sub</a> (directory)`)
}

func TestRender_SubdirectoryHasOneParentLink(t *testing.T) {
	root := makeTree(t, []string{"docs/guide/a.md"}, []string{"docs/guide"})

	tests := []struct {
		urlPath    string
		wantParent string
		wantHref   string
	}{
		{"/docs", "/", "/docs/guide"},
		{"/docs/", "/docs", "/docs/guide"},
		{"/docs/guide", "/docs", "/docs/guide/a.md"},
		{"/docs/guide/", "/docs/guide", "/docs/guide/a.md"},
	}

	for _, tt := range tests {
		t.Run(tt.urlPath, func(t *testing.T) {
			dir := filepath.Join(root, filepath.FromSlash(strings.Trim(tt.urlPath, "/")))
			page, err := Render(dir, tt.urlPath)
			require.NoError(t, err)

			all := anchors(t, page)
			parents := byClass(all, "parent")
			require.Len(t, parents, 1)
			assert.Equal(t, tt.wantParent, parents[0].href)
			assert.Equal(t, "..", parents[0].text)

			entries := byClass(all, "entry")
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantHref, entries[0].href)
		})
	}
}

func TestParent(t *testing.T) {
	tests := map[string]string{
		"/a":      "/",
		"/a/":     "/a",
		"/a/b":    "/a",
		"/a/b/c":  "/a/b",
		"/a/b/c/": "/a/b/c",
		"a":       "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, parent(in), in)
	}
}

func TestRender_EscapesNames(t *testing.T) {
	root := makeTree(t, []string{"a b.txt", "<b>.txt", "50%.txt"}, nil)

	page, err := Render(root, "/")
	require.NoError(t, err)

	assert.NotContains(t, page, "<b>.txt")
	assert.Contains(t, page, "&lt;b&gt;.txt")

	names := map[string]bool{}
	for _, a := range byClass(anchors(t, page), "entry") {
		name, err := url.PathUnescape(path.Base(a.href))
		require.NoError(t, err)
		names[name] = true
		assert.Equal(t, name, a.text)
	}
	assert.Equal(t, map[string]bool{"a b.txt": true, "<b>.txt": true, "50%.txt": true}, names)
}

func TestRender_SkipsInvalidUTF8(t *testing.T) {
	root := makeTree(t, []string{"ok.txt"}, nil)
	if err := os.WriteFile(filepath.Join(root, "bad\xff.txt"), nil, 0o644); err != nil {
		t.Skipf("filesystem rejects non UTF-8 names: %v", err)
	}

	page, err := Render(root, "/")
	require.NoError(t, err)

	entries := byClass(anchors(t, page), "entry")
	require.Len(t, entries, 1)
	assert.Equal(t, "/ok.txt", entries[0].href)
}

func TestRender_Empty(t *testing.T) {
	page, err := Render(t.TempDir(), "/empty")
	require.NoError(t, err)

	all := anchors(t, page)
	assert.Len(t, byClass(all, "parent"), 1)
	assert.Empty(t, byClass(all, "entry"))
}

func TestRender_Errors(t *testing.T) {
	root := makeTree(t, []string{"file.txt"}, nil)

	_, err := Render(filepath.Join(root, "missing"), "/missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Render(filepath.Join(root, "file.txt"), "/file.txt")
	assert.Error(t, err)
}

// The set of linked names must equal the set of children on disk.
func TestRender_RoundTrip(t *testing.T) {
	trees := []struct {
		files []string
		dirs  []string
	}{
		{nil, nil},
		{[]string{"one"}, nil},
		{nil, []string{"d1", "d2"}},
		{[]string{"x.css", "y.json", "nested/z.png"}, []string{"nested", "empty"}},
		{[]string{"ünïcødé.txt", "with space", "semi;colon", "q?mark", "hash#tag"}, nil},
	}

	for i, tree := range trees {
		root := makeTree(t, tree.files, tree.dirs)

		onDisk, err := os.ReadDir(root)
		require.NoError(t, err)
		want := make([]string, 0, len(onDisk))
		for _, d := range onDisk {
			want = append(want, d.Name())
		}

		page, err := Render(root, "/")
		require.NoError(t, err)

		got := []string{}
		for _, a := range byClass(anchors(t, page), "entry") {
			name, err := url.PathUnescape(strings.TrimPrefix(a.href, "/"))
			require.NoError(t, err)
			got = append(got, name)
		}
		assert.ElementsMatch(t, want, got, "tree %d", i)
	}
}
