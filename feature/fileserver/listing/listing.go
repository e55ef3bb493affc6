package listing

import (
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	KindDirectory = "directory"
	KindFile      = "file"
)

var page = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Index of {{.Path}}</title>
<style>body{font-family:Arial,sans-serif;margin:20px;}h1{color:#333;}ul{list-style-type:none;padding:0;}li{margin:5px 0;}a{text-decoration:none;color:#0077cc;}a:hover{text-decoration:underline;}</style>
</head>
<body>
<h1>Index of {{.Path}}</h1>
<ul>
{{- if .Parent}}
<li><a class="parent" href="{{.Parent}}">..</a> (parent directory)</li>
{{- end}}
{{- range .Entries}}
<li><a class="entry" href="{{.Href}}">{{.Name}}</a> ({{.Kind}})</li>
{{- end}}
</ul>
</body>
</html>
`))

type entry struct {
	Name string
	Href string
	Kind string
}

type view struct {
	Path    string
	Parent  string
	Entries []entry
}

// Render produces an HTML page listing the immediate children of dirPath,
// linked relative to urlPath, the URL the directory was requested under.
//
// Entries keep the order the operating system returns them in. Entries whose
// name is not valid UTF-8 are skipped. An error is returned only when the
// directory cannot be read at all.
func Render(dirPath, urlPath string) (string, error) {
	f, err := os.Open(dirPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	// (*os.File).ReadDir does not sort, unlike os.ReadDir.
	dirents, err := f.ReadDir(-1)
	if err != nil && len(dirents) == 0 {
		return "", err
	}

	base := strings.TrimRight(urlPath, "/")
	v := view{
		Path:    urlPath,
		Entries: make([]entry, 0, len(dirents)),
	}
	if urlPath != "/" {
		v.Parent = parent(urlPath)
	}

	for _, d := range dirents {
		name := d.Name()
		if !utf8.ValidString(name) {
			continue
		}
		v.Entries = append(v.Entries, entry{
			Name: name,
			Href: base + "/" + url.PathEscape(name),
			Kind: kind(filepath.Join(dirPath, name)),
		})
	}

	var sb strings.Builder
	if err := page.Execute(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// parent cuts urlPath at its last slash. A trailing slash therefore counts as
// the final separator: the parent of "/a/b/" is "/a/b".
func parent(urlPath string) string {
	i := strings.LastIndex(urlPath, "/")
	if i <= 0 {
		return "/"
	}
	return urlPath[:i]
}

// kind follows symlinks; anything that cannot be stat'ed is labelled a file.
func kind(path string) string {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return KindDirectory
	}
	return KindFile
}
