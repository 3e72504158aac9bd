// Package templates embeds the static files layered onto the scaffolded workspaces.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed files
var embedded embed.FS

// TemplateFS holds the templates rooted at files/, e.g. "api/wrangler.jsonc.template"
var TemplateFS fs.FS = mustSub(embedded, "files")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
