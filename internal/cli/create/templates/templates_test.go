package templates

import (
	"io/fs"
	"strings"
	"testing"
)

func TestTemplateFS_Layout(t *testing.T) {
	for _, dir := range []string{"root", "web", "api", "tests", "scripts"} {
		entries, err := fs.ReadDir(TemplateFS, dir)
		if err != nil {
			t.Fatalf("ReadDir(%s) error = %v", dir, err)
		}
		if len(entries) == 0 {
			t.Errorf("%s has no templates", dir)
		}
		for _, e := range entries {
			if !strings.HasSuffix(e.Name(), ".template") {
				t.Errorf("%s/%s lacks the .template suffix", dir, e.Name())
			}
		}
	}
}

func TestTemplateFS_UntypedPageHasNoTypeSyntax(t *testing.T) {
	content, err := fs.ReadFile(TemplateFS, "web/page.js.svelte.template")
	if err != nil {
		t.Fatal(err)
	}

	for _, marker := range []string{`lang="ts"`, "interface ", "$state<", " as EchoResponse"} {
		if strings.Contains(string(content), marker) {
			t.Errorf("untyped page contains %q", marker)
		}
	}
}
