package shared

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestWriteFile_CreatesParentsAndOverwrites(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "a", "b", "file.txt")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() second error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
}

func TestIsEmptyDir(t *testing.T) {
	tmp := t.TempDir()

	empty, err := IsEmptyDir(tmp)
	if err != nil {
		t.Fatalf("IsEmptyDir() error = %v", err)
	}
	if !empty {
		t.Errorf("IsEmptyDir(new temp dir) = false, want true")
	}

	if err := os.WriteFile(filepath.Join(tmp, ".keep"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	empty, err = IsEmptyDir(tmp)
	if err != nil {
		t.Fatalf("IsEmptyDir() error = %v", err)
	}
	if empty {
		t.Errorf("IsEmptyDir(dir with dotfile) = true, want false")
	}

	if _, err := IsEmptyDir(filepath.Join(tmp, "missing")); err == nil {
		t.Errorf("IsEmptyDir(missing) error = nil, want error")
	}
}

func TestPathExists(t *testing.T) {
	tmp := t.TempDir()
	if !PathExists(tmp) {
		t.Errorf("PathExists(%q) = false", tmp)
	}
	if PathExists(filepath.Join(tmp, "nope")) {
		t.Errorf("PathExists(missing) = true")
	}
}

func TestRenderTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"root/README.md.template": {Data: []byte("# {{PROJECT_NAME}}\nuses {{PACKAGE_MANAGER}}\n")},
	}

	got, err := RenderTemplate(fsys, "root/README.md.template", testVariables().Pairs())
	if err != nil {
		t.Fatalf("RenderTemplate() error = %v", err)
	}
	if want := "# my-app\nuses pnpm\n"; got != want {
		t.Errorf("RenderTemplate() = %q, want %q", got, want)
	}

	if _, err := RenderTemplate(fsys, "missing.template", nil); err == nil {
		t.Errorf("RenderTemplate(missing) error = nil, want error")
	}
}

func TestWriteAndReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")

	in := map[string]any{"name": "web", "scripts": map[string]any{"dev": "vite dev"}}
	if err := WriteJSON(path, in); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if raw[len(raw)-1] != '\n' {
		t.Errorf("WriteJSON() output does not end with newline")
	}

	var out map[string]any
	if err := ReadJSON(path, &out); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	scripts, ok := out["scripts"].(map[string]any)
	if !ok || scripts["dev"] != "vite dev" {
		t.Errorf("ReadJSON() scripts = %v", out["scripts"])
	}
}

func TestMakeExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deploy.js")
	if err := WriteFile(path, []byte("#!/usr/bin/env node\n")); err != nil {
		t.Fatal(err)
	}
	if err := MakeExecutable(path); err != nil {
		t.Fatalf("MakeExecutable() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("mode = %v, want executable bits", info.Mode())
	}
}
