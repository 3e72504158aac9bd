package shared

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pixie-sh/errors-go"
)

// RenderTemplate reads a template from fsys and substitutes the known variables
func RenderTemplate(fsys fs.FS, templateName string, pairs []Variable) (string, error) {
	content, err := fs.ReadFile(fsys, templateName)
	if err != nil {
		return "", errors.Wrap(err, "failed to read template: %s", templateName)
	}

	return ReplaceVariables(string(content), pairs), nil
}

// WriteFile writes content to a file, creating parent directories as needed.
// Existing files are overwritten.
func WriteFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create directory: %s", dir)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return errors.Wrap(err, "failed to write file: %s", path)
	}

	return nil
}

// EnsureDir creates dir and any missing parents
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create directory: %s", dir)
	}
	return nil
}

// CreateDirStructure creates a list of directories under basePath
func CreateDirStructure(basePath string, dirs []string) error {
	for _, dir := range dirs {
		if err := EnsureDir(filepath.Join(basePath, dir)); err != nil {
			return err
		}
	}
	return nil
}

// MakeExecutable marks a generated script as executable
func MakeExecutable(path string) error {
	if err := os.Chmod(path, 0755); err != nil {
		return errors.Wrap(err, "failed to chmod: %s", path)
	}
	return nil
}

// PathExists checks if a file or directory exists
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsEmptyDir reports whether dir has no entries
func IsEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, errors.Wrap(err, "failed to read directory: %s", dir)
	}
	return len(entries) == 0, nil
}

// WriteJSON writes v as two-space indented JSON followed by a newline
func WriteJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode json: %s", path)
	}
	return WriteFile(path, buf.Bytes())
}

// ReadJSON decodes the JSON file at path into v
func ReadJSON(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read file: %s", path)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return errors.Wrap(err, "failed to parse json: %s", path)
	}
	return nil
}
