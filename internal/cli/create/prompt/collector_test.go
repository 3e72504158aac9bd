package prompt

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/settings"
)

// fakePrompter answers from queues and records every question asked
type fakePrompter struct {
	inputs   []string
	confirms []bool
	selects  []string
	err      error // returned by the first question when set

	asked []string
}

func (f *fakePrompter) Input(title, _ string, validate func(string) error) (string, error) {
	f.asked = append(f.asked, "input:"+title)
	if f.err != nil {
		return "", f.err
	}
	v := f.inputs[0]
	f.inputs = f.inputs[1:]
	if validate != nil {
		if err := validate(v); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (f *fakePrompter) Confirm(title string, _ bool) (bool, error) {
	f.asked = append(f.asked, "confirm:"+title)
	if f.err != nil {
		return false, f.err
	}
	v := f.confirms[0]
	f.confirms = f.confirms[1:]
	return v, nil
}

func (f *fakePrompter) Select(title string, _ []SelectOption, _ string) (string, error) {
	f.asked = append(f.asked, "select:"+title)
	if f.err != nil {
		return "", f.err
	}
	v := f.selects[0]
	f.selects = f.selects[1:]
	return v, nil
}

func newCollector(p Prompter, workDir string) Collector {
	return Collector{
		Prompter: p,
		Out:      io.Discard,
		WorkDir:  workDir,
		Defaults: settings.DefaultConfig().Defaults,
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr string
	}{
		{"my-app", ""},
		{"my_app", ""},
		{"app2", ""},
		{"-", ""},
		{"a", ""},

		// Invalid cases
		{"", "required"},
		{"MyApp", "lowercase"},
		{"my app", "lowercase"},
		{"my.app", "lowercase"},
		{"my/app", "lowercase"},
		{"café", "lowercase"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateProjectName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidateProjectName(%q) = %v, want error containing %q", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestCollect_PromptOrder(t *testing.T) {
	work := t.TempDir()
	p := &fakePrompter{
		inputs:   []string{"my-app"},
		confirms: []bool{false},
		selects:  []string{"yarn", "zinc"},
	}

	cfg, err := newCollector(p, work).Collect("")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	wantAsked := []string{
		"input:Project name:",
		"confirm:Use TypeScript?",
		"select:Select package manager:",
		"select:Select UI base color:",
	}
	if strings.Join(p.asked, "|") != strings.Join(wantAsked, "|") {
		t.Errorf("asked = %v, want %v", p.asked, wantAsked)
	}

	want := models.ProjectConfig{
		Name:           "my-app",
		TargetDir:      filepath.Join(work, "my-app"),
		UseTypeScript:  false,
		PackageManager: models.Yarn,
		BaseColor:      models.Zinc,
	}
	if cfg != want {
		t.Errorf("Collect() = %+v, want %+v", cfg, want)
	}
}

func TestCollect_NameArgumentSkipsNamePrompt(t *testing.T) {
	p := &fakePrompter{confirms: []bool{true}, selects: []string{"pnpm", "neutral"}}

	cfg, err := newCollector(p, t.TempDir()).Collect("from-arg")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if cfg.Name != "from-arg" {
		t.Errorf("Name = %q, want from-arg", cfg.Name)
	}
	for _, q := range p.asked {
		if strings.HasPrefix(q, "input:") {
			t.Errorf("unexpected name prompt: %s", q)
		}
	}
}

func TestCollect_InvalidNameArgument(t *testing.T) {
	p := &fakePrompter{}
	if _, err := newCollector(p, t.TempDir()).Collect("Bad Name"); err == nil {
		t.Fatal("Collect(Bad Name) error = nil, want validation error")
	}
	if len(p.asked) != 0 {
		t.Errorf("asked = %v, want no prompts after an invalid argument", p.asked)
	}
}

func TestCollect_CancelFirstPrompt(t *testing.T) {
	work := t.TempDir()
	p := &fakePrompter{err: ErrCancelled}

	_, err := newCollector(p, work).Collect("")
	if err != ErrCancelled {
		t.Fatalf("Collect() error = %v, want ErrCancelled", err)
	}
	entries, _ := os.ReadDir(work)
	if len(entries) != 0 {
		t.Errorf("work dir has %d entries, want nothing created", len(entries))
	}
}

func TestCollect_OverwritePrompt(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, dir string)
		overwrite  bool
		wantPrompt bool
		wantErr    error
	}{
		{
			name:       "missing directory",
			setup:      func(t *testing.T, dir string) {},
			wantPrompt: false,
		},
		{
			name: "empty directory",
			setup: func(t *testing.T, dir string) {
				if err := os.Mkdir(dir, 0755); err != nil {
					t.Fatal(err)
				}
			},
			wantPrompt: false,
		},
		{
			name: "non-empty directory accepted",
			setup: func(t *testing.T, dir string) {
				writeEntry(t, dir)
			},
			overwrite:  true,
			wantPrompt: true,
		},
		{
			name: "non-empty directory declined",
			setup: func(t *testing.T, dir string) {
				writeEntry(t, dir)
			},
			overwrite:  false,
			wantPrompt: true,
			wantErr:    ErrCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			work := t.TempDir()
			tt.setup(t, filepath.Join(work, "my-app"))

			p := &fakePrompter{
				confirms: []bool{true, tt.overwrite},
				selects:  []string{"npm", "slate"},
			}

			_, err := newCollector(p, work).Collect("my-app")
			if err != tt.wantErr {
				t.Fatalf("Collect() error = %v, want %v", err, tt.wantErr)
			}

			prompted := false
			for _, q := range p.asked {
				if strings.Contains(q, "Overwrite?") {
					prompted = true
				}
			}
			if prompted != tt.wantPrompt {
				t.Errorf("overwrite prompted = %v, want %v", prompted, tt.wantPrompt)
			}
		})
	}
}

func TestCollect_DefaultsPrompter(t *testing.T) {
	c := newCollector(DefaultsPrompter{}, t.TempDir())
	c.Defaults.PackageManager = "npm"
	c.Defaults.BaseColor = "stone"

	cfg, err := c.Collect("headless")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if cfg.PackageManager != models.NPM || cfg.BaseColor != models.Stone || !cfg.UseTypeScript {
		t.Errorf("Collect() = %+v, want config defaults", cfg)
	}

	if _, err := c.Collect(""); err == nil {
		t.Errorf("Collect(\"\") without a terminal error = nil, want error")
	}
}

func TestCollect_DefaultsPrompterDeclinesOverwrite(t *testing.T) {
	work := t.TempDir()
	writeEntry(t, filepath.Join(work, "taken"))

	_, err := newCollector(DefaultsPrompter{}, work).Collect("taken")
	if err != ErrCancelled {
		t.Errorf("Collect() error = %v, want ErrCancelled", err)
	}
}

func writeEntry(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}
