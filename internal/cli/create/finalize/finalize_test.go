package finalize

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/models"
	"github.com/idoru/create-cloudflare-monorepo/internal/cli/create/shared"
)

type fakeRunner struct {
	fail  map[string]bool
	calls []string
}

func (f *fakeRunner) Run(_ context.Context, cmd shared.Command) (shared.Result, error) {
	line := cmd.String()
	f.calls = append(f.calls, line)
	if f.fail[line] {
		return shared.Result{}, &shared.CommandError{Command: cmd, ExitCode: 1, Err: errors.New("exit status 1")}
	}
	return shared.Result{}, nil
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name         string
		pm           models.PackageManager
		fail         []string
		gitDir       bool
		wantCalls    []string
		wantWarnings int
		wantErr      bool
	}{
		{
			name:      "fresh directory with git",
			pm:        models.PNPM,
			wantCalls: []string{"git --version", "git init", "pnpm install", "pnpm prepare"},
		},
		{
			name:      "npm runs the hook as a script",
			pm:        models.NPM,
			wantCalls: []string{"git --version", "git init", "npm install", "npm run prepare"},
		},
		{
			name:      "existing repository is not re-initialized",
			pm:        models.Yarn,
			gitDir:    true,
			wantCalls: []string{"git --version", "yarn install", "yarn prepare"},
		},
		{
			name:      "git missing skips init and hook",
			pm:        models.PNPM,
			fail:      []string{"git --version"},
			wantCalls: []string{"git --version", "pnpm install"},
		},
		{
			name:         "hook failure is a warning",
			pm:           models.PNPM,
			fail:         []string{"pnpm prepare"},
			wantCalls:    []string{"git --version", "git init", "pnpm install", "pnpm prepare"},
			wantWarnings: 1,
		},
		{
			name:      "install failure is fatal",
			pm:        models.NPM,
			fail:      []string{"npm install"},
			wantCalls: []string{"git --version", "git init", "npm install"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.gitDir {
				if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
					t.Fatal(err)
				}
			}

			r := &fakeRunner{fail: map[string]bool{}}
			for _, f := range tt.fail {
				r.fail[f] = true
			}

			f := Finalizer{Runner: r, Out: io.Discard}
			warnings, err := f.Finalize(context.Background(), models.ProjectConfig{TargetDir: dir, PackageManager: tt.pm})

			if (err != nil) != tt.wantErr {
				t.Fatalf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d", warnings, tt.wantWarnings)
			}
			if tt.wantWarnings > 0 && warnings[0] != HookWarning {
				t.Errorf("warning = %q, want %q", warnings[0], HookWarning)
			}
			if got := strings.Join(r.calls, "|"); got != strings.Join(tt.wantCalls, "|") {
				t.Errorf("calls = %v, want %v", r.calls, tt.wantCalls)
			}
		})
	}
}

func TestIsGitRepository(t *testing.T) {
	dir := t.TempDir()
	if IsGitRepository(dir) {
		t.Errorf("IsGitRepository(empty) = true")
	}
	os.Mkdir(filepath.Join(dir, ".git"), 0755)
	if !IsGitRepository(dir) {
		t.Errorf("IsGitRepository(with .git) = false")
	}
}
