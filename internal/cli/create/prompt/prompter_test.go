package prompt

import (
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestHuhPrompter_Input(t *testing.T) {
	orig := runInputPrompt
	t.Cleanup(func() { runInputPrompt = orig })

	var gotTitle string
	runInputPrompt = func(title string, validate func(string) error, value *string) error {
		gotTitle = title
		if *value != "initial" {
			t.Errorf("initial value = %q, want initial", *value)
		}
		*value = "typed"
		return nil
	}

	got, err := HuhPrompter{}.Input("Project name:", "initial", nil)
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if got != "typed" || gotTitle != "Project name:" {
		t.Errorf("Input() = %q (title %q), want typed", got, gotTitle)
	}
}

func TestHuhPrompter_AbortMapsToCancelled(t *testing.T) {
	origInput, origConfirm, origSelect := runInputPrompt, runConfirmPrompt, runSelectPrompt
	t.Cleanup(func() {
		runInputPrompt, runConfirmPrompt, runSelectPrompt = origInput, origConfirm, origSelect
	})

	runInputPrompt = func(string, func(string) error, *string) error { return huh.ErrUserAborted }
	runConfirmPrompt = func(string, *bool) error { return huh.ErrUserAborted }
	runSelectPrompt = func(string, []huh.Option[string], *string) error { return huh.ErrUserAborted }

	p := HuhPrompter{}
	if _, err := p.Input("x", "", nil); err != ErrCancelled {
		t.Errorf("Input() error = %v, want ErrCancelled", err)
	}
	if _, err := p.Confirm("x", true); err != ErrCancelled {
		t.Errorf("Confirm() error = %v, want ErrCancelled", err)
	}
	if _, err := p.Select("x", nil, ""); err != ErrCancelled {
		t.Errorf("Select() error = %v, want ErrCancelled", err)
	}
}

func TestHuhPrompter_OtherErrorsWrapped(t *testing.T) {
	orig := runConfirmPrompt
	t.Cleanup(func() { runConfirmPrompt = orig })

	runConfirmPrompt = func(string, *bool) error { return errors.New("tty gone") }

	_, err := HuhPrompter{}.Confirm("x", false)
	if err == nil || err == ErrCancelled {
		t.Fatalf("Confirm() error = %v, want wrapped failure", err)
	}
}

func TestHuhPrompter_SelectPassesOptions(t *testing.T) {
	orig := runSelectPrompt
	t.Cleanup(func() { runSelectPrompt = orig })

	var count int
	runSelectPrompt = func(_ string, options []huh.Option[string], value *string) error {
		count = len(options)
		*value = options[1].Value
		return nil
	}

	got, err := HuhPrompter{}.Select("pm", []SelectOption{
		{Label: "pnpm (recommended)", Value: "pnpm"},
		{Label: "npm", Value: "npm"},
	}, "pnpm")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != "npm" || count != 2 {
		t.Errorf("Select() = %q with %d options, want npm with 2", got, count)
	}
}

func TestDefaultsPrompter(t *testing.T) {
	p := DefaultsPrompter{}

	if v, _ := p.Confirm("x", true); !v {
		t.Errorf("Confirm() = false, want initial true")
	}
	if v, _ := p.Select("x", nil, "yarn"); v != "yarn" {
		t.Errorf("Select() = %q, want initial yarn", v)
	}
	if _, err := p.Input("Project name:", "x", nil); err == nil {
		t.Errorf("Input() error = nil, want error")
	}
}

func TestNewPrompter(t *testing.T) {
	orig := IsTerminal
	t.Cleanup(func() { IsTerminal = orig })

	IsTerminal = func(*os.File) bool { return false }
	if _, ok := NewPrompter().(DefaultsPrompter); !ok {
		t.Errorf("NewPrompter() without terminal is not DefaultsPrompter")
	}

	IsTerminal = func(*os.File) bool { return true }
	if _, ok := NewPrompter().(HuhPrompter); !ok {
		t.Errorf("NewPrompter() with terminal is not HuhPrompter")
	}
}
