package prompt

import (
	stderrors "errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pixie-sh/errors-go"
)

// ErrCancelled is returned when the user aborts a prompt or declines to overwrite
var ErrCancelled = stderrors.New("cancelled")

// SelectOption represents a single option in a selection menu
type SelectOption struct {
	Label string // Display text
	Value string // Return value
}

// Prompter asks the user questions
type Prompter interface {
	Input(title, initial string, validate func(string) error) (string, error)
	Confirm(title string, initial bool) (bool, error)
	Select(title string, options []SelectOption, initial string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewPrompter returns the interactive prompter when stdin is a terminal,
// otherwise one that answers with defaults.
func NewPrompter() Prompter {
	if IsTerminal(os.Stdin) {
		return HuhPrompter{}
	}
	return DefaultsPrompter{}
}

var runInputPrompt = func(title string, validate func(string) error, value *string) error {
	field := huh.NewInput().
		Title(title).
		Value(value)
	if validate != nil {
		field.Validate(validate)
	}
	return field.Run()
}

var runConfirmPrompt = func(title string, value *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value).
		Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], value *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(value).
		Run()
}

// HuhPrompter implements Prompter with the huh TUI library
type HuhPrompter struct{}

func (HuhPrompter) Input(title, initial string, validate func(string) error) (string, error) {
	value := initial
	if err := runInputPrompt(title, validate, &value); err != nil {
		return "", promptError(err, "prompt input")
	}
	return value, nil
}

func (HuhPrompter) Confirm(title string, initial bool) (bool, error) {
	value := initial
	if err := runConfirmPrompt(title, &value); err != nil {
		return false, promptError(err, "prompt confirm")
	}
	return value, nil
}

func (HuhPrompter) Select(title string, options []SelectOption, initial string) (string, error) {
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	value := initial
	if err := runSelectPrompt(title, huhOptions, &value); err != nil {
		return "", promptError(err, "prompt select")
	}
	return value, nil
}

func promptError(err error, action string) error {
	if stderrors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return errors.Wrap(err, "failed to %s", action)
}

// DefaultsPrompter answers every question with its initial value.
// It is used when there is no terminal to prompt on.
type DefaultsPrompter struct{}

func (DefaultsPrompter) Input(title, _ string, _ func(string) error) (string, error) {
	return "", errors.New("cannot prompt for %q without a terminal; pass it as an argument", title)
}

func (DefaultsPrompter) Confirm(_ string, initial bool) (bool, error) {
	return initial, nil
}

func (DefaultsPrompter) Select(_ string, _ []SelectOption, initial string) (string, error) {
	return initial, nil
}
