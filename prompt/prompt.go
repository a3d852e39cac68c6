// Package prompt asks the user for the project options that were not given
// on the command line.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"tscdk/project"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

var errNameRequired = errors.New("project name is required")

// Field selects the questions to ask.
type Field uint8

const (
	FieldName Field = 1 << iota
	FieldPackageManager
	FieldLinter
	FieldFormatter
	FieldTestTool

	FieldAll = FieldName | FieldPackageManager | FieldLinter | FieldFormatter | FieldTestTool
)

// Has reports whether f includes every field of other.
func (f Field) Has(other Field) bool {
	return f&other == other
}

// runForm is replaced in tests.
var runForm = func(f *huh.Form) error {
	return f.Run()
}

// Interactive reports whether stdin is a terminal a form can be shown on.
func Interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Ask asks the questions in fields, starting from the answers in c, and
// returns the completed configuration. Fields not asked keep their value.
// Each question runs as its own form.
func Ask(c project.Configuration, fields Field) (project.Configuration, error) {
	var groups []*huh.Group

	if fields.Has(FieldName) {
		groups = append(groups, huh.NewGroup(nameInput(&c.ProjectName)))
	}
	if fields.Has(FieldPackageManager) {
		groups = append(groups, huh.NewGroup(
			selectField("Package manager", project.PackageManagerOptions(), &c.PackageManager)))
	}
	if fields.Has(FieldLinter) {
		groups = append(groups, huh.NewGroup(
			selectField("Linter", project.LinterOptions(), &c.Linter)))
	}
	if fields.Has(FieldFormatter) {
		groups = append(groups, huh.NewGroup(
			selectField("Formatter", project.FormatterOptions(), &c.Formatter)))
	}
	if fields.Has(FieldTestTool) {
		groups = append(groups, huh.NewGroup(
			selectField("Test tool", project.TestToolOptions(), &c.TestTool)))
	}

	for _, g := range groups {
		form := huh.NewForm(g).WithAccessible(false)
		if err := runForm(form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return c, ErrCancelled
			}
			return c, fmt.Errorf("prompt error: %w", err)
		}
	}

	c.ProjectName = strings.TrimSpace(c.ProjectName)
	return c, nil
}

func nameInput(value *string) *huh.Input {
	inp := huh.NewInput().
		Title("Project name").
		Description("Used for the package name and the stack class").
		Value(value).
		Validate(validateName)
	if *value != "" {
		inp = inp.Placeholder(*value)
	}
	return inp
}

func validateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return errNameRequired
	}
	return nil
}

// selectField builds a select over opts. A zero *value starts on the first
// option.
func selectField[T ~string](title string, opts []T, value *T) *huh.Select[T] {
	if *value == "" && len(opts) > 0 {
		*value = opts[0]
	}
	return huh.NewSelect[T]().
		Title(title).
		Options(options(opts)...).
		Value(value)
}

func options[T ~string](opts []T) []huh.Option[T] {
	out := make([]huh.Option[T], len(opts))
	for i, o := range opts {
		out[i] = huh.NewOption(string(o), o)
	}
	return out
}
