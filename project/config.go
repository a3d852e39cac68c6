package project

import (
	"errors"
	"fmt"

	"tscdk/naming"
)

// ErrInvalidConfig is returned by Configuration.Validate.
var ErrInvalidConfig = errors.New("invalid project configuration")

// Configuration is the full set of choices for one generated project.
// It is built once from user input and only read afterwards.
type Configuration struct {
	ProjectName    string
	PackageManager PackageManager
	Linter         Linter
	Formatter      Formatter
	TestTool       TestTool
}

// Validate checks that every axis holds a known variant and that the
// project name yields a non-empty kebab-case name.
func (c Configuration) Validate() error {
	if naming.ToKebab(c.ProjectName) == "" {
		return fmt.Errorf("%w: project name %q has no letters or digits", ErrInvalidConfig, c.ProjectName)
	}
	if !isValid(c.PackageManager, PackageManagerOptions()) {
		return fmt.Errorf("%w: package manager %q", ErrInvalidConfig, c.PackageManager)
	}
	if !isValid(c.Linter, LinterOptions()) {
		return fmt.Errorf("%w: linter %q", ErrInvalidConfig, c.Linter)
	}
	if !isValid(c.Formatter, FormatterOptions()) {
		return fmt.Errorf("%w: formatter %q", ErrInvalidConfig, c.Formatter)
	}
	if !isValid(c.TestTool, TestToolOptions()) {
		return fmt.Errorf("%w: test tool %q", ErrInvalidConfig, c.TestTool)
	}
	return nil
}

// KebabName is the project name in kebab-case, used for file names and
// the package name.
func (c Configuration) KebabName() string {
	return naming.ToKebab(c.ProjectName)
}

// PascalName is the project name in PascalCase, used for class names.
func (c Configuration) PascalName() string {
	_, pascal := naming.Identifier(c.ProjectName)
	return pascal
}
