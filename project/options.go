// Package project holds the choices that shape a generated project and the
// placeholder values derived from them.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOption is returned when a choice name is not one of the
// supported variants of its axis.
var ErrUnknownOption = errors.New("unknown option")

// PackageManager installs the generated project's dependencies.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
)

// Linter is the lint tool wired into the generated project.
type Linter string

const (
	LinterEsLint Linter = "eslint"
	LinterBiome  Linter = "biome"
	LinterNone   Linter = "none"
)

// Formatter is the code formatter wired into the generated project.
type Formatter string

const (
	FormatterPrettier Formatter = "prettier"
	FormatterBiome    Formatter = "biome"
	FormatterNone     Formatter = "none"
)

// TestTool is the test runner wired into the generated project.
type TestTool string

const (
	TestJest   TestTool = "jest"
	TestVitest TestTool = "vitest"
	TestNone   TestTool = "none"
)

// PackageManagerOptions returns the package managers in prompt order.
// The first entry is the default.
func PackageManagerOptions() []PackageManager {
	return []PackageManager{Npm, Yarn, Pnpm}
}

// LinterOptions returns the linters in prompt order.
func LinterOptions() []Linter {
	return []Linter{LinterEsLint, LinterBiome, LinterNone}
}

// FormatterOptions returns the formatters in prompt order.
func FormatterOptions() []Formatter {
	return []Formatter{FormatterPrettier, FormatterBiome, FormatterNone}
}

// TestToolOptions returns the test tools in prompt order.
func TestToolOptions() []TestTool {
	return []TestTool{TestJest, TestVitest, TestNone}
}

func (p PackageManager) String() string { return string(p) }
func (l Linter) String() string         { return string(l) }
func (f Formatter) String() string      { return string(f) }
func (t TestTool) String() string       { return string(t) }

// Executable is the command name of the package manager.
func (p PackageManager) Executable() string { return string(p) }

// ParsePackageManager parses a package manager name, case-insensitively.
func ParsePackageManager(s string) (PackageManager, error) {
	return parseOption("package manager", s, PackageManagerOptions())
}

// ParseLinter parses a linter name, case-insensitively.
func ParseLinter(s string) (Linter, error) {
	return parseOption("linter", s, LinterOptions())
}

// ParseFormatter parses a formatter name, case-insensitively.
func ParseFormatter(s string) (Formatter, error) {
	return parseOption("formatter", s, FormatterOptions())
}

// ParseTestTool parses a test tool name, case-insensitively.
func ParseTestTool(s string) (TestTool, error) {
	return parseOption("test tool", s, TestToolOptions())
}

func parseOption[T ~string](axis, s string, valid []T) (T, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, v := range valid {
		if string(v) == name {
			return v, nil
		}
	}
	names := make([]string, len(valid))
	for i, v := range valid {
		names[i] = string(v)
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q (valid: %s)", ErrUnknownOption, axis, s, strings.Join(names, ", "))
}

func isValid[T comparable](v T, valid []T) bool {
	for _, o := range valid {
		if o == v {
			return true
		}
	}
	return false
}
