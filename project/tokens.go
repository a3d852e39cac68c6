package project

// Placeholders recognized inside template paths and contents.
const (
	TokenProjectName    = "%project-name%"
	TokenPascalName     = "%ProjectName%"
	TokenPackageManager = "%package_manager%"
	TokenTestCommand    = "%test_command%"
	TokenLintCommand    = "%lint_command%"
	TokenFormatCommand  = "%format_command%"
	TokenTestModule     = "%test_module%"
	TokenLintModule     = "%lint_module%"
	TokenFormatModule   = "%format_module%"
	TokenTestFile       = "%test_file%"
)

// Manifest fragments are written between the quotes of a package.json
// line, so a fragment carries the inner `": "` of its key/value pair.
const (
	biomeModule = `@biomejs/biome": "^1.9.4`
)

// Tokens maps every placeholder to its replacement for one Configuration.
// Replacement values never contain a placeholder.
type Tokens map[string]string

// NewTokens resolves every placeholder for c. The result is total: every
// known placeholder has an entry, possibly empty.
func NewTokens(c Configuration) Tokens {
	return Tokens{
		TokenProjectName:    c.KebabName(),
		TokenPascalName:     c.PascalName(),
		TokenPackageManager: c.PackageManager.Executable(),
		TokenTestCommand:    c.TestTool.Command(),
		TokenLintCommand:    c.Linter.Command(),
		TokenFormatCommand:  c.Formatter.Command(),
		TokenTestModule:     c.TestTool.Module(),
		TokenLintModule:     c.Linter.Module(),
		TokenFormatModule:   FormatModule(c.Formatter, c.Linter),
		TokenTestFile:       c.TestTool.ConfigFile(),
	}
}

// Placeholders lists every placeholder NewTokens resolves.
func Placeholders() []string {
	return []string{
		TokenProjectName,
		TokenPascalName,
		TokenPackageManager,
		TokenTestCommand,
		TokenLintCommand,
		TokenFormatCommand,
		TokenTestModule,
		TokenLintModule,
		TokenFormatModule,
		TokenTestFile,
	}
}

// Command is the package.json "test" script entry.
func (t TestTool) Command() string {
	switch t {
	case TestJest:
		return `test": "jest`
	case TestVitest:
		return `test": "vitest --run`
	}
	return ""
}

// Module is the devDependencies entry of the test runner.
func (t TestTool) Module() string {
	switch t {
	case TestJest:
		return `@types/jest": "^29.5.14",` + "\n" +
			`    "jest": "^29.7.0",` + "\n" +
			`    "ts-jest": "^29.2.5`
	case TestVitest:
		return `vitest": "^3.0.4`
	}
	return ""
}

// ConfigFile is the logical path of the test runner config template.
func (t TestTool) ConfigFile() string {
	switch t {
	case TestJest:
		return "jest.config.js"
	case TestVitest:
		return "vitest.config.mjs"
	}
	return ""
}

// Command is the package.json "lint" script entry.
func (l Linter) Command() string {
	switch l {
	case LinterEsLint:
		return `lint": "eslint --config eslint.config.mjs`
	case LinterBiome:
		return `lint": "biome lint`
	}
	return ""
}

// Module is the devDependencies entry of the linter.
func (l Linter) Module() string {
	switch l {
	case LinterEsLint:
		return `@eslint/js": "^9.19.0",` + "\n" +
			`    "typescript-eslint": "^8.14.0",` + "\n" +
			`    "eslint-cdk-plugin": "^1.1.1`
	case LinterBiome:
		return biomeModule
	}
	return ""
}

// ConfigFile is the logical path of the linter config template. Biome's
// formatter settings share biome.json.
func (l Linter) ConfigFile() string {
	switch l {
	case LinterEsLint:
		return "eslint.config.mjs"
	case LinterBiome:
		return "biome.json"
	}
	return ""
}

// Command is the package.json "format" script entry.
func (f Formatter) Command() string {
	switch f {
	case FormatterPrettier:
		return `format": "prettier --write '**/*.ts' --ignore-path .prettierignore`
	case FormatterBiome:
		return `format": "biome format --write`
	}
	return ""
}

// ConfigFile is the logical path of the formatter config template. Only
// Prettier has one.
func (f Formatter) ConfigFile() string {
	if f == FormatterPrettier {
		return ".prettierrc"
	}
	return ""
}

// FormatModule is the devDependencies entry of the formatter. It is the one
// rule that looks at two axes: Biome as formatter adds the Biome package
// unless the linter already did.
func FormatModule(f Formatter, l Linter) string {
	switch f {
	case FormatterPrettier:
		return `prettier": "^3.4.2`
	case FormatterBiome:
		if l == LinterBiome {
			return ""
		}
		return biomeModule
	}
	return ""
}
