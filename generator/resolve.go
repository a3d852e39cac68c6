package generator

import (
	"errors"
	"fmt"
	"strings"

	"tscdk/project"
	"tscdk/template"
)

// ErrUnresolvedToken means a template still holds a placeholder after
// substitution, e.g. a manifest-only placeholder used in another file.
var ErrUnresolvedToken = errors.New("unresolved placeholder")

// File is a template after substitution. Path is slash separated and
// relative to the project root.
type File struct {
	Path    string
	Content string
}

type kind int

const (
	// plain files only get the name placeholders
	plain kind = iota
	// manifest is package.json: command and module placeholders plus cleanup
	manifest
	// ignore is .gitignore: the test config file name
	ignore
)

type resource struct {
	path string
	kind kind
}

// required templates, in output order.
var required = []resource{
	{"tsconfig.json", plain},
	{"README.md", plain},
	{"package.json", manifest},
	{"cdk.json", plain},
	{".gitignore", ignore},
	{".npmignore", plain},
	{"test/" + project.TokenProjectName + ".test.ts", plain},
	{"lib/" + project.TokenProjectName + "-stack.ts", plain},
	{"bin/" + project.TokenProjectName + ".ts", plain},
}

var scopes = map[kind][]string{
	plain: {
		project.TokenProjectName,
		project.TokenPascalName,
		project.TokenPackageManager,
	},
	manifest: {
		project.TokenProjectName,
		project.TokenPascalName,
		project.TokenPackageManager,
		project.TokenTestCommand,
		project.TokenLintCommand,
		project.TokenFormatCommand,
		project.TokenTestModule,
		project.TokenLintModule,
		project.TokenFormatModule,
	},
	ignore: {
		project.TokenProjectName,
		project.TokenPascalName,
		project.TokenPackageManager,
		project.TokenTestFile,
	},
}

// optional returns the config templates the choices ask for, in lint, test,
// formatter order. A "none" choice contributes nothing.
func optional(c project.Configuration) []resource {
	var out []resource
	for _, path := range []string{
		c.Linter.ConfigFile(),
		c.TestTool.ConfigFile(),
		c.Formatter.ConfigFile(),
	} {
		if path != "" {
			out = append(out, resource{path, plain})
		}
	}
	return out
}

// Resolve produces every file of the project described by c from catalog.
// Required files come first in a fixed order, then the optional config files.
// Any unreadable template aborts the whole resolution; no partial result is
// returned.
func Resolve(c project.Configuration, catalog template.Catalog) ([]File, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tokens := project.NewTokens(c)
	replacers := make(map[kind]*strings.Replacer, len(scopes))
	for k, keys := range scopes {
		replacers[k] = newReplacer(tokens, keys)
	}
	pathReplacer := strings.NewReplacer(project.TokenProjectName, tokens[project.TokenProjectName])

	resources := append(append([]resource{}, required...), optional(c)...)
	files := make([]File, 0, len(resources))
	for _, r := range resources {
		raw, err := catalog.Resource(r.path)
		if err != nil {
			return nil, err
		}

		content := replacers[r.kind].Replace(raw)
		if r.kind == manifest {
			content = cleanManifest(content)
		}
		if token := unresolved(content); token != "" {
			return nil, fmt.Errorf("%w: %s in %s", ErrUnresolvedToken, token, r.path)
		}

		files = append(files, File{
			Path:    pathReplacer.Replace(r.path),
			Content: content,
		})
	}
	return files, nil
}

// newReplacer substitutes all keys in one pass. Replacement text is never
// scanned again, so the order of keys does not matter.
func newReplacer(tokens project.Tokens, keys []string) *strings.Replacer {
	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, tokens[k])
	}
	return strings.NewReplacer(pairs...)
}

func unresolved(content string) string {
	for _, p := range project.Placeholders() {
		if strings.Contains(content, p) {
			return p
		}
	}
	return ""
}

// cleanManifest drops the lines left behind by empty placeholders: blank
// lines and lines holding only "" or "",.
func cleanManifest(content string) string {
	trailing := strings.HasSuffix(content, "\n")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	kept := lines[:0]
	for _, line := range lines {
		switch strings.TrimSpace(line) {
		case "", `""`, `"",`:
			continue
		}
		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	if trailing {
		out += "\n"
	}
	return out
}
