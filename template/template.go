package template

import (
	"embed"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/spf13/afero"

	"tscdk/fs"
)

var (
	// ErrTemplateMissing means a template could not be read from a catalog.
	ErrTemplateMissing = errors.New("template missing")

	// ErrEncoding means a template's bytes are not valid UTF-8 text.
	ErrEncoding = errors.New("template is not valid UTF-8")
)

//go:embed all:assets
var assets embed.FS

// Catalog looks up template text by logical path, the path as stored before
// placeholder substitution (e.g. "lib/%project-name%-stack.ts").
type Catalog interface {
	Resource(path string) (string, error)
}

// AferoCatalog serves templates from an afero filesystem. The filesystem
// root is the template root.
type AferoCatalog struct {
	fs afero.Fs
}

// NewFsCatalog returns a catalog rooted at the top of fs.
func NewFsCatalog(fs afero.Fs) *AferoCatalog {
	return &AferoCatalog{fs: fs}
}

// NewDirCatalog returns a catalog over the templates stored in dir on base.
func NewDirCatalog(base afero.Fs, dir string) *AferoCatalog {
	return NewFsCatalog(afero.NewBasePathFs(base, dir))
}

// Embedded returns the catalog compiled into the binary.
func Embedded() *AferoCatalog {
	sub, err := iofs.Sub(assets, "assets")
	if err != nil {
		// the embed directive guarantees the directory
		panic(err)
	}
	return NewFsCatalog(afero.FromIOFS{FS: sub})
}

// Resource returns the template stored at path.
func (c *AferoCatalog) Resource(path string) (string, error) {
	content, err := fs.ReadFile(c.fs, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateMissing, path, err)
	}
	if !utf8.ValidString(content) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, path)
	}
	return content, nil
}

// List returns the logical paths of every template in the catalog, sorted
// and slash separated.
func (c *AferoCatalog) List() ([]string, error) {
	var paths []string
	err := afero.Walk(c.fs, ".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		paths = append(paths, filepath.ToSlash(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}
