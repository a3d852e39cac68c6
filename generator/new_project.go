package generator

import (
	"path/filepath"

	"github.com/spf13/afero"

	"tscdk/fs"
	"tscdk/project"
	"tscdk/template"
)

// Options controls how NewProject writes the resolved files.
type Options struct {
	// Force allows writing into a directory that already has files.
	Force bool
	// DryRun resolves everything but writes nothing.
	DryRun bool
}

// Result describes a generated project.
type Result struct {
	Root  string
	Files []File
	// Written lists the output paths written, in order. Empty on a dry run.
	Written []string
}

// NewProject resolves the project described by c and writes it under root.
// Nothing is written unless resolution succeeds for every file. A failing
// write stops the run; files written before it stay on disk.
func NewProject(appFs afero.Fs, root string, c project.Configuration, catalog template.Catalog, opts Options) (*Result, error) {
	files, err := Resolve(c, catalog)
	if err != nil {
		return nil, err
	}

	res := &Result{Root: root, Files: files}
	if opts.DryRun {
		return res, nil
	}

	if err := fs.PrepareTarget(appFs, root, opts.Force); err != nil {
		return nil, err
	}
	for _, f := range files {
		if err := fs.WriteFile(appFs, filepath.Join(root, filepath.FromSlash(f.Path)), f.Content); err != nil {
			return res, err
		}
		res.Written = append(res.Written, f.Path)
	}
	return res, nil
}
