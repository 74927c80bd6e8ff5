// Package content supplies the corpus of authored phase modules. The
// shipping corpus is embedded in the binary, so the serving path does
// no file or network I/O; a filesystem loader exists solely for the
// content-authoring preview workflow.
package content

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/curricula/internal/errors"
	"github.com/conneroisu/curricula/internal/types"
)

//go:embed corpus/*.yaml
var corpusFS embed.FS

// Decode parses one phase module document. The module name (filename
// stem) becomes the fallback id and title for bare-array modules.
func Decode(name string, data []byte) (types.Module, error) {
	var module types.Module
	if err := yaml.Unmarshal(data, &module); err != nil {
		return types.Module{}, errors.NewContentError(
			errors.ErrCodeMalformedModule,
			"cannot decode module: "+err.Error(),
		).WithModule(name)
	}
	module.Name = name

	return module, nil
}

// Embedded returns the shipping corpus in deterministic filename
// order. That order is the canonical curriculum sequence.
func Embedded() ([]types.Module, error) {
	return loadFS(corpusFS, "corpus")
}

// LoadDir reads phase modules from a content directory, for the
// preview workflow. Only .yaml and .yml files are considered, in
// sorted filename order.
func LoadDir(dir string) ([]types.Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIOError(
			errors.ErrCodeContentDir,
			"cannot read content directory "+dir,
			err,
		)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isModuleFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	modules := make([]types.Module, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.NewIOError(
				errors.ErrCodeContentDir,
				"cannot read module file "+name,
				err,
			)
		}
		module, err := Decode(moduleName(name), data)
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}

	return modules, nil
}

func loadFS(fsys fs.FS, root string) ([]types.Module, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, errors.NewInternalError(
			errors.ErrCodeInternalError,
			"embedded corpus unreadable",
			err,
		)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	modules := make([]types.Module, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, root+"/"+name)
		if err != nil {
			return nil, errors.NewInternalError(
				errors.ErrCodeInternalError,
				"embedded module unreadable: "+name,
				err,
			)
		}
		module, err := Decode(moduleName(name), data)
		if err != nil {
			return nil, err
		}
		modules = append(modules, module)
	}

	return modules, nil
}

func isModuleFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))

	return ext == ".yaml" || ext == ".yml"
}

func moduleName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
