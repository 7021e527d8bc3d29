package rename

import (
	"os"
	"path/filepath"

	"flagren/internal/errors"
	"flagren/internal/log"
	"flagren/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// Enumerate lists the regular files directly inside folder, sorted by name.
// Subdirectories and special files are left out, as are names rejected by
// the include/exclude filters. An empty result is not an error.
func (e *Engine) Enumerate(folder string) ([]types.FileEntry, error) {
	info, err := e.fs.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, errors.NewFileError("folder not found", folder, errors.FolderNotFound, err)
	}

	infos, err := afero.ReadDir(e.fs, folder)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading folder %s", folder)
	}

	entries := make([]types.FileEntry, 0, len(infos))
	for _, fi := range infos {
		path := filepath.Join(folder, fi.Name())

		// Follow symlinks so a link to a regular file counts as one
		if fi.Mode()&os.ModeSymlink != 0 {
			resolved, err := e.fs.Stat(path)
			if err != nil {
				log.Debugf("Skipping dangling link %s", path)
				continue
			}
			fi = resolved
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		if !e.matches(filepath.Base(path)) {
			log.Debugf("Filtered out %s", path)
			continue
		}

		base, _ := SplitName(filepath.Base(path))
		entries = append(entries, types.FileEntry{
			Path:     path,
			BaseName: base,
			Size:     fi.Size(),
		})
		log.Debugf("Found %s (%s)", path, humanize.Bytes(uint64(fi.Size())))
	}

	return entries, nil
}

func (e *Engine) matches(name string) bool {
	for _, g := range e.exclude {
		if g.Match(name) {
			return false
		}
	}
	if len(e.include) == 0 {
		return true
	}
	for _, g := range e.include {
		if g.Match(name) {
			return true
		}
	}
	return false
}
