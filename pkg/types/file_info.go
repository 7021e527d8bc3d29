package types

import (
	"path/filepath"
	"strings"
)

// FileEntry is a regular file discovered while enumerating a folder.
type FileEntry struct {
	Path     string `json:"path"`
	BaseName string `json:"base_name"`
	Size     int64  `json:"size"`
}

// Name returns the file name including extension
func (f FileEntry) Name() string {
	return filepath.Base(f.Path)
}

// Ext returns the extension of the entry, including the leading dot
func (f FileEntry) Ext() string {
	return strings.TrimPrefix(f.Name(), f.BaseName)
}
