package rename

import (
	"flagren/internal/config"
	"flagren/pkg/types"
)

// Renamer defines the engine operations the shell and commands depend on.
// This allows for dependency injection in tests.
type Renamer interface {
	// SetConfig applies collision policy and folder filters
	SetConfig(cfg *config.Config) error

	// RenameAll renames every request in order and reports each outcome
	RenameAll(requests []types.RenameRequest, settings types.FlagSettings) []types.Outcome

	// Enumerate lists the regular files directly inside a folder
	Enumerate(folder string) ([]types.FileEntry, error)
}

// Ensure Engine implements the Renamer interface
var _ Renamer = (*Engine)(nil)
