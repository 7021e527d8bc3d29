package rename

import (
	"io/fs"
	"syscall"

	"flagren/internal/config"
	"flagren/internal/errors"
	"flagren/internal/log"
	"flagren/pkg/types"

	"github.com/gobwas/glob"
	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Engine renames files by inserting a flag into their names and lists the
// candidate files of a folder. It never writes to the terminal; results are
// returned as values and diagnostics go to the debug log.
type Engine struct {
	fs        afero.Fs
	collision string
	include   []glob.Glob
	exclude   []glob.Glob
}

// New creates an Engine on the OS filesystem with the fail collision policy
func New() *Engine {
	return &Engine{
		fs:        afero.NewOsFs(),
		collision: config.CollisionFail,
	}
}

// NewWithConfig creates an Engine using the collision policy and folder
// filters from cfg.
func NewWithConfig(cfg *config.Config) (*Engine, error) {
	e := New()
	if err := e.SetConfig(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// SetConfig applies cfg's collision policy and folder filters.
func (e *Engine) SetConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	include, err := compileAll(cfg.Folder.Include)
	if err != nil {
		return err
	}
	exclude, err := compileAll(cfg.Folder.Exclude)
	if err != nil {
		return err
	}
	e.collision = cfg.Settings.Collision
	e.include = include
	e.exclude = exclude
	return nil
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("invalid folder pattern", p, errors.InvalidConfig, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// SetFs replaces the filesystem the engine operates on.
func (e *Engine) SetFs(fs afero.Fs) {
	e.fs = fs
}

// Collision returns the active collision policy.
func (e *Engine) Collision() string {
	return e.collision
}

// RenameAll processes requests strictly in order and returns one outcome
// per request. A failing entry never stops or undoes the others.
func (e *Engine) RenameAll(requests []types.RenameRequest, settings types.FlagSettings) []types.Outcome {
	logger := log.LogWithFields(
		log.F("batch", uuid.NewString()),
		log.F("flag", settings.Flag),
		log.F("position", settings.Position.String()),
		log.F("collision", e.collision),
	)
	logger.Debugf("Renaming %d files", len(requests))

	outcomes := make([]types.Outcome, 0, len(requests))
	for _, req := range requests {
		outcome := e.renameOne(req, settings)
		if outcome.IsError() {
			logger.WithError(outcome.Err).Debugf("%s: %s", outcome.Kind, req.SourcePath)
		} else {
			logger.Debugf("Renamed %s -> %s", outcome.SourcePath, outcome.TargetPath)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

func (e *Engine) renameOne(req types.RenameRequest, settings types.FlagSettings) types.Outcome {
	src := req.SourcePath
	outcome := types.Outcome{SourcePath: src}

	info, err := e.fs.Stat(src)
	if err != nil {
		if isNotExist(err) {
			outcome.Kind = types.NotFound
			outcome.Err = errors.NewFileError("file not found", src, errors.FileNotFound, err)
			return outcome
		}
		outcome.Kind = types.RenameFailed
		outcome.Err = errors.NewFileError("cannot stat file", src, errors.RenameFailed, err)
		return outcome
	}
	if info.IsDir() {
		outcome.Kind = types.SkippedDirectory
		outcome.Err = errors.NewFileError("source is a directory", src, errors.IsDirectory, nil)
		return outcome
	}

	target := TargetPath(src, req.ReplacementBase, settings)
	outcome.TargetPath = target

	// A target renamed into place earlier in the batch is already on disk
	if e.collision == config.CollisionFail {
		if _, err := e.fs.Stat(target); err == nil {
			outcome.Kind = types.TargetExists
			outcome.Err = errors.NewFileError("target already exists", target, errors.TargetExists, nil)
			return outcome
		}
	}

	if err := e.fs.Rename(src, target); err != nil {
		outcome.Kind = types.RenameFailed
		outcome.Err = errors.NewFileError("rename failed", src, errors.RenameFailed, err)
		return outcome
	}

	outcome.Kind = types.Renamed
	return outcome
}

// isNotExist reports whether a Stat error means nothing lives at the path.
// A path running through a regular file fails with ENOTDIR rather than
// ENOENT but names no entry either.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
