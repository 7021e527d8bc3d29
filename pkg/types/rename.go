package types

import (
	"errors"
	"fmt"
)

// FlagSettings holds the flag token and where it goes. It does not change
// during a batch.
type FlagSettings struct {
	Flag     string   `json:"flag" yaml:"flag"`
	Position Position `json:"position" yaml:"position"`
}

// RenameRequest is one file awaiting renaming. An empty ReplacementBase
// keeps the file's original base name.
type RenameRequest struct {
	SourcePath      string `json:"source_path"`
	ReplacementBase string `json:"replacement_base,omitempty"`
}

// OutcomeKind classifies the result of processing one RenameRequest
type OutcomeKind int

const (
	Renamed OutcomeKind = iota
	NotFound
	SkippedDirectory
	RenameFailed
	TargetExists
)

func (k OutcomeKind) String() string {
	switch k {
	case Renamed:
		return "renamed"
	case NotFound:
		return "not_found"
	case SkippedDirectory:
		return "skipped_directory"
	case RenameFailed:
		return "rename_failed"
	case TargetExists:
		return "target_exists"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome holds the result of processing a single RenameRequest
type Outcome struct {
	Kind       OutcomeKind `json:"kind"`
	SourcePath string      `json:"source_path"`
	TargetPath string      `json:"target_path,omitempty"`
	Err        error       `json:"error,omitempty"`
}

// IsError reports whether the outcome belongs on the error channel.
func (o Outcome) IsError() bool {
	return o.Kind != Renamed
}

// Line renders the status line printed for this outcome.
func (o Outcome) Line() string {
	switch o.Kind {
	case Renamed:
		return fmt.Sprintf("Renamed: %s -> %s", o.SourcePath, o.TargetPath)
	case NotFound:
		return fmt.Sprintf("Error: File not found -> %s", o.SourcePath)
	case SkippedDirectory:
		return fmt.Sprintf("Skipping directory: %s (Provide a file, not a folder)", o.SourcePath)
	case TargetExists:
		return fmt.Sprintf("Error: Target already exists -> %s (from %s)", o.TargetPath, o.SourcePath)
	default:
		cause := "unknown error"
		if root := rootCause(o.Err); root != nil {
			cause = root.Error()
		}
		if o.TargetPath == "" {
			return fmt.Sprintf("Error renaming file: %s: %s", o.SourcePath, cause)
		}
		return fmt.Sprintf("Error renaming file: %s -> %s: %s", o.SourcePath, o.TargetPath, cause)
	}
}

// Summary counts outcomes by kind.
type Summary struct {
	Renamed int
	Skipped int
	Failed  int
}

// Summarize tallies a batch's outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Kind {
		case Renamed:
			s.Renamed++
		case SkippedDirectory:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}

// rootCause returns the innermost error of err's chain.
func rootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}
