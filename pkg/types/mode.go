package types

import (
	"fmt"
	"strings"
)

// Mode is the top-level menu choice of the interactive shell
type Mode int

const (
	// ModeFiles renames an explicit list of user-named files
	ModeFiles Mode = 1
	// ModeFolder renames every regular file in a directory
	ModeFolder Mode = 2
)

// Valid reports whether m is one of the known menu choices.
func (m Mode) Valid() bool {
	return m == ModeFiles || m == ModeFolder
}

// Position is where the flag is inserted relative to the base name
type Position int

const (
	// Prefix produces flag_name.ext
	Prefix Position = iota
	// Suffix produces name_flag.ext
	Suffix
)

// String returns the lowercase name used in config files and flags.
func (p Position) String() string {
	switch p {
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	default:
		return fmt.Sprintf("position(%d)", int(p))
	}
}

// ParsePosition parses "prefix" or "suffix", case-insensitively.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefix":
		return Prefix, nil
	case "suffix":
		return Suffix, nil
	default:
		return Prefix, fmt.Errorf("unknown flag position %q", s)
	}
}
