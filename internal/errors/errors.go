// Package errors provides standardized error handling for flagren.
// It defines the error kinds produced while renaming and enumerating files,
// plus helpers for consistent error creation, wrapping, and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	IsDirectory
	RenameFailed
	TargetExists
	FolderNotFound
	// Input error kinds
	InvalidMode
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

var kindNames = map[ErrorKind]string{
	Unknown:        "unknown",
	FileNotFound:   "file_not_found",
	IsDirectory:    "is_directory",
	RenameFailed:   "rename_failed",
	TargetExists:   "target_exists",
	FolderNotFound: "folder_not_found",
	InvalidMode:    "invalid_mode",
	InvalidConfig:  "invalid_config",
	ConfigNotFound: "config_not_found",
}

// String returns the snake_case name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// InputError represents an invalid answer given to an interactive prompt.
type InputError struct {
	ApplicationError
	input string
}

// NewInputError creates a new input error
func NewInputError(msg string, input string, kind ErrorKind) *InputError {
	return &InputError{
		ApplicationError: ApplicationError{
			msg:  msg,
			kind: kind,
		},
		input: input,
	}
}

// Error returns the input error message
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q", e.msg, e.input)
}

// Input returns the rejected input
func (e *InputError) Input() string {
	return e.input
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first application error in err's chain,
// or Unknown when there is none.
func KindOf(err error) ErrorKind {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind()
	}
	return Unknown
}

func fileErrorOfKind(err error, kind ErrorKind) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == kind
	}
	return false
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	return fileErrorOfKind(err, FileNotFound)
}

// IsFolderNotFound checks if the error is a folder not found error
func IsFolderNotFound(err error) bool {
	return fileErrorOfKind(err, FolderNotFound)
}

// IsTargetExists checks if the error reports an occupied rename target
func IsTargetExists(err error) bool {
	return fileErrorOfKind(err, TargetExists)
}

// IsInvalidMode checks if the error is an invalid mode selection
func IsInvalidMode(err error) bool {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Kind() == InvalidMode
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}
