// Package errors provides typed errors shared across the swatch commands.
// Each error carries a kind so callers can branch on failure class without
// string matching, plus the identifier (file path, config param, token path
// or glob pattern) that caused it.
package errors

import (
	"errors"
	"fmt"
)

// Re-exported for convenience so callers need a single errors import.
var (
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
	New    = errors.New
)

// ErrorKind represents the kind of error.
type ErrorKind int

const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	ConfigNotSet
	// Token error kinds
	InvalidToken
	DanglingReference
	// Pattern error kinds
	InvalidPattern
)

// ApplicationError is the base type for all swatch errors.
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error.
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations.
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error.
func NewFileError(msg, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		path:             path,
	}
}

func (e *FileError) Error() string {
	if e.path == "" {
		return e.ApplicationError.Error()
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
	}
	return fmt.Sprintf("%s: %s", e.msg, e.path)
}

// Path returns the file path associated with the error.
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors in the tool configuration.
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new config error for the given parameter.
func NewConfigError(msg, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		param:            param,
	}
}

func (e *ConfigError) Error() string {
	if e.param == "" {
		return e.ApplicationError.Error()
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
	}
	return fmt.Sprintf("%s: %s", e.msg, e.param)
}

// Param returns the configuration parameter associated with the error.
func (e *ConfigError) Param() string {
	return e.param
}

// TokenError represents an invalid design token. TokenPath is the dotted
// path into the theme record, e.g. "colors.status.applied".
type TokenError struct {
	ApplicationError
	tokenPath string
}

// NewTokenError creates a new token error for the given token path.
func NewTokenError(msg, tokenPath string, kind ErrorKind, err error) *TokenError {
	return &TokenError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: kind},
		tokenPath:        tokenPath,
	}
}

func (e *TokenError) Error() string {
	if e.tokenPath == "" {
		return e.ApplicationError.Error()
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.msg, e.tokenPath, e.err)
	}
	return fmt.Sprintf("%s: %s", e.msg, e.tokenPath)
}

// TokenPath returns the dotted token path associated with the error.
func (e *TokenError) TokenPath() string {
	return e.tokenPath
}

// PatternError represents an invalid content glob pattern.
type PatternError struct {
	ApplicationError
	pattern string
}

// NewPatternError creates a new pattern error.
func NewPatternError(msg, pattern string, err error) *PatternError {
	return &PatternError{
		ApplicationError: ApplicationError{msg: msg, err: err, kind: InvalidPattern},
		pattern:          pattern,
	}
}

func (e *PatternError) Error() string {
	if e.pattern == "" {
		return e.ApplicationError.Error()
	}
	if e.err != nil {
		return fmt.Sprintf("%s: %q: %v", e.msg, e.pattern, e.err)
	}
	return fmt.Sprintf("%s: %q", e.msg, e.pattern)
}

// Pattern returns the glob pattern associated with the error.
func (e *PatternError) Pattern() string {
	return e.pattern
}
