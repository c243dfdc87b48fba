package cascade

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for resolution, registry and rendering setup.
// All use prefix "cascade:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrUnknownFolder        = errors.New("cascade: template folder is not registered")
	ErrTemplateNotFound     = errors.New("cascade: template not found in any folder")
	ErrUnknownFunction      = errors.New("cascade: template function is not registered")
	ErrInvalidFileExtension = errors.New("cascade: invalid template file extension")
	ErrInvalidTemplateName  = errors.New("cascade: invalid template name")
	ErrNotCallable          = errors.New("cascade: template function callback is not callable")
)

// UnknownFolderError reports an explicit "folder::name" lookup against a folder that was never added.
type UnknownFolderError struct {
	Folder   string
	Template string
}

// Error implements error.
func (e *UnknownFolderError) Error() string {
	if e.Template == "" {
		return fmt.Sprintf("%v: %q", ErrUnknownFolder, e.Folder)
	}
	return fmt.Sprintf("%v: %q (template %q)", ErrUnknownFolder, e.Folder, e.Template)
}

// Unwrap returns ErrUnknownFolder.
func (e *UnknownFolderError) Unwrap() error { return ErrUnknownFolder }

// TemplateNotFoundError carries the logical name and every directory that was searched.
type TemplateNotFoundError struct {
	Name        string
	Directories []string
}

// Error implements error.
func (e *TemplateNotFoundError) Error() string {
	if len(e.Directories) == 0 {
		return fmt.Sprintf("%v: %q (no folders registered)", ErrTemplateNotFound, e.Name)
	}
	return fmt.Sprintf("%v: %q (searched %s)", ErrTemplateNotFound, e.Name, strings.Join(e.Directories, ", "))
}

// Unwrap returns ErrTemplateNotFound.
func (e *TemplateNotFoundError) Unwrap() error { return ErrTemplateNotFound }

// UnknownFunctionError reports a lookup of a function name that is not registered.
type UnknownFunctionError struct {
	Function string
}

// Error implements error.
func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownFunction, e.Function)
}

// Unwrap returns ErrUnknownFunction.
func (e *UnknownFunctionError) Unwrap() error { return ErrUnknownFunction }

// InvalidFileExtensionError reports a rejected file extension value.
type InvalidFileExtensionError struct {
	Extension string
	Reason    string
}

// Error implements error.
func (e *InvalidFileExtensionError) Error() string {
	return fmt.Sprintf("%v: %q: %s", ErrInvalidFileExtension, e.Extension, e.Reason)
}

// Unwrap returns ErrInvalidFileExtension.
func (e *InvalidFileExtensionError) Unwrap() error { return ErrInvalidFileExtension }

// Compile-time checks that the typed errors implement error.
var (
	_ error = (*UnknownFolderError)(nil)
	_ error = (*TemplateNotFoundError)(nil)
	_ error = (*UnknownFunctionError)(nil)
	_ error = (*InvalidFileExtensionError)(nil)
)
