package cascade

import "strings"

// DefaultFileExtension is used when no extension is configured.
const DefaultFileExtension = "tmpl"

// FileExtension holds the validated extension appended to every bare template name.
// The zero value is not valid; use NewFileExtension.
type FileExtension struct {
	value string
}

// NewFileExtension validates ext and returns it wrapped.
// A leading dot is not accepted: "tmpl", not ".tmpl".
func NewFileExtension(ext string) (FileExtension, error) {
	var fe FileExtension
	if err := fe.Set(ext); err != nil {
		return FileExtension{}, err
	}
	return fe, nil
}

// Set replaces the extension. On error the previous value is kept.
func (fe *FileExtension) Set(ext string) error {
	if err := validateFileExtension(ext); err != nil {
		return err
	}
	fe.value = ext
	return nil
}

// Get returns the extension without a leading dot.
func (fe FileExtension) Get() string { return fe.value }

// String implements fmt.Stringer.
func (fe FileExtension) String() string { return fe.value }

func validateFileExtension(ext string) error {
	switch {
	case ext == "":
		return &InvalidFileExtensionError{Extension: ext, Reason: "must not be empty"}
	case strings.Contains(ext, "."):
		return &InvalidFileExtensionError{Extension: ext, Reason: "must not contain a dot"}
	case strings.ContainsAny(ext, `/\`):
		return &InvalidFileExtensionError{Extension: ext, Reason: "must not contain a path separator"}
	case strings.TrimSpace(ext) != ext || strings.ContainsAny(ext, " \t\r\n"):
		return &InvalidFileExtensionError{Extension: ext, Reason: "must not contain whitespace"}
	}
	return nil
}
