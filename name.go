package cascade

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FolderSeparator splits an explicit folder from the template name: "folder::name".
const FolderSeparator = "::"

// Name is a parsed logical template name bound to the folders and extension
// of one engine. It does not cache lookups; every call checks the filesystem.
type Name struct {
	logical string
	folder  string // empty for bare names
	file    string
	folders *Folders
	ext     string
}

// ParseName splits a logical name into an optional folder and the file part.
func ParseName(name string) (folder, file string, err error) {
	if strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("%w: name must not be empty", ErrInvalidTemplateName)
	}
	folder, file, explicit := strings.Cut(name, FolderSeparator)
	if !explicit {
		if err := checkFile(name, name); err != nil {
			return "", "", err
		}
		return "", name, nil
	}
	if strings.Contains(file, FolderSeparator) {
		return "", "", fmt.Errorf("%w: %q uses %q more than once", ErrInvalidTemplateName, name, FolderSeparator)
	}
	if folder == "" || file == "" {
		return "", "", fmt.Errorf("%w: %q has an empty folder or file part", ErrInvalidTemplateName, name)
	}
	if err := checkFile(name, file); err != nil {
		return "", "", err
	}
	return folder, file, nil
}

// checkFile rejects file parts that would leave the folder they are joined to.
func checkFile(name, file string) error {
	clean := filepath.Clean(filepath.FromSlash(file))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes its template folder", ErrInvalidTemplateName, name)
	}
	return nil
}

func newName(name string, folders *Folders, ext string) (*Name, error) {
	folder, file, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return &Name{logical: name, folder: folder, file: file, folders: folders, ext: ext}, nil
}

// Logical returns the name as given by the caller.
func (n *Name) Logical() string { return n.logical }

// Folder returns the explicit folder, or "" for a bare name.
func (n *Name) Folder() string { return n.folder }

// File returns the part after the folder separator.
func (n *Name) File() string { return n.file }

// Path returns the first existing candidate file. An explicit folder only
// searches that folder; a bare name walks every folder in priority order.
func (n *Name) Path() (string, error) {
	candidates, err := n.candidates()
	if err != nil {
		return "", err
	}
	dirs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if isFile(c.path) {
			return c.path, nil
		}
		dirs = append(dirs, c.dir)
	}
	return "", &TemplateNotFoundError{Name: n.logical, Directories: dirs}
}

// Exists reports whether any candidate file exists. It only fails for an unknown explicit folder.
func (n *Name) Exists() (bool, error) {
	_, err := n.Path()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrTemplateNotFound):
		return false, nil
	default:
		return false, err
	}
}

type candidate struct {
	dir  string
	path string
}

func (n *Name) candidates() ([]candidate, error) {
	filename := filepath.FromSlash(n.file) + "." + n.ext
	if n.folder != "" {
		folder, err := n.folders.Get(n.folder)
		if err != nil {
			return nil, &UnknownFolderError{Folder: n.folder, Template: n.logical}
		}
		return []candidate{{dir: folder.Directory, path: filepath.Join(folder.Directory, filename)}}, nil
	}
	ordered := n.folders.Ordered()
	out := make([]candidate, 0, len(ordered))
	for _, folder := range ordered {
		out = append(out, candidate{dir: folder.Directory, path: filepath.Join(folder.Directory, filename)})
	}
	return out, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
