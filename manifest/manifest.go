package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/skosovsky/cascade"

	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest reports a manifest that cannot be parsed or fails validation.
var ErrInvalidManifest = errors.New("manifest: manifest file is malformed")

// Ensures Manifest implements cascade.Extension.
var _ cascade.Extension = (*Manifest)(nil)

// Manifest is a parsed extension file. Register applies, in order: the file
// extension, folder removals, folders, then data entries.
type Manifest struct {
	FileExtension string
	RemoveFolders []string
	Folders       []Folder
	Data          []DataEntry
}

// Folder declares one template folder. Directory is absolute once parsed.
type Folder struct {
	Name      string
	Directory string
	Priority  int
}

// DataEntry preassigns Values globally when Templates is empty, otherwise to each listed template.
type DataEntry struct {
	Templates []string
	Values    map[string]any
}

// fileManifest is the YAML shape of a manifest.
type fileManifest struct {
	FileExtension string   `yaml:"file_extension"`
	RemoveFolders []string `yaml:"remove_folders"`
	Folders       []struct {
		Name      string `yaml:"name"`
		Directory string `yaml:"directory"`
		Priority  *int   `yaml:"priority"`
	} `yaml:"folders"`
	Data []struct {
		Templates []string       `yaml:"templates"`
		Values    map[string]any `yaml:"values"`
	} `yaml:"data"`
}

// ParseBytes parses a YAML manifest. Relative folder directories are resolved against baseDir.
func ParseBytes(data []byte, baseDir string) (*Manifest, error) {
	var m fileManifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return build(&m, baseDir)
}

// ParseFile reads and parses a manifest file; relative folders resolve against the file's directory.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("manifest: read file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve path: %w", err)
	}
	return ParseBytes(data, filepath.Dir(abs))
}

// ParseFS reads and parses a manifest from fsys. Relative folders resolve against baseDir.
func ParseFS(fsys fs.FS, name, baseDir string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("manifest: read fs: %w", err)
	}
	return ParseBytes(data, baseDir)
}

func build(m *fileManifest, baseDir string) (*Manifest, error) {
	out := &Manifest{
		FileExtension: m.FileExtension,
		RemoveFolders: m.RemoveFolders,
	}
	if m.FileExtension != "" {
		if _, err := cascade.NewFileExtension(m.FileExtension); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
	}
	for i, f := range m.Folders {
		if f.Name == "" || strings.Contains(f.Name, cascade.FolderSeparator) {
			return nil, fmt.Errorf("%w: folder %d: invalid name %q", ErrInvalidManifest, i, f.Name)
		}
		if f.Directory == "" {
			return nil, fmt.Errorf("%w: folder %q: missing directory", ErrInvalidManifest, f.Name)
		}
		dir := f.Directory
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		priority := cascade.DefaultPriority
		if f.Priority != nil {
			priority = *f.Priority
		}
		out.Folders = append(out.Folders, Folder{Name: f.Name, Directory: dir, Priority: priority})
	}
	for i, d := range m.Data {
		if len(d.Values) == 0 {
			return nil, fmt.Errorf("%w: data %d: missing values", ErrInvalidManifest, i)
		}
		for _, name := range d.Templates {
			if _, _, err := cascade.ParseName(name); err != nil {
				return nil, fmt.Errorf("%w: data %d: %w", ErrInvalidManifest, i, err)
			}
		}
		out.Data = append(out.Data, DataEntry{Templates: d.Templates, Values: d.Values})
	}
	return out, nil
}

// Register implements cascade.Extension.
func (m *Manifest) Register(e *cascade.Engine) {
	if m.FileExtension != "" {
		// Validated by ParseBytes.
		_ = e.SetFileExtension(m.FileExtension)
	}
	for _, name := range m.RemoveFolders {
		e.RemoveFolder(name)
	}
	for _, f := range m.Folders {
		e.AddFolder(f.Name, f.Directory, f.Priority)
	}
	for _, d := range m.Data {
		e.AddData(d.Values, d.Templates...)
	}
}
