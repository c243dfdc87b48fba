package cascade

import (
	"cmp"
	"slices"
)

// DefaultPriority is the priority for folders added without a specific preference.
const DefaultPriority = 20

// Priorities of the folders registered by New.
const (
	BasePriority       = 100
	ThemePriority      = 10
	ChildThemePriority = 1
)

// Names of the folders registered by New.
const (
	BaseFolder       = "base"
	ThemeFolder      = "theme"
	ChildThemeFolder = "child-theme"
)

// Folder is a named directory taking part in template search.
// Lower Priority values are searched first and therefore override higher ones.
type Folder struct {
	Name      string
	Directory string
	Priority  int
	seq       int // insertion order; breaks priority ties
}

// Folders is the prioritized set of template directories.
// It holds no lock: configure it before rendering starts.
type Folders struct {
	byName  map[string]*Folder
	nextSeq int
}

// NewFolders returns an empty folder set.
func NewFolders() *Folders {
	return &Folders{byName: make(map[string]*Folder)}
}

// Add upserts a folder. Re-adding a name replaces its directory and priority
// but keeps its original insertion position. The directory is not checked here.
func (f *Folders) Add(name, directory string, priority int) {
	if existing, ok := f.byName[name]; ok {
		existing.Directory = directory
		existing.Priority = priority
		return
	}
	f.byName[name] = &Folder{Name: name, Directory: directory, Priority: priority, seq: f.nextSeq}
	f.nextSeq++
}

// Remove deletes the named folder. Removing an unknown name is a no-op.
func (f *Folders) Remove(name string) {
	delete(f.byName, name)
}

// Exists reports whether name is registered.
func (f *Folders) Exists(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// Get returns the named folder or an *UnknownFolderError.
func (f *Folders) Get(name string) (Folder, error) {
	folder, ok := f.byName[name]
	if !ok {
		return Folder{}, &UnknownFolderError{Folder: name}
	}
	return *folder, nil
}

// Len returns the number of registered folders.
func (f *Folders) Len() int { return len(f.byName) }

// Ordered returns the folders in search order: ascending priority, insertion order on ties.
func (f *Folders) Ordered() []Folder {
	out := make([]Folder, 0, len(f.byName))
	for _, folder := range f.byName {
		out = append(out, *folder)
	}
	slices.SortFunc(out, func(a, b Folder) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	return out
}
