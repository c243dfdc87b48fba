package manifest

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/skosovsky/cascade"
)

//go:embed testdata/*.yaml
var testdataFS embed.FS

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseBytes_ValidFull(t *testing.T) {
	t.Parallel()
	m, err := ParseFS(testdataFS, "testdata/valid_full.yaml", "/etc/site")
	require.NoError(t, err)
	assert.Equal(t, "html", m.FileExtension)
	assert.Equal(t, []string{"theme"}, m.RemoveFolders)
	require.Len(t, m.Folders, 2)
	assert.Equal(t, Folder{Name: "emails", Directory: filepath.Join("/etc/site", "emails"), Priority: 5}, m.Folders[0])
	assert.Equal(t, "/srv/shared", m.Folders[1].Directory)
	assert.Equal(t, cascade.DefaultPriority, m.Folders[1].Priority)
	require.Len(t, m.Data, 2)
	assert.Empty(t, m.Data[0].Templates)
	assert.Equal(t, "Example", m.Data[0].Values["site"])
	assert.Equal(t, 2024, m.Data[0].Values["year"])
	assert.Equal(t, []string{"emails::welcome", "layout"}, m.Data[1].Templates)
}

func TestParseBytes_Empty(t *testing.T) {
	t.Parallel()
	m, err := ParseBytes(nil, "")
	require.NoError(t, err)
	assert.Empty(t, m.Folders)
	assert.Empty(t, m.Data)
}

func TestParseBytes_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "folders: [unclosed"},
		{"missing directory", "folders:\n  - name: a\n"},
		{"missing name", "folders:\n  - directory: a\n"},
		{"bad extension", "file_extension: .php\n"},
		{"empty values", "data:\n  - templates: [a]\n"},
		{"bad template name", "data:\n  - templates: ['a::']\n    values: {x: 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes([]byte(tt.data), "")
			require.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}

func TestParseFS_InvalidFiles(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"testdata/invalid_folder_name.yaml", "testdata/invalid_unknown_field.yaml"} {
		_, err := ParseFS(testdataFS, name, "")
		require.ErrorIs(t, err, ErrInvalidManifest, name)
	}
	_, err := ParseFS(testdataFS, "testdata/missing.yaml", "")
	require.Error(t, err)
}

func TestParseFile_RelativeToManifest(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "cascade.yaml")
	require.NoError(t, os.WriteFile(path, []byte("folders:\n  - name: local\n    directory: overrides\n    priority: 1\n"), 0o600))
	m, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, m.Folders, 1)
	assert.Equal(t, filepath.Join(dir, "overrides"), m.Folders[0].Directory)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestManifest_Register(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	host := cascade.DirHost{Base: filepath.Join(root, "plugin"), Theme: filepath.Join(root, "theme")}
	require.NoError(t, os.MkdirAll(filepath.Join(host.Theme, "ov"), 0o750))
	emails := filepath.Join(root, "emails")
	require.NoError(t, os.MkdirAll(emails, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(emails, "welcome.html"), []byte("x"), 0o600))

	e, err := cascade.New(host, "templates", cascade.WithThemeTemplatesDirectory("ov"))
	require.NoError(t, err)
	require.Len(t, e.Folders(), 2)

	m, err := ParseFS(testdataFS, "testdata/valid_full.yaml", root)
	require.NoError(t, err)
	e.LoadExtension(m)

	assert.Equal(t, "html", e.FileExtension())
	names := make([]string, 0, 3)
	for _, f := range e.Folders() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"emails", "shared", cascade.BaseFolder}, names)

	path, err := e.Path("welcome")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(emails, "welcome.html"), path)

	assert.Equal(t, map[string]any{"site": "Example", "year": 2024, "subject": "Welcome"}, e.Data("emails::welcome"))
	assert.Equal(t, map[string]any{"site": "Example", "year": 2024}, e.Data("welcome"))
}
