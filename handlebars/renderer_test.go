package handlebars

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/skosovsky/cascade"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newEngine(t *testing.T, files map[string]string) *cascade.Engine {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, "templates", name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	e, err := cascade.New(cascade.DirHost{Base: root}, "templates",
		cascade.WithFileExtension("hbs"),
		cascade.WithRenderer(New()),
	)
	require.NoError(t, err)
	return e
}

func TestRenderer_RendersWithDataAndHelpers(t *testing.T) {
	t.Parallel()
	e := newEngine(t, map[string]string{
		"greeting.hbs": "Hello {{name}}, {{uppercase site}}",
	})
	e.AddData(map[string]any{"site": "example"})
	e.RegisterFunction("uppercase", strings.ToUpper)
	out, err := e.Render("greeting", map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada, EXAMPLE", out)
}

func TestRenderer_EscapesOutput(t *testing.T) {
	t.Parallel()
	e := newEngine(t, map[string]string{"p.hbs": "<p>{{body}}</p><p>{{{body}}}</p>"})
	out, err := e.Render("p", map[string]any{"body": "<b>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;b&gt;</p><p><b></p>", out)
}

func TestRenderer_HelpersLookedUpAtRender(t *testing.T) {
	t.Parallel()
	e := newEngine(t, map[string]string{"v.hbs": "{{version}}"})
	e.RegisterFunction("version", func() string { return "v1" })
	tpl, err := e.Make("v")
	require.NoError(t, err)
	e.RegisterFunction("version", func() string { return "v2" })
	out, err := tpl.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestRenderer_InvalidHelper(t *testing.T) {
	t.Parallel()
	e := newEngine(t, map[string]string{"p.hbs": "plain"})
	e.RegisterFunction("bad", func() (string, error) { return "", nil })
	_, err := e.Render("p", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `helper "bad"`)
}

func TestRenderer_ParseError(t *testing.T) {
	t.Parallel()
	e := newEngine(t, map[string]string{"broken.hbs": "{{#if}}"})
	_, err := e.Render("broken", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, cascade.ErrTemplateNotFound)
}

func TestRenderer_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := New().RenderFile(filepath.Join(t.TempDir(), "missing.hbs"), nil, nil)
	require.Error(t, err)
}
