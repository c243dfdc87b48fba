package cascade

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Engine resolves logical template names against prioritized folders and
// renders them with preassigned data and registered functions.
//
// Registries are not locked. Configure the engine (folders, data, functions,
// extensions) before rendering; concurrent renders are safe once configuration stops.
type Engine struct {
	host                    Host
	pluginTemplatesDir      string
	pluginTemplatesPath     string
	themeTemplatesDirectory string
	fileExtension           FileExtension
	folders                 *Folders
	data                    *Data
	functions               *Functions
	renderer                Renderer
	logger                  *zap.Logger

	pendingExtension  string
	pendingExtensions []Extension
}

// New builds an engine whose default templates live in host.BasePath(pluginTemplatesDirectory),
// registered as folder "base" at priority 100. With WithThemeTemplatesDirectory the
// matching directory of the parent theme is added as "theme" (priority 10) and,
// when a distinct child theme is active, its directory as "child-theme" (priority 1);
// each only when the directory exists. A host without a theme root gets neither.
// Panics if host is nil.
func New(host Host, pluginTemplatesDirectory string, opts ...Option) (*Engine, error) {
	if host == nil {
		panic("cascade: Host must not be nil")
	}
	e := &Engine{
		host:             host,
		folders:          NewFolders(),
		data:             NewData(),
		functions:        NewFunctions(),
		renderer:         GoRenderer{},
		logger:           zap.NewNop(),
		pendingExtension: DefaultFileExtension,
	}
	for _, opt := range opts {
		opt(e)
	}
	ext, err := NewFileExtension(e.pendingExtension)
	if err != nil {
		return nil, err
	}
	e.fileExtension = ext

	e.SetPluginTemplatesPath(pluginTemplatesDirectory)
	if e.themeTemplatesDirectory != "" {
		e.addThemeFolders()
	}

	exts := e.pendingExtensions
	e.pendingExtension, e.pendingExtensions = "", nil
	e.LoadExtensions(exts...)
	return e, nil
}

func (e *Engine) addThemeFolders() {
	parent := e.host.TemplateDirectory()
	if parent == "" {
		return
	}
	themeDir := filepath.Join(parent, e.themeTemplatesDirectory)
	if isDir(themeDir) {
		e.AddFolder(ThemeFolder, themeDir, ThemePriority)
	}
	child := e.host.StylesheetDirectory()
	if child == parent {
		return
	}
	childDir := filepath.Join(child, e.themeTemplatesDirectory)
	if isDir(childDir) {
		e.AddFolder(ChildThemeFolder, childDir, ChildThemePriority)
	}
}

// SetPluginTemplatesPath points the "base" folder at host.BasePath(dir).
func (e *Engine) SetPluginTemplatesPath(dir string) *Engine {
	e.pluginTemplatesDir = dir
	e.pluginTemplatesPath = e.host.BasePath(dir)
	return e.AddFolder(BaseFolder, e.pluginTemplatesPath, BasePriority)
}

// PluginTemplatesPath returns the absolute path of the "base" folder.
func (e *Engine) PluginTemplatesPath() string { return e.pluginTemplatesPath }

// PluginTemplatesDirectory returns the directory name passed to New or SetPluginTemplatesPath.
func (e *Engine) PluginTemplatesDirectory() string { return e.pluginTemplatesDir }

// ThemeTemplatesDirectory returns the directory name searched inside themes.
func (e *Engine) ThemeTemplatesDirectory() string { return e.themeTemplatesDirectory }

// SetFileExtension replaces the file extension used for all resolution.
func (e *Engine) SetFileExtension(ext string) error {
	return e.fileExtension.Set(ext)
}

// FileExtension returns the current file extension.
func (e *Engine) FileExtension() string { return e.fileExtension.Get() }

// AddFolder adds or replaces a template folder. Use DefaultPriority when
// the folder has no particular place in the override chain.
func (e *Engine) AddFolder(name, directory string, priority int) *Engine {
	e.folders.Add(name, directory, priority)
	e.logger.Debug("template folder registered",
		zap.String("folder", name),
		zap.String("directory", directory),
		zap.Int("priority", priority),
	)
	return e
}

// RemoveFolder drops a template folder; unknown names are ignored.
func (e *Engine) RemoveFolder(name string) *Engine {
	e.folders.Remove(name)
	e.logger.Debug("template folder removed", zap.String("folder", name))
	return e
}

// Folders returns the registered folders in search order.
func (e *Engine) Folders() []Folder { return e.folders.Ordered() }

// Folder returns one registered folder or an *UnknownFolderError.
func (e *Engine) Folder(name string) (Folder, error) { return e.folders.Get(name) }

// AddData preassigns data globally, or to the given templates only.
func (e *Engine) AddData(data map[string]any, templates ...string) *Engine {
	e.data.Add(data, templates...)
	return e
}

// Data returns the global data overlaid with the data scoped to template.
// An empty template returns global data only.
func (e *Engine) Data(template string) map[string]any { return e.data.Get(template) }

// RegisterFunction registers or replaces a template function.
func (e *Engine) RegisterFunction(name string, callback any) *Engine {
	e.functions.Add(name, callback)
	e.logger.Debug("template function registered", zap.String("function", name))
	return e
}

// DropFunction removes a template function; unknown names are ignored.
func (e *Engine) DropFunction(name string) *Engine {
	e.functions.Remove(name)
	return e
}

// Function returns a registered function or an *UnknownFunctionError.
func (e *Engine) Function(name string) (*Func, error) { return e.functions.Get(name) }

// FunctionExists reports whether name is registered.
func (e *Engine) FunctionExists(name string) bool { return e.functions.Exists(name) }

// Functions returns the function registry as seen by renderers.
func (e *Engine) Functions() FunctionSource { return e.functions }

// LoadExtension lets ext register folders, data or functions on the engine.
func (e *Engine) LoadExtension(ext Extension) *Engine {
	ext.Register(e)
	e.logger.Debug("template extension loaded", zap.String("extension", fmt.Sprintf("%T", ext)))
	return e
}

// LoadExtensions loads exts in order. Loading is not transactional: a panic in
// one extension leaves the registrations of the earlier ones in place.
func (e *Engine) LoadExtensions(exts ...Extension) *Engine {
	for _, ext := range exts {
		e.LoadExtension(ext)
	}
	return e
}

// Name parses name against the current folders and extension.
func (e *Engine) Name(name string) (*Name, error) {
	return newName(name, e.folders, e.fileExtension.Get())
}

// Path resolves name to a file path.
func (e *Engine) Path(name string) (string, error) {
	n, err := e.Name(name)
	if err != nil {
		return "", err
	}
	path, err := n.Path()
	if err != nil {
		return "", err
	}
	e.logger.Debug("template resolved", zap.String("template", name), zap.String("path", path))
	return path, nil
}

// Exists reports whether name resolves to a file. The error is non-nil only
// for malformed names and unknown explicit folders.
func (e *Engine) Exists(name string) (bool, error) {
	n, err := e.Name(name)
	if err != nil {
		return false, err
	}
	return n.Exists()
}

// Make resolves name and binds it to the global and name-scoped data.
func (e *Engine) Make(name string) (*Template, error) {
	path, err := e.Path(name)
	if err != nil {
		return nil, err
	}
	return &Template{engine: e, name: name, path: path, data: e.data.Get(name)}, nil
}

// Render makes name and renders it with data merged on top.
// Precedence, lowest to highest: global data, data scoped to name, data.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	tpl, err := e.Make(name)
	if err != nil {
		return "", err
	}
	return tpl.Render(data)
}
