package cascade_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/skosovsky/cascade"
)

func mustWrite(path, content string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		panic(err)
	}
}

func ExampleEngine_Render() {
	root, err := os.MkdirTemp("", "cascade-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(root)

	mustWrite(filepath.Join(root, "plugin", "templates", "greeting.tmpl"), "Hello, {{ .name }}!")
	mustWrite(filepath.Join(root, "theme", "my-plugin", "greeting.tmpl"), "{{ shout .greeting }}, {{ .name }}!")

	host := cascade.DirHost{
		Base:  filepath.Join(root, "plugin"),
		Theme: filepath.Join(root, "theme"),
	}
	engine, err := cascade.New(host, "templates", cascade.WithThemeTemplatesDirectory("my-plugin"))
	if err != nil {
		panic(err)
	}
	engine.RegisterFunction("shout", strings.ToUpper).
		AddData(map[string]any{"greeting": "welcome"})

	out, err := engine.Render("greeting", map[string]any{"name": "Ada"})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)

	out, err = engine.Render("base::greeting", map[string]any{"name": "Ada"})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output:
	// WELCOME, Ada!
	// Hello, Ada!
}

func ExampleExtensionFunc() {
	engine, err := cascade.New(cascade.DirHost{Base: os.TempDir()}, "templates")
	if err != nil {
		panic(err)
	}
	engine.LoadExtension(cascade.ExtensionFunc(func(e *cascade.Engine) {
		e.AddFolder("emails", "/srv/emails", 5)
		e.RegisterFunction("year", func() int { return 2024 })
	}))
	for _, f := range engine.Folders() {
		fmt.Println(f.Priority, f.Name)
	}
	fmt.Println(engine.FunctionExists("year"))
	// Output:
	// 5 emails
	// 100 base
	// true
}
