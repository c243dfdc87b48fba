// Package handlebars provides a cascade.Renderer that executes resolved files
// as Handlebars templates.
//
// Registered cascade functions become template-local helpers. They are
// fetched from the registry when each render starts and must follow the
// Handlebars helper rules: exactly one return value, an optional trailing
// *raymond.Options parameter, no variadic parameters.
//
// Example usage:
//
//	engine, err := cascade.New(host, "templates",
//	    cascade.WithFileExtension("hbs"),
//	    cascade.WithRenderer(handlebars.New()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine.RegisterFunction("uppercase", strings.ToUpper)
//	out, err := engine.Render("emails/welcome", map[string]any{"name": "Ada"})
package handlebars
