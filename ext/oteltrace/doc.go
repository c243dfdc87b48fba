// Package oteltrace wraps a cascade.Renderer so that every template render
// is recorded as an OpenTelemetry span.
//
//	engine, err := cascade.New(host, "templates",
//		cascade.WithRenderer(oteltrace.New(cascade.GoRenderer{})),
//	)
package oteltrace
