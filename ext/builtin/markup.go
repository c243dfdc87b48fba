package builtin

import (
	htemplate "html/template"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"

	"github.com/skosovsky/cascade"
	"github.com/skosovsky/cascade/internal/cast"
)

func (x Extension) registerMarkup(e *cascade.Engine) {
	e.RegisterFunction("markdown", x.html(markdown))
	e.RegisterFunction("sanitize", x.html(sanitize))
	e.RegisterFunction("bytes", bytesize)
}

// html marks the output of fn as safe HTML when rendering with html/template.
func (x Extension) html(fn func(v any) string) any {
	if !x.HTML {
		return fn
	}
	return func(v any) htemplate.HTML {
		return htemplate.HTML(fn(v)) // #nosec G203 -- sanitized by bluemonday
	}
}

// markdown renders v as sanitized HTML.
func markdown(v any) string {
	out := blackfriday.Run([]byte(cast.String(v)), blackfriday.WithExtensions(blackfriday.CommonExtensions))
	return string(bluemonday.UGCPolicy().SanitizeBytes(out))
}

// sanitize drops elements and attributes that can run scripts.
func sanitize(v any) string {
	return bluemonday.UGCPolicy().Sanitize(cast.String(v))
}

// bytesize formats a byte count, e.g. 82854982 -> "83 MB".
func bytesize(v any) (string, error) {
	n, err := operand(v)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "-" + humanize.Bytes(uint64(-n)), nil
	}
	return humanize.Bytes(uint64(n)), nil
}
