package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skosovsky/cascade"
	"github.com/skosovsky/cascade/ext/builtin"
	"github.com/skosovsky/cascade/handlebars"
	"github.com/skosovsky/cascade/internal/config"
	"github.com/skosovsky/cascade/manifest"
)

// Options is shared by every subcommand: configuration, logger and output.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	Out    io.Writer
}

// NewOptions returns options for cfg writing to out. The logger is built
// from cfg.LogLevel once flags are parsed.
func NewOptions(cfg *config.Config, out io.Writer) *Options {
	return &Options{Config: cfg, Logger: zap.NewNop(), Out: out}
}

// Engine builds an engine from the configuration, loading builtins first and
// then every manifest in order. Builtins are skipped for the handlebars
// renderer, which only accepts single-result helpers.
func (o *Options) Engine() (*cascade.Engine, error) {
	cfg := o.Config
	opts := []cascade.Option{
		cascade.WithFileExtension(cfg.FileExtension),
		cascade.WithLogger(o.Logger),
		cascade.WithRenderer(rendererFor(cfg.Renderer)),
	}
	if cfg.ThemeTemplatesDir != "" {
		opts = append(opts, cascade.WithThemeTemplatesDirectory(cfg.ThemeTemplatesDir))
	}
	if cfg.Builtins && cfg.Renderer != config.RendererHandlebars {
		opts = append(opts, cascade.WithExtensions(builtin.Extension{HTML: cfg.Renderer == config.RendererHTML}))
	}
	for _, path := range cfg.Manifests {
		m, err := manifest.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("load manifest %s: %w", path, err)
		}
		opts = append(opts, cascade.WithExtensions(m))
	}
	return cascade.New(cfg.Host(), cfg.TemplatesDir, opts...)
}

func rendererFor(name string) cascade.Renderer {
	switch name {
	case config.RendererHTML:
		return cascade.GoRenderer{HTML: true}
	case config.RendererHandlebars:
		return handlebars.New()
	default:
		return cascade.GoRenderer{}
	}
}

// initLogger initializes the logger
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}
