package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// NewCascadeCmd builds the root command. Persistent flags override the
// configuration loaded from the environment.
func NewCascadeCmd(o *Options) *cobra.Command {
	cfg := o.Config
	cmd := &cobra.Command{
		Use:     "cascade",
		Version: Version,
		Short:   "cascade resolves and renders templates across prioritized folders",
		Long: `cascade resolves logical template names across prioritized folders
(defaults, theme, child theme, manifest folders) and renders them.

A name is either "path/to/file" (searched in every folder, lowest priority
number first) or "folder::path/to/file" (searched in that folder only).`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := initLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			o.Logger = logger
			o.Logger.Debug("configuration loaded")
			return nil
		},
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.BaseDir, "base-dir", cfg.BaseDir, "Directory the templates directory is relative to")
	flags.StringVar(&cfg.TemplatesDir, "templates-dir", cfg.TemplatesDir, "Default templates directory inside the base directory")
	flags.StringVar(&cfg.ThemeDir, "theme-dir", cfg.ThemeDir, "Parent theme root")
	flags.StringVar(&cfg.ChildThemeDir, "child-theme-dir", cfg.ChildThemeDir, "Child theme root")
	flags.StringVar(&cfg.ThemeTemplatesDir, "theme-templates-dir", cfg.ThemeTemplatesDir, "Override directory name inside the themes")
	flags.StringVarP(&cfg.FileExtension, "ext", "e", cfg.FileExtension, "Template file extension, without the dot")
	flags.StringVarP(&cfg.Renderer, "renderer", "r", cfg.Renderer, "Renderer: text, html or handlebars")
	flags.StringArrayVarP(&cfg.Manifests, "manifest", "m", cfg.Manifests, "Extension manifest file (can be specified multiple times)")
	flags.BoolVar(&cfg.Builtins, "builtins", cfg.Builtins, "Register the builtin helper functions (text and html renderers)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	cmd.AddCommand(NewRenderCmd(NewRenderOptions(o)))
	cmd.AddCommand(NewPathCmd(o))
	cmd.AddCommand(NewExistsCmd(o))
	cmd.AddCommand(NewFoldersCmd(o))
	cmd.AddCommand(NewListCmd(NewListOptions(o)))

	return cmd
}
