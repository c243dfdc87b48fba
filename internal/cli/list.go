package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/skosovsky/cascade"
)

// ListOptions configures the list subcommand.
type ListOptions struct {
	*Options
	Pattern string
}

// NewListOptions returns list options sharing o.
func NewListOptions(o *Options) *ListOptions {
	return &ListOptions{Options: o}
}

// NewListCmd builds the list subcommand.
func NewListCmd(o *ListOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the template names visible through the folders and the file that wins for each",
		Args:  cobra.NoArgs,
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVarP(&o.Pattern, "pattern", "p", "", `Only list names matching this glob, e.g. "emails/**"`)
	return cmd
}

type listing struct {
	name   string
	folder string
	path   string
}

// Run walks every folder in search order. A name is listed once, with the
// folder that shadows all others.
func (o *ListOptions) Run() error {
	var match glob.Glob
	if o.Pattern != "" {
		g, err := glob.Compile(o.Pattern, '/')
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", o.Pattern, err)
		}
		match = g
	}
	engine, err := o.Engine()
	if err != nil {
		return err
	}

	suffix := "." + engine.FileExtension()
	seen := make(map[string]listing)
	for _, folder := range engine.Folders() {
		if err := walkFolder(folder, suffix, func(name, path string) {
			if _, ok := seen[name]; ok {
				return
			}
			if match != nil && !match.Match(name) {
				return
			}
			seen[name] = listing{name: name, folder: folder.Name, path: path}
		}); err != nil {
			return err
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)

	w := tabwriter.NewWriter(o.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFOLDER\tPATH")
	for _, name := range names {
		l := seen[name]
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.name, l.folder, l.path)
	}
	return w.Flush()
}

// walkFolder calls fn with the slash-separated bare name of every template
// file below folder. Missing directories are skipped.
func walkFolder(folder cascade.Folder, suffix string, fn func(name, path string)) error {
	err := filepath.WalkDir(folder.Directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		// Follow symlinks like name resolution does.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(folder.Directory, path)
		if err != nil {
			return err
		}
		fn(filepath.ToSlash(strings.TrimSuffix(rel, suffix)), path)
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("list folder %s: %w", folder.Name, err)
	}
	return nil
}
