package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewPathCmd builds the path subcommand.
func NewPathCmd(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "path NAME",
		Short: "Print the file a template name resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			engine, err := o.Engine()
			if err != nil {
				return err
			}
			path, err := engine.Path(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(o.Out, path)
			return err
		},
	}
}

// NewExistsCmd builds the exists subcommand. It prints true or false.
func NewExistsCmd(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "exists NAME",
		Short: "Report whether a template name resolves to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			engine, err := o.Engine()
			if err != nil {
				return err
			}
			ok, err := engine.Exists(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(o.Out, ok)
			return err
		},
	}
}

// NewFoldersCmd builds the folders subcommand, listing folders in search order.
func NewFoldersCmd(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List template folders in search order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			engine, err := o.Engine()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(o.Out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRIORITY\tNAME\tDIRECTORY")
			for _, f := range engine.Folders() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", f.Priority, f.Name, f.Directory)
			}
			return w.Flush()
		},
	}
}
