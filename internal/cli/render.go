package cli

import (
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// RenderOptions configures the render subcommand.
type RenderOptions struct {
	*Options
	DataFiles []string
	Values    []string
	Separator string
}

// NewRenderOptions returns render options sharing o.
func NewRenderOptions(o *Options) *RenderOptions {
	return &RenderOptions{Options: o}
}

// NewRenderCmd builds the render subcommand.
func NewRenderCmd(o *RenderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render NAME...",
		Short: "Render one or more templates",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.Run(args) },
	}
	cmd.Flags().StringArrayVarP(&o.DataFiles, "data-file", "f", nil, "YAML file with render data (can be specified multiple times)")
	cmd.Flags().StringArrayVarP(&o.Values, "data", "d", nil, "Render data as key=value (can be specified multiple times)")
	cmd.Flags().StringVar(&o.Separator, "separator", "", "Written between the outputs of several templates")
	return cmd
}

// Run renders names concurrently and writes the outputs in argument order.
func (o *RenderOptions) Run(names []string) error {
	data, err := o.data()
	if err != nil {
		return err
	}
	engine, err := o.Engine()
	if err != nil {
		return err
	}

	outputs := make([]string, len(names))
	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			out, err := engine.Render(name, data)
			if err != nil {
				return fmt.Errorf("render %s: %w", name, err)
			}
			outputs[i] = out
			o.Logger.Debug("template rendered", zap.String("template", name), zap.Int("bytes", len(out)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	_, err = io.WriteString(o.Out, strings.Join(outputs, o.Separator))
	return err
}

// data merges the data files in order, then the key=value pairs.
func (o *RenderOptions) data() (map[string]any, error) {
	out := make(map[string]any)
	for _, path := range o.DataFiles {
		raw, err := os.ReadFile(path) // #nosec G304 -- path is a command-line argument
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		var values map[string]any
		if err := yaml.Unmarshal(raw, &values); err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", path, err)
		}
		maps.Copy(out, values)
	}
	for _, kv := range o.Values {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid data %q: expected key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}
