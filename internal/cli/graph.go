package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewlayout/pkg/errors"
	"github.com/matzehuels/viewlayout/pkg/render/dot"
)

const (
	formatDOT = "dot" // Graphviz source
	formatSVG = "svg" // rendered in-process
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file; DOT goes to stdout when empty
	format   string // "dot" or "svg"; inferred from output when empty
	inactive bool   // include inactive constraints
	noCache  bool   // always re-render SVG
}

// graphCommand creates the graph command for exporting constraint graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [scene.toml]",
		Short: "Export a scene's constraint graph as DOT or SVG",
		Long: `Export a scene's constraint graph as DOT or SVG.

Views become nodes and constraints become labelled edges from the
constrained view to the view it refers to. Without a scene file the
embedded demo is used. The format follows the output file's extension
unless --format is given; DOT without an output file is written to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return c.runGraph(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for dot, <input>.svg for svg)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg")
	cmd.Flags().BoolVar(&opts.inactive, "inactive", false, "include inactive constraints")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered SVG cache")

	return cmd
}

// runGraph builds the scene and writes its graph.
func (c *CLI) runGraph(ctx context.Context, path string, opts graphOpts) error {
	format := resolveFormat(opts.format, opts.output)
	if err := errors.ValidateOutputFormat(format, formatDOT, formatSVG); err != nil {
		return err
	}
	format = strings.ToLower(format)

	r, err := c.buildScene(path)
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	defer r.Close()

	src := dot.ToDOT(r, dot.Options{Inactive: opts.inactive})

	var data []byte
	switch format {
	case formatSVG:
		data, err = c.renderSVG(ctx, src, opts.noCache)
		if err != nil {
			return err
		}
	default:
		data = []byte(src)
	}

	output := opts.output
	if output == "" {
		if format == formatDOT {
			_, err := c.out.Write(data)
			return err
		}
		output = defaultGraphOutput(path, format)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	printSuccess(c.out, "Graph exported")
	printFile(c.out, output)
	return nil
}

// renderSVG renders src, reusing a previous rendering of the same source
// from the SVG cache.
func (c *CLI) renderSVG(ctx context.Context, src string, noCache bool) ([]byte, error) {
	store := c.newStore(noCache)
	if data, ok, err := store.Get(ctx, src); err != nil {
		c.Logger.Warn("read svg cache", "err", err)
	} else if ok {
		c.Logger.Info("Using cached SVG")
		return data, nil
	}

	p := newProgress(c.Logger)
	data, err := dot.RenderSVG(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	p.done("Rendered SVG")

	if err := store.Set(ctx, src, data); err != nil {
		c.Logger.Warn("write svg cache", "err", err)
	}
	return data, nil
}

// resolveFormat returns the explicit format, or the output extension, or dot.
func resolveFormat(format, output string) string {
	if format != "" {
		return format
	}
	if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
		return ext
	}
	return formatDOT
}

// defaultGraphOutput derives the output file from the input path.
func defaultGraphOutput(input, format string) string {
	if input == "" {
		return "demo." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
