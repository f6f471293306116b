package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewlayout/pkg/constraint"
)

// applyCommand creates the apply command for building a scene file.
func (c *CLI) applyCommand() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "apply [scene.toml]",
		Short: "Build a scene and print its constraints",
		Long: `Build a scene and print its constraints.

The scene file declares views and constraints in TOML. Every constraint
created while building it is listed, including the placeholders of named
constraints that were only used as targets. Use --active to list only the
constraints that take part in layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(args[0], activeOnly)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "list active constraints only")

	return cmd
}

// runApply builds the scene at path (the demo when empty) and prints it.
func (c *CLI) runApply(path string, activeOnly bool) error {
	r, err := c.buildScene(path)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	defer r.Close()

	all := r.Constraints()
	shown := all
	if activeOnly {
		shown = nil
		for _, m := range all {
			if m.IsActive() {
				shown = append(shown, m)
			}
		}
	}

	source := path
	if source == "" {
		source = "embedded demo"
	}
	printSuccess(c.out, "Applied %s", sceneName(r, path))
	printKeyValue(c.out, "source", source)
	printStats(c.out, len(r.Views), len(all), r.Engine.Len())
	printNewline(c.out)
	if len(shown) == 0 {
		printDetail(c.out, "no constraints")
	} else {
		fmt.Fprintln(c.out, constraintTable(shown, -1, noCursor))
	}
	printNewline(c.out)
	printNextStep(c.out, "Graph", "viewlayout graph "+graphArg(path))
	return nil
}

func graphArg(path string) string {
	if path == "" {
		return "-o demo.svg"
	}
	return path + " -o " + defaultGraphOutput(path, formatSVG)
}

// activeCount counts the active constraints in cs.
func activeCount(cs []*constraint.Mutable) int {
	n := 0
	for _, m := range cs {
		if m.IsActive() {
			n++
		}
	}
	return n
}
