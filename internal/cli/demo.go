package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewlayout/pkg/scene"
)

// demoCommand creates the demo command for the embedded sample scene.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		source     bool
		activeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the embedded demo scene",
		Long: `Build the embedded demo scene and print its constraints.

The demo centres a grey 40x40 square in the root view, places a red
100x100 square against its left edge and hangs a blue view off its bottom
edge through named constraints. Use --source to print the scene file as a
starting point for your own.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source {
				_, err := c.out.Write(scene.DemoSource())
				return err
			}
			return c.runApply("", activeOnly)
		},
	}

	cmd.Flags().BoolVar(&source, "source", false, "print the demo scene as TOML")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "list active constraints only")

	return cmd
}
