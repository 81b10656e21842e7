package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// renderCommand creates the render command for previewing the generated
// dictionary on stdout. Output is suitable for piping or redirection, so
// no styled status lines are printed.
func (c *CLI) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render [manifest]",
		Short: "Print the generated blockMeshDict to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, renderOpts, err := compileManifest(args[0])
			if err != nil {
				return err
			}
			return mesh.Write(os.Stdout, renderOpts)
		},
	}
}
