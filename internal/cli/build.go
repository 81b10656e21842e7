package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hexkit/hexmesh/pkg/blockmesh"
	"github.com/hexkit/hexmesh/pkg/buildinfo"
	"github.com/hexkit/hexmesh/pkg/manifest"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output string // output file path
}

// buildCommand creates the build command for compiling mesh definitions.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [manifest]",
		Short: "Compile a mesh definition into a blockMeshDict file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "blockMeshDict", "output file path")

	return cmd
}

func (c *CLI) runBuild(input string, opts *buildOpts) error {
	c.Logger.Infof("Building %s", input)
	p := newProgress(c.Logger)

	mesh, renderOpts, err := compileManifest(input)
	if err != nil {
		printError("Build failed")
		return err
	}

	if err := mesh.WriteFile(opts.output, renderOpts); err != nil {
		printError("Build failed")
		return err
	}
	p.done(fmt.Sprintf("Compiled %d blocks", len(mesh.Blocks())))

	printSuccess("Wrote %s", filepath.Base(opts.output))
	printFile(opts.output)
	printStats(len(mesh.Vertices()), len(mesh.Blocks()), len(mesh.Edges()), len(mesh.Patches()))
	printNextStep("Generate the mesh", "blockMesh")
	return nil
}

// compileManifest loads and builds a mesh from a TOML definition file.
// The returned render options carry the manifest's header and footer text.
func compileManifest(path string) (*blockmesh.Mesh, blockmesh.RenderOptions, error) {
	opts := blockmesh.RenderOptions{Version: buildinfo.Version}

	m, err := manifest.Load(path)
	if err != nil {
		return nil, opts, err
	}
	mesh, err := m.Build()
	if err != nil {
		return nil, opts, err
	}

	opts.Header = m.Header
	opts.Footer = m.Footer
	return mesh, opts, nil
}
