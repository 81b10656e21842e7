package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hexkit/hexmesh/pkg/topology"
)

const (
	formatSVG = "svg"
	formatDOT = "dot"
)

// topologyOpts holds the command-line flags for the topology command.
type topologyOpts struct {
	output   string // output file path (derived from input when empty)
	format   string // output format: "svg" or "dot"
	detailed bool   // include divisions in node labels
}

// topologyCommand creates the topology command for visualizing block
// connectivity. Blocks become graph nodes; blocks sharing a full face are
// connected.
func (c *CLI) topologyCommand() *cobra.Command {
	opts := topologyOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "topology [manifest]",
		Short: "Visualize block connectivity as SVG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatDOT {
				return fmt.Errorf("invalid format: %s (must be 'svg' or 'dot')", opts.format)
			}
			return c.runTopology(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: manifest name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include divisions in node labels")

	return cmd
}

func (c *CLI) runTopology(input string, opts *topologyOpts) error {
	mesh, _, err := compileManifest(input)
	if err != nil {
		return err
	}

	dot := topology.ToDOT(mesh, topology.Options{Detailed: opts.detailed})
	c.Logger.Debugf("Generated DOT: %d bytes", len(dot))

	data := []byte(dot)
	if opts.format == formatSVG {
		data, err = topology.RenderSVG(dot)
		if err != nil {
			return err
		}
	}

	path := opts.output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	printSuccess("Wrote block topology")
	printFile(path)
	printKeyValue("blocks", fmt.Sprintf("%d", len(mesh.Blocks())))
	return nil
}
