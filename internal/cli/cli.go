// Package cli implements the hexmesh command-line interface.
//
// This package provides commands for compiling TOML mesh definitions into
// blockMeshDict files, previewing the generated dictionary, and inspecting
// block connectivity. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Compile a mesh definition into a blockMeshDict file
//   - render: Print the generated dictionary to stdout
//   - topology: Visualize block connectivity as SVG or DOT
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hexkit/hexmesh/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "hexmesh"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Hexmesh compiles mesh definitions into blockMeshDict files",
		Long:         `Hexmesh is a CLI tool for building structured hexahedral meshes from declarative TOML definitions and serializing them into OpenFOAM blockMeshDict dictionaries.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.topologyCommand())
	root.AddCommand(c.completionCommand())

	return root
}
