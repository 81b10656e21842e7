package blockmesh

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// RenderOptions configures document rendering. The zero value renders a
// complete document with no free-text header or footer.
type RenderOptions struct {
	// Version is embedded in the generated-by comment. Empty means "dev".
	Version string
	// Header is free text inserted verbatim after the generated-by
	// comment, before the FoamFile block.
	Header string
	// Footer is free text appended verbatim after the trailing comment.
	Footer string
}

const foamFile = `FoamFile
{
    version     2.0;
    format      ascii;
    class       dictionary;
    object      blockMeshDict;
}
// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //
`

const trailer = "// ************************************************************************* //"

// Render produces the complete mesh-description document. Section order
// is fixed; optional sections whose backing collection is empty are
// omitted entirely rather than emitted as empty blocks. The vertices and
// blocks sections are always emitted.
func (m *Mesh) Render(opts RenderOptions) string {
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Generated by hexmesh %s\n", version)
	if opts.Header != "" {
		sb.WriteString(opts.Header + "\n")
	}
	sb.WriteString(foamFile)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "scale %s;\n", formatFloat(m.scale))
	if m.fastMerge {
		sb.WriteString("fastMerge yes;\n")
	}
	sb.WriteString("\n")

	if len(m.geometries) > 0 {
		sb.WriteString("geometry\n{\n")
		for _, g := range m.geometries {
			sb.WriteString("    " + g.entry() + "\n")
		}
		sb.WriteString("}\n\n")
	}

	writeSection(&sb, "vertices", entries(m.vertices))
	writeSection(&sb, "blocks", entries(m.blocks))

	if len(m.edges) > 0 {
		writeSection(&sb, "edges", entries(m.edges))
	}
	if len(m.faces) > 0 {
		writeSection(&sb, "faces", entries(m.faces))
	}
	if m.defaultPatch != nil {
		sb.WriteString(m.defaultPatch.entry() + "\n\n")
	}
	if len(m.patches) > 0 {
		writeSection(&sb, "patches", entries(m.patches))
	}
	if len(m.pairs) > 0 {
		writeSection(&sb, "mergePatchPairs", entries(m.pairs))
	}

	sb.WriteString(trailer + "\n")
	if opts.Footer != "" {
		sb.WriteString(opts.Footer + "\n")
	}
	return sb.String()
}

// Write renders the document and writes it to w.
func (m *Mesh) Write(w io.Writer, opts RenderOptions) error {
	if _, err := io.WriteString(w, m.Render(opts)); err != nil {
		return fmt.Errorf("write mesh description: %w", err)
	}
	return nil
}

// WriteFile renders the document and writes it to path, creating or
// truncating the file. The file is created with 0644 permissions.
func (m *Mesh) WriteFile(path string, opts RenderOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := m.Write(f, opts); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// renderer is implemented by every element that owns a section entry.
type renderer interface {
	entry() string
}

func entries[E renderer](elements []E) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.entry()
	}
	return out
}

func writeSection(sb *strings.Builder, name string, lines []string) {
	sb.WriteString(name + "\n(\n")
	for _, line := range lines {
		sb.WriteString("    " + line + "\n")
	}
	sb.WriteString(");\n\n")
}

// formatVec renders a coordinate triple with exactly six digits after
// the decimal point per coordinate.
func formatVec(v r3.Vec) string {
	return fmt.Sprintf("(%.6f %.6f %.6f)", v.X, v.Y, v.Z)
}

// formatFloat renders scalar values (scale, grading, arc factors) in the
// shortest exact form, so whole numbers stay bare integers.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
