// Package topology renders block-connectivity diagrams for meshes.
//
// Each hex block becomes a graph node; two blocks are connected when they
// share a full face (four common corner vertices). The diagram is a quick
// sanity check that a multi-block mesh is stitched the way its author
// intended before handing the dictionary to the mesh generator.
package topology

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/hexkit/hexmesh/pkg/blockmesh"
)

// Options configures connectivity diagram rendering.
type Options struct {
	// Detailed includes divisions and grading mode in node labels.
	// When false, only the block name and cell zone are shown.
	Detailed bool
}

// ToDOT converts a mesh's block structure to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Blocks assigned to a cell zone are filled light blue to distinguish
// them from free blocks.
func ToDOT(m *blockmesh.Mesh, opts Options) string {
	blocks := m.Blocks()

	var buf bytes.Buffer
	buf.WriteString("graph mesh {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, b := range blocks {
		label := fmtLabel(b, opts.Detailed)
		attrs := fmtAttrs(b, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", b.Name(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, a := range blocks {
		for _, b := range blocks[i+1:] {
			if sharedVertices(a, b) >= 4 {
				fmt.Fprintf(&buf, "  %q -- %q;\n", a.Name(), b.Name())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(b *blockmesh.Block, detailed bool) string {
	label := b.Name()
	if zone := b.CellZone(); zone != "" {
		label += "\n" + zone
	}
	if detailed {
		d := b.Divisions()
		label += fmt.Sprintf("\n%d x %d x %d", d[0], d[1], d[2])
	}
	return label
}

func fmtAttrs(b *blockmesh.Block, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if b.CellZone() != "" {
		attrs = append(attrs, "fillcolor=lightblue")
	}
	return attrs
}

// sharedVertices counts corner identities two blocks have in common.
// Blocks built through a shared mesh reuse vertex objects for common
// corners, so identity comparison is exact.
func sharedVertices(a, b *blockmesh.Block) int {
	count := 0
	for _, va := range a.Vertices() {
		for _, vb := range b.Vertices() {
			if va == vb {
				count++
			}
		}
	}
	return count
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
