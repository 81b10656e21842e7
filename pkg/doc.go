// Package pkg provides the core libraries for hexmesh dictionary generation.
//
// # Overview
//
// Hexmesh builds structured hexahedral meshes in memory and serializes them
// into OpenFOAM blockMeshDict dictionaries. The pkg directory is organized
// into five areas:
//
//  1. [blockmesh] - Mesh model (vertices, edges, blocks, patches) and the
//     dictionary serializer
//  2. [geometry] - Small vector helpers (collinearity, polyline length,
//     yaw/pitch/roll rotation) on top of gonum's r3 types
//  3. [manifest] - Declarative TOML mesh definitions compiled into meshes
//  4. [topology] - Block-connectivity diagrams via Graphviz
//  5. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through hexmesh:
//
//	TOML mesh definition
//	         ↓
//	    [manifest] package (decode + validate)
//	         ↓
//	    [blockmesh] package (model + registration)
//	         ↓
//	    blockMeshDict output
//
// # Quick Start
//
// Build a unit cube and write its dictionary:
//
//	import "github.com/hexkit/hexmesh/pkg/blockmesh"
//
//	block, _ := blockmesh.NewBlock(corners...)
//	block.SetDivisions(10, 10, 10)
//
//	mesh := blockmesh.NewMesh()
//	mesh.AddBlock(block)
//	mesh.WriteFile("blockMeshDict", blockmesh.RenderOptions{})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/blockmesh    # Specific package
//	go test -run Example       # Examples only
//
// [blockmesh]: https://pkg.go.dev/github.com/hexkit/hexmesh/pkg/blockmesh
// [geometry]: https://pkg.go.dev/github.com/hexkit/hexmesh/pkg/geometry
// [manifest]: https://pkg.go.dev/github.com/hexkit/hexmesh/pkg/manifest
// [topology]: https://pkg.go.dev/github.com/hexkit/hexmesh/pkg/topology
// [buildinfo]: https://pkg.go.dev/github.com/hexkit/hexmesh/pkg/buildinfo
package pkg
