// Package quadforest is a traversal library for distributed forests of
// quadtrees and octrees.
//
// 🚀 What is quadforest?
//
//	A single-pass, allocation-frugal iterator over every topological
//	incidence of an adaptive mesh:
//
//	  • Volumes: each local leaf, in Morton order per tree
//	  • Faces:   conforming, hanging (2:1), and boundary faces
//	  • Edges:   3D edge incidences, including non-conforming gluings
//	  • Corners: every mesh vertex, with all incident leaves
//
// ✨ Why choose quadforest?
//
//   - Exactly-once          — a canonical owner rule deduplicates every
//     incidence shared between glued trees
//   - Read-only             — the forest, ghost layer and connectivity
//     are borrowed; nothing is mutated
//   - Pure Go               — no cgo, no hidden dependencies
//
// Everything is organized under three subpackages plus a demo CLI:
//
//	quad/     — cells, Morton arithmetic, geometry tables, range search
//	forest/   — trees, ghost layer, connectivity, validation, samples
//	iterate/  — the unified volume/face/edge/corner traversal
//
// Quick ASCII example of a hanging face (2:1 refinement):
//
//	┌───────┬───┬───┐
//	│       │   │   │
//	│       ├───┼───┤
//	│       │   │   │
//	└───────┴───┴───┘
//
// The coarse left leaf meets two fine right leaves: the face fires two
// hanging callbacks, and the shared midpoint fires one corner callback
// with all three participants.
//
//	go get github.com/gghosh95/quadforest
package quadforest
