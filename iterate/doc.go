// Package iterate walks every topological incidence of a forest of
// quadtrees or octrees exactly once: each leaf volume, each shared
// face, each shared edge (3D), and each shared corner, including the
// hanging configurations produced by 2:1 adaptive refinement and the
// incidences that straddle glued tree boundaries.
//
// What:
//
//   - Iterate(f, g, opts...): one synchronized pass over the forest and
//     its ghost layer, invoking the callbacks registered with
//     WithVolume, WithFace, WithEdge and WithCorner. With only a volume
//     callback registered, a fast path loops each tree's leaves
//     directly.
//   - Volume, Face, Edge, Corner: the per-incidence payloads. Records
//     are valid only for the duration of a callback; callers must copy
//     what they keep.
//
// How:
//
//   - Per tree, a depth-first descent over the Morton-sorted leaf
//     sequence emits volumes and, at each internal boundary between
//     sibling regions, hands matched cursor ranges to the face, edge
//     and corner sub-iterators. The sub-iterators keep up to 2·S
//     synchronized cursors (S sides, local and ghost each) as flat
//     index tables over (depth, child slot), descending cooperatively
//     until one side terminates: equal levels make a conforming
//     incidence, a one-level gap a hanging one.
//   - Tree boundaries run as separate face, edge and corner passes
//     driven by the connectivity, deduplicated by a canonical owner
//     rule so that every shared incidence is emitted from exactly one
//     (tree, face/edge/corner) starting point.
//
// Ordering: within one tree, volume callbacks arrive in Morton order of
// the local sequence; face/edge/corner callbacks arrive in discovery
// order of the descent. Two runs over the same inputs produce identical
// sequences.
//
// The traversal is single-threaded, never blocks, allocates its scratch
// once per call, and releases it on return. It never mutates the forest.
// Errors are precondition failures only, detected before any callback
// fires: everything from forest.Validate and GhostLayer.Validate, plus
// ErrNilForest.
package iterate
