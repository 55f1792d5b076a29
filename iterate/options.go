package iterate

import "log"

// Option configures a single traversal.
type Option func(*options)

type options struct {
	volume VolumeFunc
	face   FaceFunc
	edge   EdgeFunc
	corner CornerFunc
	logger *log.Logger
}

// WithVolume registers the volume callback.
func WithVolume(fn VolumeFunc) Option { return func(o *options) { o.volume = fn } }

// WithFace registers the face callback.
func WithFace(fn FaceFunc) Option { return func(o *options) { o.face = fn } }

// WithEdge registers the edge callback; it is ignored on 2D forests.
func WithEdge(fn EdgeFunc) Option { return func(o *options) { o.edge = fn } }

// WithCorner registers the corner callback.
func WithCorner(fn CornerFunc) Option { return func(o *options) { o.corner = fn } }

// WithVerbose routes diagnostics (a corner side whose search located no
// candidate) to the given logger. Absent sides are valid; the
// diagnostic only aids debugging of connectivity tables.
func WithVerbose(l *log.Logger) Option { return func(o *options) { o.logger = l } }
