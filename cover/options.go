package cover

// Options configures a single AddPiece call.
//   - ConstrainX/Y/Z: halve the translational range along that axis,
//     breaking the mirror/translation symmetry contributed by this piece.
//   - OrientationLimit: only the first N of the 24 orientations (in package
//     orientation's enumeration order) are tried; defaults to 24.
//
// Use NewOptions to build one with defaults applied, then overrides.
type Options struct {
	ConstrainX       bool
	ConstrainY       bool
	ConstrainZ       bool
	OrientationLimit int
}

// Option configures an Options instance.
type Option func(*Options)

// WithConstrainX sets the ConstrainX field.
func WithConstrainX(c bool) Option { return func(o *Options) { o.ConstrainX = c } }

// WithConstrainY sets the ConstrainY field.
func WithConstrainY(c bool) Option { return func(o *Options) { o.ConstrainY = c } }

// WithConstrainZ sets the ConstrainZ field.
func WithConstrainZ(c bool) Option { return func(o *Options) { o.ConstrainZ = c } }

// WithOrientationLimit sets the OrientationLimit field.
func WithOrientationLimit(n int) Option { return func(o *Options) { o.OrientationLimit = n } }

// NewOptions constructs Options with given Option values applied.
// Defaults: ConstrainX=ConstrainY=ConstrainZ=false, OrientationLimit=24.
func NewOptions(opts ...Option) Options {
	o := Options{OrientationLimit: 24}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
