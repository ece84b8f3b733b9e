package bezierline

// Defaults applied by [New] for every option that is not overridden.
const (
	DefaultColor       = "#ff0000"
	DefaultOpacity     = 0.6
	DefaultWeight      = 5.0
	DefaultSteps       = 20
	DefaultCurveFactor = 0.4
)

type options struct {
	color       string
	opacity     float64
	weight      float64
	steps       int
	curveFactor float64
	control     LatLng
	hasControl  bool
}

func defaultOptions() options {
	return options{
		color:       DefaultColor,
		opacity:     DefaultOpacity,
		weight:      DefaultWeight,
		steps:       DefaultSteps,
		curveFactor: DefaultCurveFactor,
	}
}

// Option configures a [Curve] at construction time.
type Option func(*options)

// WithColor sets the overlay stroke color. It is display-only and is
// passed through untouched to the rendering layer.
func WithColor(color string) Option {
	return func(o *options) { o.color = color }
}

// WithOpacity sets the overlay opacity in [0, 1]. Display-only.
func WithOpacity(opacity float64) Option {
	return func(o *options) { o.opacity = opacity }
}

// WithWeight sets the overlay stroke weight. Display-only.
func WithWeight(weight float64) Option {
	return func(o *options) { o.weight = weight }
}

// WithSteps sets the requested sampling resolution. Odd counts are rounded
// up to the next even number so that an exact midpoint sample exists. A
// count of 0 degenerates to a single sample at the start point.
func WithSteps(steps int) Option {
	return func(o *options) { o.steps = steps }
}

// WithCurveFactor sets the curvature factor used to derive the control
// point; see [ControlPoint]. It has no effect when [WithControlPoint] is
// also given.
func WithCurveFactor(factor float64) Option {
	return func(o *options) { o.curveFactor = factor }
}

// WithControlPoint overrides control-point derivation with an explicit
// coordinate.
func WithControlPoint(control LatLng) Option {
	return func(o *options) {
		o.control = control
		o.hasControl = true
	}
}
