package equiripple

// TraceLevel controls how much diagnostic detail a [Tracer] receives.
type TraceLevel int

const (
	// TraceOff disables all tracing.
	TraceOff TraceLevel = iota
	// TraceIterations reports a per-iteration summary.
	TraceIterations
	// TraceFull additionally reports the dense grid once and the full
	// error curve every iteration.
	TraceFull
)

// Tracer receives diagnostic callbacks from a design run. The core never
// writes diagnostics anywhere itself; callers that want grid or error
// dumps inject a Tracer via [WithTracer].
//
// Slice arguments are only valid for the duration of the call;
// implementations that retain them must copy.
type Tracer interface {
	// GridBuilt reports the dense grid after construction (TraceFull).
	// Desired and weight are in the cosine-approximation domain, with the
	// basis gain of the filter class already divided out.
	GridBuilt(f, d, w []float64)
	// Iteration reports one completed Remez iteration (TraceIterations).
	Iteration(iter int, rho float64, changed int)
	// ErrorCurve reports the weighted error over the grid for one
	// iteration (TraceFull).
	ErrorCurve(iter int, e []float64)
}
