package profile

import "slices"

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Profiler describes a profiling session.
type Profiler struct {
	// Mode names one of [Modes]. An empty or unsupported mode disables
	// profiling.
	Mode string
	// Dir is the output directory. Empty selects a temporary directory.
	Dir string
	// Quiet suppresses the profiler's own log output.
	Quiet bool
}

// Start begins profiling and returns a [Stopper] that must be called to
// write the profile. Start and Stop are always safely callable, even when
// profiling is unavailable.
func (p Profiler) Start() Stopper {
	if !Enabled || p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

// Supports reports whether mode is one of [Modes].
func Supports(mode string) bool {
	return slices.Contains(Modes(), mode)
}

type ignore struct{}

func (ignore) Stop() {}
