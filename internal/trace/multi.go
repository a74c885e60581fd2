package trace

import "errors"

// fanout sends every event to a stream tracer and a ring (--trace-mode=both).
type fanout struct {
	tracers []Tracer
	level   Level
}

func newFanout(level Level, tracers ...Tracer) *fanout {
	return &fanout{tracers: tracers, level: level}
}

// Emit hands each tracer its own copy; the ring stamps Seq on what it stores.
func (f *fanout) Emit(ev *Event) {
	for _, tr := range f.tracers {
		cp := *ev
		tr.Emit(&cp)
	}
}

func (f *fanout) Flush() error {
	var errs []error
	for _, tr := range f.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (f *fanout) Close() error {
	var errs []error
	for _, tr := range f.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (f *fanout) Level() Level { return f.level }

func (f *fanout) Enabled() bool { return f.level > LevelOff }
