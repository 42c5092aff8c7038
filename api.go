package mandel

// TileExecutor runs a batch of independent tile tasks and returns once every
// task has finished. Tasks carry no ordering requirement among themselves.
//
// internal/parallel provides a goroutine pool and a single-threaded
// implementation.
type TileExecutor interface {
	ExecuteAll(tasks []func()) error
}

// SampleObserver is notified after each grain size of a sweep was measured.
type SampleObserver interface {
	ObserveSample(s Sample)
}

// SampleObserverFunc adapts a plain function to SampleObserver.
type SampleObserverFunc func(s Sample)

func (f SampleObserverFunc) ObserveSample(s Sample) { f(s) }
