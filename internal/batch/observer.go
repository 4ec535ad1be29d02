package batch

// Observer receives batch progress. Calls arrive on the dispatching goroutine,
// in order.
type Observer interface {
	// OnStart is called once the preconditions pass, before the first submission
	OnStart(run Run)
	// OnProgress is called after each file's submission and pacing delay
	OnProgress(done, total int, file string)
}

// ProgressFunc adapts a plain function to Observer
type ProgressFunc func(done, total int, file string)

func (f ProgressFunc) OnStart(Run) {}

func (f ProgressFunc) OnProgress(done, total int, file string) {
	f(done, total, file)
}

type nopObserver struct{}

func (nopObserver) OnStart(Run)                 {}
func (nopObserver) OnProgress(int, int, string) {}
