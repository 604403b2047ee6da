package compressor

// Future holds the outcome of an operation started with Go. Exactly one
// outcome is ever stored.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn in its own goroutine.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn()
	}()
	return f
}

// Done is closed once the outcome is available.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Await blocks until fn returns and yields its result. Every call returns
// the same outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.val, f.err
}
