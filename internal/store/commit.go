package store

import "sync"

// Commit is the asynchronous result of a mutator's persistence write.
// Mutators return immediately; the write (and the sync dispatch behind
// it) runs in the background. Callers may ignore the Commit entirely,
// preserving fire-and-forget, or Wait on it to observe the outcome.
type Commit struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newCommit() *Commit {
	return &Commit{done: make(chan struct{})}
}

func (c *Commit) complete(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// Wait blocks until the persistence write has finished and returns its
// error, if any. Sync dispatch failures are never reported here; they
// are logged and dropped at the sync boundary.
func (c *Commit) Wait() error {
	<-c.done
	return c.err
}

// Done exposes completion without blocking, for select loops.
func (c *Commit) Done() <-chan struct{} {
	return c.done
}

// CompletedCommit returns an already-completed successful Commit, used
// when a mutation turned out to be a silent no-op (unknown id,
// non-improving record check) and nothing was written.
func CompletedCommit() *Commit {
	c := newCommit()
	c.complete(nil)
	return c
}

func noopCommit() *Commit { return CompletedCommit() }
