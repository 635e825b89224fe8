// Package testutil holds helpers shared by store and service tests.
package testutil

import (
	"errors"
	"sync"

	"credmgr/internal/sentinel"
)

// Outcomes counts how concurrent calls ended, keyed by store sentinel.
type Outcomes struct {
	Succeeded   int
	AlreadyUsed int
	NotFound    int
	Failed      int

	// FirstFailure is the first error that matched no sentinel.
	FirstFailure error
}

// Total returns the number of calls that ran.
func (o Outcomes) Total() int {
	return o.Succeeded + o.AlreadyUsed + o.NotFound + o.Failed
}

func (o *Outcomes) record(err error) {
	switch {
	case err == nil:
		o.Succeeded++
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		o.AlreadyUsed++
	case errors.Is(err, sentinel.ErrNotFound):
		o.NotFound++
	default:
		o.Failed++
		if o.FirstFailure == nil {
			o.FirstFailure = err
		}
	}
}

// RunConcurrent releases n goroutines at once, each calling fn with its
// index, and returns once all of them finished.
func RunConcurrent(n int, fn func(idx int) error) Outcomes {
	var (
		mu  sync.Mutex
		out Outcomes
		wg  sync.WaitGroup
	)
	start := make(chan struct{})
	for i := range n {
		wg.Go(func() {
			<-start
			err := fn(i)
			mu.Lock()
			out.record(err)
			mu.Unlock()
		})
	}
	close(start)
	wg.Wait()
	return out
}
