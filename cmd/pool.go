package cmd

import "sync"

// pool limits the number of concurrently running deployments.
type pool struct {
	limit chan struct{}
	wg    sync.WaitGroup
}

// newPool creates a pool that allows up to n concurrent tasks.
func newPool(n int) *pool {
	if n <= 0 {
		n = 1
	}
	return &pool{limit: make(chan struct{}, n)}
}

// submit runs fn in a new goroutine once a slot is available.
func (p *pool) submit(fn func()) {
	p.limit <- struct{}{}
	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.limit
			p.wg.Done()
		}()
		fn()
	}()
}

// wait blocks until all submitted tasks have finished.
func (p *pool) wait() {
	p.wg.Wait()
}
