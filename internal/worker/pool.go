// Package worker runs fire-and-forget jobs (mail sends, audit writes) on a
// fixed set of goroutines so request handlers never block on them.
package worker

import "sync"

type task func()

type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) { p.jobs <- f }

// Stop drains the queue and waits for in-flight jobs. Submit after Stop
// panics.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
