// Package parallel runs indexed tasks on a fixed set of worker goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Run when the pool is closed.
var ErrClosed = errors.New("parallel: pool closed")

// Func is a task body. worker identifies the goroutine running the task
// (0 <= worker < Workers()) so callers can keep per-worker state without
// locking; i is the task index.
type Func func(worker, i int)

type task struct {
	fn   Func
	i    int
	done *sync.WaitGroup
}

// Pool is a set of workers with one queue each. A worker whose queue is
// empty steals from the others before blocking.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan task
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held for reading while Run enqueues and for writing while
	// Close stops the workers, so no task is queued after the workers exit.
	mu sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan task, workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan task, queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(id, own)
			return
		case t := <-own:
			t.run(id)
		default:
			if t, ok := p.steal(id); ok {
				t.run(id)
				continue
			}
			select {
			case <-p.done:
				p.drain(id, own)
				return
			case t := <-own:
				t.run(id)
			}
		}
	}
}

func (t task) run(worker int) {
	defer t.done.Done()
	t.fn(worker, t.i)
}

// drain runs whatever is left in a queue after Close.
func (p *Pool) drain(id int, queue chan task) {
	for {
		select {
		case t := <-queue:
			t.run(id)
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) (task, bool) {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case t := <-p.queues[i]:
			return t, true
		default:
		}
	}
	return task{}, false
}

// Run calls fn for every index in [0, n) across the workers and waits for
// all of them to return. Tasks are dealt round-robin.
//
// Run returns ErrClosed without calling fn if the pool is closed. A Close
// that starts while Run is queueing waits until every task is queued, and
// the queued tasks run before the workers exit.
func (p *Pool) Run(n int, fn Func) error {
	if n <= 0 {
		return nil
	}

	var wg sync.WaitGroup
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return ErrClosed
	}
	wg.Add(n)
	for i := range n {
		p.queues[i%p.workers] <- task{fn: fn, i: i, done: &wg}
	}
	p.mu.RUnlock()

	wg.Wait()
	return nil
}

// Close stops the workers after the queued tasks have run.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
