// Package parallel provides the executors that run the tile tasks of a
// render.
//
// Pool is a fixed set of worker goroutines, one queue each. Task i of a
// batch always goes to worker i mod N and workers never steal from each
// other, so the distribution of tiles over workers is decided entirely by
// the order of the batch. Serial runs a batch on the calling goroutine for
// deterministic tests.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// ErrClosed is returned when work is submitted to a closed Pool.
var ErrClosed = errors.New("parallel: pool closed")

// Pool is a pool of goroutines executing batches of tasks.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// queues holds one channel per worker. A worker only ever reads its own.
	queues []chan func()

	done chan struct{}
	wg   sync.WaitGroup

	// mu orders queueing against Close: a batch is either queued in full
	// before done is closed or rejected.
	mu      sync.RWMutex
	running bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The workers start immediately.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running = true

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(p.queues[i])
	}

	return p
}

func (p *Pool) worker(queue chan func()) {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			drain(queue)
			return
		case work := <-queue:
			work()
		}
	}
}

// drain executes everything left in queue without blocking.
func drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// ExecuteAll runs every task and waits until all of them have returned.
// It returns ErrClosed without running anything if the pool is closed.
func (p *Pool) ExecuteAll(tasks []func()) error {
	p.mu.RLock()
	if !p.running {
		p.mu.RUnlock()
		return ErrClosed
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))
	for i, fn := range tasks {
		p.queues[i%p.workers] <- func() {
			defer completion.Done()
			fn()
		}
	}
	p.mu.RUnlock()

	completion.Wait()
	return nil
}

// Close stops the workers after their queues are drained. It waits for
// batches that are still being queued.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Serial runs tasks one after another on the calling goroutine, in order.
type Serial struct{}

// ExecuteAll runs tasks in slice order.
func (Serial) ExecuteAll(tasks []func()) error {
	for _, fn := range tasks {
		fn()
	}
	return nil
}
