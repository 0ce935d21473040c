package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines processing mask bands.
//
// Each worker owns a queue. Jobs are distributed round-robin, and a worker
// whose queue is empty steals from the others, so bands that take longer
// (large antialiased fades, spiked shapes) do not leave workers idle.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case job := <-own:
			job()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case job := <-own:
				job()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := range p.workers {
		if i == self {
			continue
		}
		select {
		case job := <-p.workQueues[i]:
			return job
		default:
		}
	}
	return nil
}

// Run executes every job and waits for all of them to finish.
//
// Jobs that have not started when ctx is cancelled are skipped; jobs that
// are already running complete normally. Run returns ctx.Err() if any job
// was skipped, nil otherwise. On a closed pool Run skips everything and
// returns ErrPoolClosed.
func (p *WorkerPool) Run(ctx context.Context, jobs []func()) error {
	if len(jobs) == 0 {
		return ctx.Err()
	}
	if !p.running.Load() {
		return ErrPoolClosed
	}

	var (
		pending sync.WaitGroup
		skipped atomic.Bool
	)
	pending.Add(len(jobs))
	for i, job := range jobs {
		wrapped := func() {
			defer pending.Done()
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			job()
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			skipped.Store(true)
			pending.Done()
		}
	}
	pending.Wait()

	if skipped.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}
		return ErrPoolClosed
	}
	return nil
}

// Close stops the pool after the queued jobs have run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
