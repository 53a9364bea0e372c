package agent

import "sync"

// Pool is a fixed-capacity worker pool. Submitted tasks queue until a worker
// is free; the pool never spawns beyond its configured size. It is shared
// process-wide by the executor, so the only synchronization it needs is its
// own task queue.
type Pool struct {
	tasks     chan func()
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewPool starts size workers. A non-positive size is treated as 1.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{tasks: make(chan func())}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit enqueues a task. It blocks while all workers are busy and the queue
// is contended, providing natural backpressure. Submitting to a closed pool
// panics, mirroring send-on-closed-channel semantics.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Close stops accepting tasks and waits for in-flight tasks to finish.
// It is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
	})
	p.wg.Wait()
}
