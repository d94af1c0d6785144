package queue

import (
	"context"
	"sync"

	"har-media-exporter/internal/domain/repositories"
)

type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewWorkerPool(workerCount int, repo repositories.SessionRepository) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:      i,
			JobChan: pool.JobChan,
			Wg:      &pool.wg,
			Repo:    repo,
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

func (p *WorkerPool) AddJob(job Job) {
	p.JobChan <- job
}

// Shutdown is a no-op on a nil pool (probing disabled).
func (p *WorkerPool) Shutdown() {
	if p == nil {
		return
	}
	p.cancel()
	close(p.JobChan)
	p.wg.Wait()
}
