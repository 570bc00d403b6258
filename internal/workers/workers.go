package workers

import (
	"context"
	"sync"
	"time"
)

// Workers runs a set of background workers as one unit. The aggregate owns
// no goroutines itself; it fans Run and Stop out to its members.
type Workers struct {
	mu      sync.Mutex
	workers []Worker
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers a worker. If the aggregate is already running the caller is
// responsible for calling the worker's Run itself.
func (w *Workers) Add(worker Worker) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workers = append(w.workers, worker)
}

// Run starts every registered worker.
func (w *Workers) Run(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops every registered worker and blocks until all have exited.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, worker := range w.workers {
		worker.Stop()
	}
}

// RoomRefresher is the slice of the chat service the refresh worker needs.
type RoomRefresher interface {
	Start(ctx context.Context, roomID, familyID int64, interval time.Duration)
	Stop()
}

// RoomRefreshWorker adapts a [RoomRefresher] bound to one room into a
// [Worker] so the aggregate can manage its lifecycle.
type RoomRefreshWorker struct {
	job      RoomRefresher
	roomID   int64
	familyID int64
	interval time.Duration
}

func NewRoomRefreshWorker(job RoomRefresher, roomID, familyID int64, interval time.Duration) *RoomRefreshWorker {
	return &RoomRefreshWorker{
		job:      job,
		roomID:   roomID,
		familyID: familyID,
		interval: interval,
	}
}

// Run implements [Worker].
func (w *RoomRefreshWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.roomID, w.familyID, w.interval)
}

// Stop implements [Worker].
func (w *RoomRefreshWorker) Stop() {
	w.job.Stop()
}
