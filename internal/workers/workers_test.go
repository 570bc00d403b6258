package workers

import (
	"context"
	"testing"
	"time"
)

// countingWorker tracks how many times Run and Stop were called.
type countingWorker struct {
	runCount  int
	stopCount int
}

func (m *countingWorker) Run(context.Context) { m.runCount++ }
func (m *countingWorker) Stop()               { m.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	ws := New(w1, w2, w3)
	ws.Run(context.Background())

	for i, w := range []*countingWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on empty workers list
	New().Run(context.Background())
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}

	ws := New(w1, w2)
	ws.Run(context.Background())
	ws.Stop()

	for i, w := range []*countingWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Add_RegistersWorker(t *testing.T) {
	w := &countingWorker{}
	ws := New()
	ws.Add(w)

	ws.Run(context.Background())
	if w.runCount != 1 {
		t.Errorf("expected added worker to run, got runCount=%d", w.runCount)
	}
}

// recordingRefresher captures the arguments passed to Start.
type recordingRefresher struct {
	roomID   int64
	familyID int64
	interval time.Duration
	stopped  bool
}

func (r *recordingRefresher) Start(_ context.Context, roomID, familyID int64, interval time.Duration) {
	r.roomID = roomID
	r.familyID = familyID
	r.interval = interval
}

func (r *recordingRefresher) Stop() { r.stopped = true }

func TestRoomRefreshWorker_PassesBinding(t *testing.T) {
	job := &recordingRefresher{}
	w := NewRoomRefreshWorker(job, 10, 1, 45*time.Second)

	w.Run(context.Background())
	if job.roomID != 10 || job.familyID != 1 {
		t.Errorf("expected room 10 family 1, got room %d family %d", job.roomID, job.familyID)
	}
	if job.interval != 45*time.Second {
		t.Errorf("expected interval 45s, got %v", job.interval)
	}

	w.Stop()
	if !job.stopped {
		t.Error("expected Stop to propagate to the job")
	}
}
