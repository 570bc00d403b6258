package service

import (
	"context"
	"sync"
	"time"
)

type chatRefreshJob struct {
	chat ChatCryptoService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewChatRefreshJob creates a chatRefreshJob that reloads a room's history
// on a ticker. The job is idle until Start is called.
func NewChatRefreshJob(chat ChatCryptoService) ChatRefreshJob {
	return &chatRefreshJob{chat: chat}
}

// Start implements ChatRefreshJob. It stops any previously running job, then
// launches a background goroutine that calls LoadRoom every interval. If
// interval is zero or negative it defaults to 30 seconds. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *chatRefreshJob) Start(ctx context.Context, roomID, familyID int64, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// Errors here are connectivity or storage problems the
				// next tick may not see; LoadRoom already logged them.
				_, _ = j.chat.LoadRoom(jobCtx, roomID, familyID)
			}
		}
	}()
}

// Stop implements ChatRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *chatRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
