// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to return quickly, spawning goroutines internally; the
// worker keeps running until Stop is called or ctx is cancelled. Stop must
// be safe to call when the worker is not running.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
