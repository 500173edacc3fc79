package app

import (
	"errors"
	"fmt"
)

// waitReady blocks until the window signals readiness or its run goroutine
// exits first, in which case startup failed and the error is surfaced instead
// of deadlocking.
func waitReady(ready <-chan struct{}, runErr <-chan error) error {
	select {
	case <-ready:
		return nil

	case err := <-runErr:
		if err == nil {
			err = errors.New("window exited before becoming ready")
		}

		return fmt.Errorf("failed to start overlay window: %w", err)
	}
}
