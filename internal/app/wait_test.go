package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitReady_ReadySignalled(t *testing.T) {
	ready := make(chan struct{})
	close(ready)

	assert.NoError(t, waitReady(ready, make(chan error, 1)))
}

func TestWaitReady_RunFailsBeforeReady(t *testing.T) {
	runErr := make(chan error, 1)
	runErr <- errors.New("failed to create overlay window")

	err := waitReady(make(chan struct{}), runErr)
	assert.ErrorContains(t, err, "failed to start overlay window")
	assert.ErrorContains(t, err, "failed to create overlay window")
}

func TestWaitReady_RunExitsCleanlyBeforeReady(t *testing.T) {
	runErr := make(chan error, 1)
	runErr <- nil

	// A nil run error before readiness is still a startup failure, not a hang
	err := waitReady(make(chan struct{}), runErr)
	assert.ErrorContains(t, err, "before becoming ready")
}
