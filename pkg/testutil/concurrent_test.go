package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"credmgr/internal/sentinel"
)

func TestRunConcurrent(t *testing.T) {
	boom := errors.New("boom")
	out := RunConcurrent(8, func(idx int) error {
		switch idx % 4 {
		case 0:
			return nil
		case 1:
			return fmt.Errorf("save acme: %w", sentinel.ErrAlreadyUsed)
		case 2:
			return sentinel.ErrNotFound
		default:
			return boom
		}
	})

	assert.Equal(t, 2, out.Succeeded)
	assert.Equal(t, 2, out.AlreadyUsed, "wrapped sentinels are matched")
	assert.Equal(t, 2, out.NotFound)
	assert.Equal(t, 2, out.Failed)
	assert.Equal(t, 8, out.Total())
	assert.ErrorIs(t, out.FirstFailure, boom)
}

func TestRunConcurrentNoFailures(t *testing.T) {
	out := RunConcurrent(3, func(int) error { return nil })

	assert.Equal(t, 3, out.Succeeded)
	assert.NoError(t, out.FirstFailure)
}
