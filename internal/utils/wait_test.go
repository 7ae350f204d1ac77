package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitFor(t *testing.T) {
	t.Parallel()

	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("expected no error for zero duration, got %v", err)
	}

	if err := WaitFor(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := WaitFor(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
