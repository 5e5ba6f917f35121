package async_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/refinery-lab/groomctl/pkg/utils/async"
)

func waitFor(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Async handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		waitFor(t, &wg)
		gt.True(t, executed)
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("test error")
		})

		// Passes if the error is absorbed without panic
		waitFor(t, &wg)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		waitFor(t, &wg)
	})

	t.Run("Handler survives caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		var canceled bool

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
			canceled = ctx.Err() != nil
			return nil
		})
		cancel()

		waitFor(t, &wg)
		gt.False(t, canceled)
	})

	t.Run("Logger is preserved in background context", func(t *testing.T) {
		ctx := ctxlog.With(context.Background(), ctxlog.From(context.Background()))
		var wg sync.WaitGroup
		var hasLogger bool

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			hasLogger = ctxlog.From(ctx) != nil
			return nil
		})

		waitFor(t, &wg)
		gt.True(t, hasLogger)
	})
}
