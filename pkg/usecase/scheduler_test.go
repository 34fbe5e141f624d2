package usecase_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/usecase"
	"go.uber.org/goleak"
)

func TestNewScheduler(t *testing.T) {
	noop := func(ctx context.Context) error { return nil }

	_, err := usecase.NewScheduler("zero", 0, noop)
	gt.Error(t, err)

	_, err = usecase.NewScheduler("negative", -time.Second, noop)
	gt.Error(t, err)

	_, err = usecase.NewScheduler("nil task", time.Second, nil)
	gt.Error(t, err)

	_, err = usecase.NewScheduler("ok", time.Second, noop)
	gt.NoError(t, err)
}

func TestScheduler_Run(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("Runs immediately and on every tick", func(t *testing.T) {
		var count atomic.Int32
		reached := make(chan struct{})

		s, err := usecase.NewScheduler("counter", 10*time.Millisecond, func(ctx context.Context) error {
			if count.Add(1) == 3 {
				close(reached)
			}
			return nil
		})
		gt.NoError(t, err).Required()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx)
			close(done)
		}()

		select {
		case <-reached:
		case <-time.After(2 * time.Second):
			t.Fatal("task did not run three times")
		}

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("scheduler did not stop after cancel")
		}
	})

	t.Run("First run happens before the first tick", func(t *testing.T) {
		ran := make(chan struct{}, 1)
		s, err := usecase.NewScheduler("daily", 24*time.Hour, func(ctx context.Context) error {
			ran <- struct{}{}
			return nil
		})
		gt.NoError(t, err).Required()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx)
			close(done)
		}()

		select {
		case <-ran:
		case <-time.After(time.Second):
			t.Fatal("task did not run immediately")
		}
		cancel()
		<-done
	})

	t.Run("Errors and panics do not stop the loop", func(t *testing.T) {
		var count atomic.Int32
		reached := make(chan struct{})

		s, err := usecase.NewScheduler("flaky", 5*time.Millisecond, func(ctx context.Context) error {
			n := count.Add(1)
			switch n {
			case 1:
				return goerr.New("first run fails")
			case 2:
				panic("second run panics")
			case 3:
				close(reached)
			}
			return nil
		})
		gt.NoError(t, err).Required()

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			s.Run(ctx)
			close(done)
		}()

		select {
		case <-reached:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler stopped after a failing task")
		}
		cancel()
		<-done
	})
}
