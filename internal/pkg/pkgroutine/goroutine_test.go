package pkgroutine

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

func TestNewManagerDefaultMax(t *testing.T) {
	mgr := NewManager(0)
	if got := cap(mgr.sema); got != DefaultMaxGoroutine {
		t.Fatalf("expected cap %d, got %d", DefaultMaxGoroutine, got)
	}
}

func TestManagerCollectsErrors(t *testing.T) {
	mgr := NewManager(2)
	errOne := errors.New("one")
	errTwo := errors.New("two")

	mgr.Go(context.Background(), "a.xlsx", func(ctx context.Context) error {
		return errOne
	})
	mgr.Go(context.Background(), "b.xls", func(ctx context.Context) error {
		return errTwo
	})
	mgr.Go(context.Background(), "c.xlsx", func(ctx context.Context) error {
		return nil
	})

	joined := mgr.Wait()
	if joined == nil {
		t.Fatalf("expected errors")
	}
	if !errors.Is(joined, errOne) || !errors.Is(joined, errTwo) {
		t.Fatalf("expected both errors to be present: %v", joined)
	}
	if !strings.Contains(joined.Error(), "a.xlsx: one") {
		t.Fatalf("expected task name prefix, got %q", joined.Error())
	}
	if strings.Contains(joined.Error(), "c.xlsx") {
		t.Fatalf("did not expect successful task in errors: %q", joined.Error())
	}
}

func TestManagerLimitsConcurrency(t *testing.T) {
	mgr := NewManager(2)
	var running, peak atomic.Int32

	for i := 0; i < 8; i++ {
		mgr.Go(context.Background(), "task", func(ctx context.Context) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
			return nil
		})
	}

	if err := mgr.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := peak.Load(); got > 2 {
		t.Fatalf("expected at most 2 concurrent tasks, saw %d", got)
	}
}

func TestManagerRecordsPanics(t *testing.T) {
	mgr := NewManager(1)
	mgr.Go(context.Background(), "boom.xlsx", func(ctx context.Context) error {
		panic("boom")
	})

	err := mgr.Wait()
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("expected ErrPanic, got %v", err)
	}
}

func TestManagerSkipsWhenCanceled(t *testing.T) {
	mgr := NewManager(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mgr.sema <- struct{}{}
	ran := false
	mgr.Go(ctx, "late.xlsx", func(ctx context.Context) error {
		ran = true
		return nil
	})
	<-mgr.sema

	if err := mgr.Wait(); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if ran {
		t.Fatalf("did not expect task to run")
	}
}
