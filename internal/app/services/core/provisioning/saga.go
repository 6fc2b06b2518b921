package provisioning

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// compensation is a recorded undo action for one completed saga step.
type compensation struct {
	name string
	undo func(ctx context.Context) error
}

// saga collects undo actions while the coordinator walks its steps. The
// identity provider and the relational store cannot share a transaction, so
// failure recovery is explicit: unwind issues every recorded undo
// best-effort and concurrently. Undo failures are logged, never returned,
// so the original step error is always what reaches the caller.
type saga struct {
	log   *zap.Logger
	steps []compensation
}

func newSaga(log *zap.Logger) *saga {
	return &saga{log: log}
}

func (s *saga) push(name string, undo func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{name: name, undo: undo})
}

func (s *saga) unwind() {
	if len(s.steps) == 0 {
		return
	}

	// The request context may already be cancelled when we get here, so the
	// cleanup runs on its own deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := step.undo(ctx); err != nil {
				s.log.Error("saga compensation failed",
					zap.String("step", step.name),
					zap.Error(err),
				)
				return
			}
			s.log.Info("saga compensation applied", zap.String("step", step.name))
		}()
	}
	wg.Wait()

	s.steps = nil
}
